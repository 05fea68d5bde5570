package types

type KeyAction int

const (
	KeyFloor KeyAction = iota
	KeyNext
	KeyAutoProcess
	KeyStatus
	KeyHistory
	KeyRoute
	KeyPlan
	KeyQuit
	KeyUnknown
)

// KeyEvent is a decoded key press. Floor is only set for KeyFloor.
type KeyEvent struct {
	Action KeyAction
	Floor  int
	Raw    rune
}
