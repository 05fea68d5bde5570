package types

import "fmt"

// Direction is the scan direction of the car. There is no stopped state:
// an idle car keeps its last bias, which defaults to up.
type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	}
	return "Unknown"
}

// DirTowards returns the direction of travel from one floor to another.
// Equal floors count as down.
func DirTowards(from, to int) Direction {
	if to > from {
		return DirUp
	}
	return DirDown
}

// SubmitResult is returned for every submitted floor.
type SubmitResult struct {
	Floor  int
	Served bool // car was already at Floor, nothing was queued
}

func (r SubmitResult) String() string {
	if r.Served {
		return fmt.Sprintf("Already at floor %d (served).", r.Floor)
	}
	return fmt.Sprintf("Request %d added.", r.Floor)
}

// State holds everything the dispatcher knows about one car.
type State struct {
	CurrentFloor int
	Direction    Direction
	UpQueue      []int // ascending
	DownQueue    []int // descending
	RequestLog   []int // every submitted floor, oldest first
	RouteLog     []int // every visited floor, starting with the initial one
}
