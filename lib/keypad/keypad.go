// Package keypad reads single key presses from the terminal and turns them
// into car panel events.
package keypad

import (
	"context"
	"fmt"
	"log/slog"

	"liftsim/src/types"

	"github.com/eiannone/keyboard"
)

// Init puts the terminal in raw mode. Call Close before exiting.
func Init() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	return nil
}

func Close() error {
	return keyboard.Close()
}

// PollKeys forwards decoded key presses to receiver until ctx is done or the
// keyboard stops.
func PollKeys(ctx context.Context, receiver chan<- types.KeyEvent) {
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		slog.Error("Keyboard unavailable", "err", err)
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-keys:
			if !ok {
				return
			}
			if ev.Err != nil {
				slog.Warn("Keyboard read failed", "err", ev.Err)
				continue
			}
			select {
			case receiver <- Decode(ev.Rune, ev.Key):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Decode maps a key press to a panel event.
func Decode(r rune, key keyboard.Key) types.KeyEvent {
	switch key {
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		return types.KeyEvent{Action: types.KeyQuit, Raw: r}
	case keyboard.KeyEnter:
		return types.KeyEvent{Action: types.KeyNext, Raw: r}
	}

	switch {
	case r >= '0' && r <= '9':
		return types.KeyEvent{Action: types.KeyFloor, Floor: int(r - '0'), Raw: r}
	case r == 'n':
		return types.KeyEvent{Action: types.KeyNext, Raw: r}
	case r == 'a':
		return types.KeyEvent{Action: types.KeyAutoProcess, Raw: r}
	case r == 's':
		return types.KeyEvent{Action: types.KeyStatus, Raw: r}
	case r == 'h':
		return types.KeyEvent{Action: types.KeyHistory, Raw: r}
	case r == 'r':
		return types.KeyEvent{Action: types.KeyRoute, Raw: r}
	case r == 'p':
		return types.KeyEvent{Action: types.KeyPlan, Raw: r}
	case r == 'q':
		return types.KeyEvent{Action: types.KeyQuit, Raw: r}
	}
	return types.KeyEvent{Action: types.KeyUnknown, Raw: r}
}
