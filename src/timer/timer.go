package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Timer sends on timeout each time period elapses after a Start. A Start
// while running restarts the period. It returns when ctx is done.
func Timer(ctx context.Context, period time.Duration, timeout chan<- bool, action <-chan TimerAction) {
	t := time.NewTimer(period)
	t.Stop()
	for {
		select {
		case a := <-action:
			switch a {
			case Start:
				resetTimer(t, period)
			case Stop:
				stopTimer(t)
			}
		case <-t.C:
			slog.Debug("Timer timed out")
			select {
			case timeout <- true:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			t.Stop()
			return
		}
	}
}

// Stops the timer and resets it.
func resetTimer(t *time.Timer, period time.Duration) {
	stopTimer(t)
	t.Reset(period)
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
