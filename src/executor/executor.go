package executor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/timer"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Executor is the car panel: it turns key presses into dispatcher calls and
// animates travel between stops. It only reaches the dispatcher through mgr.
type Executor struct {
	cfg config.Config
	mgr *elev.CarMgr
	out io.Writer

	carPos     int // shown position, ahead of the dispatcher while travelling
	target     int
	travelling bool
	autoRun    bool

	travelAction chan<- timer.TimerAction
	pauseAction  chan<- timer.TimerAction
}

func newExecutor(cfg config.Config, mgr *elev.CarMgr, out io.Writer,
	travelAction, pauseAction chan<- timer.TimerAction,
) *Executor {
	return &Executor{
		cfg:          cfg,
		mgr:          mgr,
		out:          out,
		carPos:       mgr.Snapshot().CurrentFloor,
		travelAction: travelAction,
		pauseAction:  pauseAction,
	}
}

// Run handles key presses until a quit key, a closed key channel or ctx.
func Run(ctx context.Context, cfg config.Config, mgr *elev.CarMgr, keys <-chan types.KeyEvent, out io.Writer) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	travelTimeout := make(chan bool)
	travelAction := make(chan timer.TimerAction, 1)
	pauseTimeout := make(chan bool)
	pauseAction := make(chan timer.TimerAction, 1)
	go timer.Timer(ctx, cfg.TravelDuration, travelTimeout, travelAction)
	go timer.Timer(ctx, cfg.ArrivalPause, pauseTimeout, pauseAction)

	e := newExecutor(cfg, mgr, out, travelAction, pauseAction)
	e.write(helpText(cfg.NumFloors))
	e.renderShaft()

	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keys:
			if !ok {
				return
			}
			if quit := e.handleKey(key); quit {
				slog.Info("Quit requested")
				return
			}
		case <-travelTimeout:
			e.onTravelTick()
		case <-pauseTimeout:
			e.onPauseDone()
		}
	}
}

// handleKey reports whether the key asked to quit.
func (e *Executor) handleKey(key types.KeyEvent) bool {
	switch key.Action {
	case types.KeyFloor:
		e.addRequest(key.Floor)
	case types.KeyNext:
		if e.busy() {
			return false
		}
		e.processNext()
	case types.KeyAutoProcess:
		if e.busy() {
			return false
		}
		if !e.mgr.Pending() {
			e.write("No pending requests to auto-process.")
			return false
		}
		e.autoRun = true
		e.processNext()
	case types.KeyStatus:
		e.write(utils.FormatStatus(e.mgr.Snapshot()))
	case types.KeyHistory:
		history := utils.FormatHistory(e.mgr.Snapshot().RequestLog)
		if history == "" {
			e.write("History empty.")
		} else {
			e.write("History (latest first): " + history)
		}
	case types.KeyRoute:
		e.write("Route Taken: " + utils.FormatRoute(e.mgr.Snapshot().RouteLog))
	case types.KeyPlan:
		plan := e.mgr.Plan()
		if len(plan) == 0 {
			e.write("No pending requests.")
		} else {
			e.write("Planned route: " + utils.FormatRoute(plan))
		}
	case types.KeyQuit:
		return true
	default:
		e.write(helpText(e.cfg.NumFloors))
	}
	return false
}

// addRequest range checks floor before handing it to the dispatcher.
func (e *Executor) addRequest(floor int) {
	if floor < 0 || floor >= e.cfg.NumFloors {
		e.write(fmt.Sprintf("Floor out of range (0–%d).", e.cfg.NumFloors-1))
		return
	}
	res := e.mgr.Submit(floor)
	slog.Info("Request submitted", "floor", floor, "served", res.Served)
	e.write(res.String())
}

func (e *Executor) busy() bool {
	if e.travelling || e.autoRun {
		e.write("Car is moving, wait for it to arrive.")
		return true
	}
	return false
}

func (e *Executor) processNext() {
	floor, ok := e.mgr.Next()
	if !ok {
		if e.autoRun {
			e.write("All requests processed.")
			e.autoRun = false
		} else {
			e.write("No pending requests.")
		}
		return
	}

	if e.autoRun {
		e.write(fmt.Sprintf("Processing → %d", floor))
	} else {
		e.write(fmt.Sprintf("Processing request → %d (direction=%v)", floor, e.mgr.Snapshot().Direction))
	}
	slog.Info("Travelling", "from", e.carPos, "to", floor)
	e.target = floor
	e.travelling = true
	e.travelAction <- timer.Start
}

// onTravelTick moves the shown car one floor towards the target and commits
// the arrival once it gets there.
func (e *Executor) onTravelTick() {
	if !e.travelling {
		return
	}
	e.carPos += int(types.DirTowards(e.carPos, e.target))
	e.renderShaft()

	if e.carPos != e.target {
		e.travelAction <- timer.Start
		return
	}

	e.travelling = false
	e.mgr.Arrive(e.target)
	slog.Info("Arrived", "floor", e.target)
	e.write(fmt.Sprintf("Reached floor %d", e.target))
	if e.autoRun {
		e.pauseAction <- timer.Start
	}
}

func (e *Executor) onPauseDone() {
	if !e.autoRun || e.travelling {
		return
	}
	e.processNext()
}

func (e *Executor) renderShaft() {
	e.write(utils.FormatShaft(e.cfg.NumFloors, e.carPos, e.mgr.Snapshot()))
}

func (e *Executor) write(text string) {
	fmt.Fprintln(e.out, text)
}

func helpText(numFloors int) string {
	return fmt.Sprintf("Keys: 0-%d request floor | n next | a auto | s status | h history | r route | p plan | q quit",
		numFloors-1)
}
