package elev

import (
	"liftsim/src/dispatcher"
	"liftsim/src/types"
)

// StartCarMgr starts the goroutine that owns d. After this call d must only
// be reached through the returned manager.
func StartCarMgr(d *dispatcher.Dispatcher) *CarMgr {
	mgr := &CarMgr{
		cmds: make(chan CarCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for cmd := range mgr.cmds {
			cmd.Exec(d)
		}
	}()
	return mgr
}

// Stop ends the manager goroutine. No calls may follow.
func (mgr *CarMgr) Stop() {
	close(mgr.cmds)
	<-mgr.done
}

func query[T any](mgr *CarMgr, f func(d *dispatcher.Dispatcher) T) T {
	reply := make(chan T, 1)
	mgr.cmds <- CarCmd{
		Exec: func(d *dispatcher.Dispatcher) {
			reply <- f(d)
		},
	}
	return <-reply
}

func (mgr *CarMgr) Submit(floor int) types.SubmitResult {
	return query(mgr, func(d *dispatcher.Dispatcher) types.SubmitResult {
		return d.SubmitRequest(floor)
	})
}

type nextStop struct {
	floor int
	ok    bool
}

// Next selects the next stop. The caller must follow a true result with
// Arrive for the same floor.
func (mgr *CarMgr) Next() (int, bool) {
	next := query(mgr, func(d *dispatcher.Dispatcher) nextStop {
		floor, ok := d.SelectNextStop()
		return nextStop{floor, ok}
	})
	return next.floor, next.ok
}

func (mgr *CarMgr) Arrive(floor int) {
	query(mgr, func(d *dispatcher.Dispatcher) struct{} {
		d.CommitArrival(floor)
		return struct{}{}
	})
}

// Snapshot returns a deep copy of the car state.
func (mgr *CarMgr) Snapshot() types.State {
	return query(mgr, (*dispatcher.Dispatcher).Snapshot)
}

func (mgr *CarMgr) Plan() []int {
	return query(mgr, (*dispatcher.Dispatcher).PlanRoute)
}

func (mgr *CarMgr) Pending() bool {
	return query(mgr, (*dispatcher.Dispatcher).Pending)
}
