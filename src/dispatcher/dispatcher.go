// Package dispatcher decides which floor a single car serves next, using a
// SCAN policy over two directional request queues.
package dispatcher

import (
	"log/slog"
	"slices"

	"liftsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Dispatcher is not safe for concurrent use. Callers serialize access, see
// elev.CarMgr.
type Dispatcher struct {
	st  types.State
	log *slog.Logger
}

// New returns a dispatcher for a car standing at floor 0, biased upwards.
func New() *Dispatcher {
	return &Dispatcher{
		st: types.State{
			CurrentFloor: 0,
			Direction:    types.DirUp,
			RouteLog:     []int{0},
		},
		log: slog.Default(),
	}
}

// SubmitRequest registers a floor request. No range checking is done here;
// the caller rejects floors outside the building.
func (d *Dispatcher) SubmitRequest(floor int) types.SubmitResult {
	d.st.RequestLog = append(d.st.RequestLog, floor)

	if floor == d.st.CurrentFloor {
		d.log.Debug("Request for current floor served immediately", "floor", floor)
		return types.SubmitResult{Floor: floor, Served: true}
	}

	// A stale entry for the same floor may sit in the other queue if it was
	// submitted before the car passed it. Re-file it relative to where the car is now.
	if floor > d.st.CurrentFloor {
		d.st.DownQueue = removeFloor(d.st.DownQueue, floor)
		d.st.UpQueue = insertFloor(d.st.UpQueue, floor, types.DirUp)
	} else {
		d.st.UpQueue = removeFloor(d.st.UpQueue, floor)
		d.st.DownQueue = insertFloor(d.st.DownQueue, floor, types.DirDown)
	}

	switch {
	case len(d.st.UpQueue) == 0 && len(d.st.DownQueue) == 0:
		d.st.Direction = types.DirUp
	case len(d.st.UpQueue) == 0:
		d.st.Direction = types.DirDown
	case len(d.st.DownQueue) == 0:
		d.st.Direction = types.DirUp
	}

	d.log.Debug("Request added",
		"floor", floor,
		"up", d.st.UpQueue,
		"down", d.st.DownQueue,
		"dir", d.st.Direction)
	return types.SubmitResult{Floor: floor}
}

// SelectNextStop picks and dequeues the next floor to visit. It returns false
// when nothing is pending. The current floor is left untouched; the caller
// reports the arrival with CommitArrival.
//  1. Continue: nearest pending floor ahead in the current direction.
//  2. Reverse: nearest pending floor behind the car, in the other queue.
//  3. Fallback: nearest floor by distance, own queue first, then the other one.
//     Only reachable when queued floors no longer match their queue, e.g. after
//     requests were submitted while the car was travelling.
func (d *Dispatcher) SelectNextStop() (int, bool) {
	if len(d.st.UpQueue) == 0 && len(d.st.DownQueue) == 0 {
		return 0, false
	}

	dir := d.st.Direction
	cur := d.st.CurrentFloor
	ahead, behind := d.queue(dir), d.queue(-dir)

	if floor, ok := firstAhead(*ahead, cur, dir); ok {
		*ahead = removeFloor(*ahead, floor)
		d.log.Debug("Selected next stop", "floor", floor, "dir", dir)
		return floor, true
	}

	if floor, ok := firstAhead(*behind, cur, -dir); ok {
		*behind = removeFloor(*behind, floor)
		d.st.Direction = -dir
		d.log.Debug("Reversed direction", "floor", floor, "dir", d.st.Direction)
		return floor, true
	}

	for _, q := range []*[]int{ahead, behind} {
		if floor, ok := nearest(*q, cur); ok {
			*q = removeFloor(*q, floor)
			d.st.Direction = types.DirTowards(cur, floor)
			d.log.Debug("Selected nearest stale request", "floor", floor, "dir", d.st.Direction)
			return floor, true
		}
	}
	return 0, false
}

// CommitArrival moves the car to floor. It must be called once for every
// floor returned by SelectNextStop, after the car got there. Anything still
// pending for that floor is served by the stop.
func (d *Dispatcher) CommitArrival(floor int) {
	d.st.CurrentFloor = floor
	d.st.RouteLog = append(d.st.RouteLog, floor)
	d.st.UpQueue = removeFloor(d.st.UpQueue, floor)
	d.st.DownQueue = removeFloor(d.st.DownQueue, floor)
	d.log.Debug("Arrived", "floor", floor, "dir", d.st.Direction)
}

func (d *Dispatcher) queue(dir types.Direction) *[]int {
	if dir == types.DirUp {
		return &d.st.UpQueue
	}
	return &d.st.DownQueue
}

func (d *Dispatcher) CurrentFloor() int          { return d.st.CurrentFloor }
func (d *Dispatcher) Direction() types.Direction { return d.st.Direction }
func (d *Dispatcher) UpQueue() []int             { return slices.Clone(d.st.UpQueue) }
func (d *Dispatcher) DownQueue() []int           { return slices.Clone(d.st.DownQueue) }
func (d *Dispatcher) RequestLog() []int          { return slices.Clone(d.st.RequestLog) }
func (d *Dispatcher) RouteLog() []int            { return slices.Clone(d.st.RouteLog) }

// Pending reports whether any request is queued.
func (d *Dispatcher) Pending() bool {
	return len(d.st.UpQueue) > 0 || len(d.st.DownQueue) > 0
}

// Snapshot returns a deep copy of the dispatcher state.
func (d *Dispatcher) Snapshot() types.State {
	var snap types.State
	if err := deepcopy.Copy(&snap, &d.st); err != nil {
		panic(err)
	}
	return snap
}
