package executor

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/elev"
	"liftsim/src/timer"
	"liftsim/src/types"
)

type testRig struct {
	e            *Executor
	mgr          *elev.CarMgr
	out          *bytes.Buffer
	travelAction chan timer.TimerAction
	pauseAction  chan timer.TimerAction
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	mgr := elev.StartCarMgr(dispatcher.New())
	t.Cleanup(mgr.Stop)
	rig := &testRig{
		mgr:          mgr,
		out:          &bytes.Buffer{},
		travelAction: make(chan timer.TimerAction, 64),
		pauseAction:  make(chan timer.TimerAction, 64),
	}
	rig.e = newExecutor(config.Default(), mgr, rig.out, rig.travelAction, rig.pauseAction)
	return rig
}

func (rig *testRig) floor(f int) {
	rig.e.handleKey(types.KeyEvent{Action: types.KeyFloor, Floor: f})
}

func (rig *testRig) key(a types.KeyAction) bool {
	return rig.e.handleKey(types.KeyEvent{Action: a})
}

// travel ticks until the car has arrived.
func (rig *testRig) travel(t *testing.T) {
	t.Helper()
	for i := 0; rig.e.travelling; i++ {
		if i > config.MaxFloors {
			t.Fatal("Car never arrived")
		}
		rig.e.onTravelTick()
	}
}

func TestExecutor_AddRequest(t *testing.T) {
	rig := newTestRig(t)
	rig.floor(0)
	rig.floor(5)
	rig.floor(8)

	out := rig.out.String()
	for _, want := range []string{
		"Already at floor 0 (served).",
		"Request 5 added.",
		"Floor out of range (0–7).",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if snap := rig.mgr.Snapshot(); !slices.Equal(snap.RequestLog, []int{0, 5}) {
		t.Errorf("Out of range floor reached the dispatcher: %v", snap.RequestLog)
	}
}

func TestExecutor_ProcessNext(t *testing.T) {
	rig := newTestRig(t)
	rig.key(types.KeyNext)
	if !strings.Contains(rig.out.String(), "No pending requests.") {
		t.Errorf("Expected no pending message, got:\n%s", rig.out.String())
	}

	rig.floor(3)
	rig.key(types.KeyNext)
	if !strings.Contains(rig.out.String(), "Processing request → 3 (direction=Up)") {
		t.Errorf("Expected processing message, got:\n%s", rig.out.String())
	}
	if len(rig.travelAction) != 1 {
		t.Fatalf("Expected travel timer start, got %d actions", len(rig.travelAction))
	}

	// The dispatcher only learns about the move on arrival.
	rig.e.onTravelTick()
	if snap := rig.mgr.Snapshot(); snap.CurrentFloor != 0 || rig.e.carPos != 1 {
		t.Errorf("Expected car shown at 1 and dispatcher at 0, got %d and %d", rig.e.carPos, snap.CurrentFloor)
	}
	rig.key(types.KeyNext)
	if !strings.Contains(rig.out.String(), "Car is moving") {
		t.Error("Expected next to be refused while travelling")
	}

	rig.travel(t)
	snap := rig.mgr.Snapshot()
	if snap.CurrentFloor != 3 || !slices.Equal(snap.RouteLog, []int{0, 3}) {
		t.Errorf("Unexpected state after arrival %+v", snap)
	}
	if !strings.Contains(rig.out.String(), "Reached floor 3") {
		t.Errorf("Expected arrival message, got:\n%s", rig.out.String())
	}
}

func TestExecutor_AutoProcess(t *testing.T) {
	rig := newTestRig(t)
	rig.key(types.KeyAutoProcess)
	if !strings.Contains(rig.out.String(), "No pending requests to auto-process.") {
		t.Errorf("Expected nothing to auto-process, got:\n%s", rig.out.String())
	}

	rig.floor(3)
	rig.key(types.KeyNext)
	rig.travel(t)
	for _, f := range []int{5, 2, 7} {
		rig.floor(f)
	}

	rig.key(types.KeyAutoProcess)
	for i := 0; rig.e.autoRun; i++ {
		if i > 10 {
			t.Fatal("Auto process never finished")
		}
		rig.travel(t)
		rig.e.onPauseDone()
	}

	if snap := rig.mgr.Snapshot(); !slices.Equal(snap.RouteLog, []int{0, 3, 5, 7, 2}) {
		t.Errorf("Expected route 0 3 5 7 2, got %v", snap.RouteLog)
	}
	if !strings.Contains(rig.out.String(), "All requests processed.") {
		t.Errorf("Expected completion message, got:\n%s", rig.out.String())
	}
}

func TestExecutor_Reports(t *testing.T) {
	rig := newTestRig(t)
	rig.key(types.KeyHistory)
	rig.key(types.KeyPlan)
	rig.floor(4)
	rig.floor(2)
	rig.key(types.KeyHistory)
	rig.key(types.KeyPlan)
	rig.key(types.KeyRoute)
	rig.key(types.KeyStatus)

	out := rig.out.String()
	for _, want := range []string{
		"History empty.",
		"History (latest first): 2 4",
		"Planned route: 2 → 4",
		"Route Taken: 0",
		"UP Queue: [2 4]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestExecutor_Quit(t *testing.T) {
	rig := newTestRig(t)
	if !rig.key(types.KeyQuit) {
		t.Error("Expected quit")
	}
	if rig.key(types.KeyUnknown) {
		t.Error("Unknown key should not quit")
	}
}

func TestRun_QuitsOnKey(t *testing.T) {
	mgr := elev.StartCarMgr(dispatcher.New())
	defer mgr.Stop()

	cfg := config.Default()
	cfg.TravelDuration = time.Millisecond
	cfg.ArrivalPause = time.Millisecond

	keys := make(chan types.KeyEvent)
	done := make(chan struct{})
	var out bytes.Buffer
	go func() {
		defer close(done)
		Run(context.Background(), cfg, mgr, keys, &out)
	}()

	keys <- types.KeyEvent{Action: types.KeyFloor, Floor: 2}
	keys <- types.KeyEvent{Action: types.KeyAutoProcess}

	deadline := time.After(2 * time.Second)
	for mgr.Snapshot().CurrentFloor != 2 {
		select {
		case <-deadline:
			t.Fatal("Car never reached floor 2")
		case <-time.After(5 * time.Millisecond):
		}
	}

	keys <- types.KeyEvent{Action: types.KeyQuit}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}
