package dispatcher

import (
	"slices"
	"testing"
)

func TestPlanRoute(t *testing.T) {
	d := New()
	moveTo(t, d, 3)
	for _, f := range []int{5, 2, 7} {
		d.SubmitRequest(f)
	}
	before := d.Snapshot()

	plan := d.PlanRoute()
	if !slices.Equal(plan, []int{5, 7, 2}) {
		t.Errorf("Expected plan 5 7 2, got %v", plan)
	}

	after := d.Snapshot()
	if after.CurrentFloor != before.CurrentFloor ||
		after.Direction != before.Direction ||
		!slices.Equal(after.UpQueue, before.UpQueue) ||
		!slices.Equal(after.DownQueue, before.DownQueue) ||
		!slices.Equal(after.RouteLog, before.RouteLog) {
		t.Errorf("PlanRoute mutated the dispatcher: before %+v after %+v", before, after)
	}

	if route := drain(d); !slices.Equal(route, plan) {
		t.Errorf("Actual route %v differs from plan %v", route, plan)
	}
}

func TestPlanRoute_Empty(t *testing.T) {
	if plan := New().PlanRoute(); len(plan) != 0 {
		t.Errorf("Expected empty plan, got %v", plan)
	}
}
