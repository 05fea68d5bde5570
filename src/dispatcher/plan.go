package dispatcher

import (
	"io"
	"log/slog"

	"github.com/tiendc/go-deepcopy"
)

// PlanRoute returns the order in which pending floors would be visited if no
// further requests arrive. Selection and arrival are simulated on a copy of
// the state, so the dispatcher itself is not modified.
func (d *Dispatcher) PlanRoute() []int {
	sim := &Dispatcher{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	if err := deepcopy.Copy(&sim.st, &d.st); err != nil {
		panic(err)
	}

	var route []int
	for {
		floor, ok := sim.SelectNextStop()
		if !ok {
			return route
		}
		sim.CommitArrival(floor)
		route = append(route, floor)
	}
}
