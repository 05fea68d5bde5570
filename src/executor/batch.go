package executor

import (
	"fmt"
	"io"
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/utils"
)

// RunBatch submits floors in order, then serves every pending request without
// animation and prints the route taken.
func RunBatch(cfg config.Config, mgr *elev.CarMgr, floors []int, out io.Writer) error {
	for _, floor := range floors {
		if floor < 0 || floor >= cfg.NumFloors {
			return fmt.Errorf("floor %d out of range (0–%d)", floor, cfg.NumFloors-1)
		}
	}

	for _, floor := range floors {
		fmt.Fprintln(out, mgr.Submit(floor).String())
	}
	for {
		floor, ok := mgr.Next()
		if !ok {
			break
		}
		mgr.Arrive(floor)
		slog.Debug("Batch stop", "floor", floor)
		fmt.Fprintf(out, "Reached floor %d\n", floor)
	}
	fmt.Fprintln(out, "Route Taken: "+utils.FormatRoute(mgr.Snapshot().RouteLog))
	return nil
}
