package dispatcher

import (
	"slices"

	"liftsim/src/types"
)

// insertFloor adds floor to q unless it is already there. Up queues are kept
// ascending and down queues descending, so the head of each queue is always
// the stop closest to the car in that queue's direction.
func insertFloor(q []int, floor int, dir types.Direction) []int {
	if slices.Contains(q, floor) {
		return q
	}
	q = append(q, floor)
	slices.Sort(q)
	if dir == types.DirDown {
		slices.Reverse(q)
	}
	return q
}

func removeFloor(q []int, floor int) []int {
	if i := slices.Index(q, floor); i >= 0 {
		return slices.Delete(q, i, i+1)
	}
	return q
}

// firstAhead returns the first floor in q that lies strictly beyond current
// in direction dir.
func firstAhead(q []int, current int, dir types.Direction) (int, bool) {
	for _, floor := range q {
		if (floor-current)*int(dir) > 0 {
			return floor, true
		}
	}
	return 0, false
}

// nearest returns the floor in q with the smallest distance to current.
// Ties go to the floor met first in the queue's own order.
func nearest(q []int, current int) (int, bool) {
	if len(q) == 0 {
		return 0, false
	}
	best := q[0]
	for _, floor := range q[1:] {
		if abs(floor-current) < abs(best-current) {
			best = floor
		}
	}
	return best, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
