package utils

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"liftsim/src/types"
)

// FormatRoute joins floors with arrows, oldest first.
func FormatRoute(route []int) string {
	return joinFloors(route, " → ")
}

// FormatHistory lists requested floors latest first. It returns "" when
// nothing was ever requested.
func FormatHistory(requests []int) string {
	latestFirst := slices.Clone(requests)
	slices.Reverse(latestFirst)
	return joinFloors(latestFirst, " ")
}

// FormatStatus renders the car state as a multi-line block.
func FormatStatus(state types.State) string {
	return fmt.Sprintf("Elevator at floor: %d\nDirection: %v\nUP Queue: %v\nDOWN Queue: %v\n",
		state.CurrentFloor, state.Direction, state.UpQueue, state.DownQueue)
}

// FormatShaft draws the building top floor first, marking the car position
// and floors with pending requests.
func FormatShaft(numFloors, carFloor int, state types.State) string {
	var sb strings.Builder
	for floor := numFloors - 1; floor >= 0; floor-- {
		car := "   "
		if floor == carFloor {
			car = "[" + strconv.Itoa(floor) + "]"
		}
		mark := ""
		switch {
		case slices.Contains(state.UpQueue, floor):
			mark = " ^"
		case slices.Contains(state.DownQueue, floor):
			mark = " v"
		}
		fmt.Fprintf(&sb, "%2d |%s|%s\n", floor, car, mark)
	}
	return sb.String()
}

func joinFloors(floors []int, sep string) string {
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, sep)
}

// ParseFloors reads a comma separated list of floors, e.g. "5,2,7".
func ParseFloors(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var floors []int
	for _, part := range strings.Split(s, ",") {
		f, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid floor %q: %w", part, err)
		}
		floors = append(floors, f)
	}
	return floors, nil
}
