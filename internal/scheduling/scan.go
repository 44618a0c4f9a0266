// Package scheduling implements the dispatch algorithms: SCAN ordering of
// a cabin's target queue, best-elevator selection for incoming calls, and
// the one-floor-per-tick step simulation.
package scheduling

import (
	"sort"

	"github.com/kris27x/ElevatorControlSystem/internal/building"
)

// Reorder sorts a target queue for a cabin at currentFloor moving per
// status. The result is a fresh slice holding a permutation of targets;
// the input is never modified.
//
// Moving Up, floors at or above the cabin come first in ascending order,
// floors behind follow in ascending order. Moving Down is the mirror image.
// An Idle (or Off) cabin serves the nearest floor first. Equal-priority
// floors keep their input order.
func Reorder(currentFloor int, status building.Status, targets []int) []int {
	ordered := make([]int, len(targets))
	copy(ordered, targets)

	var less func(a, b int) bool
	switch status {
	case building.Up:
		less = func(a, b int) bool {
			aAhead, bAhead := a >= currentFloor, b >= currentFloor
			if aAhead != bAhead {
				return aAhead
			}
			return a < b
		}
	case building.Down:
		less = func(a, b int) bool {
			aAhead, bAhead := a <= currentFloor, b <= currentFloor
			if aAhead != bAhead {
				return aAhead
			}
			return a > b
		}
	default:
		less = func(a, b int) bool {
			return abs(a-currentFloor) < abs(b-currentFloor)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool { return less(ordered[i], ordered[j]) })
	return ordered
}

// UpdateTargets reorders the elevator's own queue in the direction it is
// already serving and refreshes the derived status. Always succeeds.
func UpdateTargets(e *building.Elevator) {
	e.TargetFloors = Reorder(e.CurrentFloor, e.Status, e.TargetFloors)
	e.UpdateStatus()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
