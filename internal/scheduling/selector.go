package scheduling

import "github.com/kris27x/ElevatorControlSystem/internal/building"

// SelectBestElevator picks the elevator that should answer a call at
// callFloor travelling in callDirection. It evaluates six priority tiers
// in order and the first tier with any candidate decides:
//
//  1. already targeting callFloor and converging on it in the call's
//     direction; fewest pending targets wins
//  2. already targeting callFloor regardless of direction; closest wins
//  3. idle; closest wins
//  4. converging on callFloor in the call's direction; fewest targets wins
//  5. idle or converging; closest wins
//  6. any active elevator, even one moving away; closest wins
//
// The returned index is the position in elevators. ok is false only when
// the fleet has no active elevator at all. Ties resolve to the first match
// in slice order, so a fleet laid out in ascending id order always prefers
// the lowest id.
func SelectBestElevator(elevators []building.Elevator, callFloor int, callDirection building.Direction) (int, bool) {
	targetingConverging := func(e *building.Elevator) bool {
		return e.Active() && e.HasTarget(callFloor) && converging(e, callFloor, callDirection)
	}
	targeting := func(e *building.Elevator) bool {
		return e.HasTarget(callFloor)
	}
	idle := func(e *building.Elevator) bool {
		return e.Status == building.Idle
	}
	toward := func(e *building.Elevator) bool {
		return e.Active() && converging(e, callFloor, callDirection)
	}
	notAway := func(e *building.Elevator) bool {
		return e.Active() && (e.Status == building.Idle || converging(e, callFloor, callDirection))
	}
	active := func(e *building.Elevator) bool {
		return e.Active()
	}

	if i, ok := pickLeastLoaded(elevators, targetingConverging); ok {
		return i, true
	}
	if i, ok := pickClosest(elevators, callFloor, targeting); ok {
		return i, true
	}
	if i, ok := pickClosest(elevators, callFloor, idle); ok {
		return i, true
	}
	if i, ok := pickLeastLoaded(elevators, toward); ok {
		return i, true
	}
	if i, ok := pickClosest(elevators, callFloor, notAway); ok {
		return i, true
	}
	return pickClosest(elevators, callFloor, active)
}

// converging reports whether the elevator's current movement brings it to
// callFloor without reversing, in the direction the caller wants to travel.
func converging(e *building.Elevator, callFloor int, callDirection building.Direction) bool {
	switch {
	case e.Status == building.Up && callDirection == building.DirUp:
		return e.CurrentFloor < callFloor
	case e.Status == building.Down && callDirection == building.DirDown:
		return e.CurrentFloor > callFloor
	default:
		return false
	}
}

// pickClosest scans the fleet once and returns the first matching elevator
// with the minimum distance to callFloor.
func pickClosest(elevators []building.Elevator, callFloor int, match func(*building.Elevator) bool) (int, bool) {
	best, bestDist := -1, 0
	for i := range elevators {
		e := &elevators[i]
		if !match(e) {
			continue
		}
		if d := e.DistanceTo(callFloor); best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// pickLeastLoaded scans the fleet once and returns the first matching
// elevator with the fewest pending targets.
func pickLeastLoaded(elevators []building.Elevator, match func(*building.Elevator) bool) (int, bool) {
	best, bestLoad := -1, 0
	for i := range elevators {
		e := &elevators[i]
		if !match(e) {
			continue
		}
		if l := len(e.TargetFloors); best == -1 || l < bestLoad {
			best, bestLoad = i, l
		}
	}
	return best, best >= 0
}
