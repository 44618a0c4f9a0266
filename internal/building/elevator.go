package building

// Elevator is one cabin of the fleet. ID is assigned at fleet creation and
// never changes; everything else is reset on reconfiguration.
type Elevator struct {
	ID           int    `json:"id"`
	CurrentFloor int    `json:"currentFloor"`
	TargetFloors []int  `json:"targetFloors"`
	Status       Status `json:"status"`
}

// Active reports whether the elevator is part of the active fleet.
func (e *Elevator) Active() bool {
	return e.Status != Off
}

// HasTarget reports whether floor is anywhere in the pending queue.
func (e *Elevator) HasTarget(floor int) bool {
	for _, f := range e.TargetFloors {
		if f == floor {
			return true
		}
	}
	return false
}

// DistanceTo is the absolute floor distance between the cabin and floor.
func (e *Elevator) DistanceTo(floor int) int {
	d := e.CurrentFloor - floor
	if d < 0 {
		return -d
	}
	return d
}

// RemoveTargetsAt drops every queued entry equal to floor, keeping the
// relative order of the rest. Duplicate insertions for the same floor are
// cleared together on arrival.
func (e *Elevator) RemoveTargetsAt(floor int) {
	kept := e.TargetFloors[:0]
	for _, f := range e.TargetFloors {
		if f != floor {
			kept = append(kept, f)
		}
	}
	e.TargetFloors = kept
}

// UpdateStatus recomputes the derived status from the queue head. Off is
// sticky: only reconfiguration moves an elevator in or out of the active
// fleet. A head at the current floor implies no movement, so the elevator
// reads as Idle until the next tick purges it.
func (e *Elevator) UpdateStatus() {
	if e.Status == Off {
		return
	}
	if len(e.TargetFloors) == 0 {
		e.Status = Idle
		return
	}
	switch head := e.TargetFloors[0]; {
	case head > e.CurrentFloor:
		e.Status = Up
	case head < e.CurrentFloor:
		e.Status = Down
	default:
		e.Status = Idle
	}
}

func (e *Elevator) reset(active bool) {
	e.CurrentFloor = 0
	e.TargetFloors = []int{}
	if active {
		e.Status = Idle
	} else {
		e.Status = Off
	}
}
