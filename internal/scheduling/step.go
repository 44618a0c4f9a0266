package scheduling

import "github.com/kris27x/ElevatorControlSystem/internal/building"

// Advance moves one elevator by a single discrete tick. Off elevators and
// elevators with nothing queued are untouched. The queue is reordered for
// the cabin's position before the move, so the head is always the next
// floor in SCAN order. Arriving at the head clears every queued entry for
// that floor and re-derives the status from what remains.
func Advance(e *building.Elevator) {
	if e.Status == building.Off || len(e.TargetFloors) == 0 {
		return
	}
	UpdateTargets(e)

	head := e.TargetFloors[0]
	switch {
	case e.CurrentFloor < head:
		e.CurrentFloor++
		e.Status = building.Up
	case e.CurrentFloor > head:
		e.CurrentFloor--
		e.Status = building.Down
	}

	if e.CurrentFloor == head {
		e.RemoveTargetsAt(e.CurrentFloor)
		e.UpdateStatus()
	}
}
