package building

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNew_InitialFleetLayout(t *testing.T) {
	b, err := New(Config{NumberOfFloors: 10, ActiveElevatorCount: 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i, e := range b.Elevators {
		if e.ID != i {
			t.Errorf("Expected elevator %d to have id %d, got %d", i, i, e.ID)
		}
		if e.CurrentFloor != 0 || len(e.TargetFloors) != 0 {
			t.Errorf("Expected elevator %d at floor 0 with an empty queue, got %+v", i, e)
		}
		expected := Idle
		if i >= 3 {
			expected = Off
		}
		if e.Status != expected {
			t.Errorf("Expected elevator %d status %v, got %v", i, expected, e.Status)
		}
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"zero floors", Config{NumberOfFloors: 0, ActiveElevatorCount: 3}},
		{"negative active count", Config{NumberOfFloors: 5, ActiveElevatorCount: -1}},
		{"active count above capacity", Config{NumberOfFloors: 5, ActiveElevatorCount: 17}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigure_ResetsEveryElevator(t *testing.T) {
	b, err := New(Config{NumberOfFloors: 10, ActiveElevatorCount: 5})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b.Elevators[0].CurrentFloor = 7
	b.Elevators[0].TargetFloors = []int{1, 2}
	b.Elevators[0].Status = Down
	b.Elevators[4].TargetFloors = []int{9}
	b.Elevators[4].Status = Up

	if err := b.Configure(Config{NumberOfFloors: 8, ActiveElevatorCount: 2}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if expected := (Config{NumberOfFloors: 8, ActiveElevatorCount: 2}); b.Config != expected {
		t.Errorf("Expected config %+v, got %+v", expected, b.Config)
	}
	for i, e := range b.Elevators {
		if e.CurrentFloor != 0 || len(e.TargetFloors) != 0 {
			t.Errorf("Expected elevator %d reset, got %+v", i, e)
		}
		expected := Idle
		if i >= 2 {
			expected = Off
		}
		if e.Status != expected {
			t.Errorf("Expected elevator %d status %v, got %v", i, expected, e.Status)
		}
	}
}

func TestConfigure_InvalidInputLeavesStateUntouched(t *testing.T) {
	b, err := New(Config{NumberOfFloors: 10, ActiveElevatorCount: 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b.Elevators[1].CurrentFloor = 4
	b.Elevators[1].TargetFloors = []int{6}
	b.Elevators[1].Status = Up

	if err := b.Configure(Config{NumberOfFloors: 0, ActiveElevatorCount: 3}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}

	if expected := (Config{NumberOfFloors: 10, ActiveElevatorCount: 3}); b.Config != expected {
		t.Errorf("Expected config %+v, got %+v", expected, b.Config)
	}
	if b.Elevators[1].CurrentFloor != 4 || b.Elevators[1].Status != Up {
		t.Errorf("Expected elevator 1 untouched, got %+v", b.Elevators[1])
	}
	if expected := []int{6}; !reflect.DeepEqual(b.Elevators[1].TargetFloors, expected) {
		t.Errorf("Expected targets %v, got %v", expected, b.Elevators[1].TargetFloors)
	}
}

func TestElevator_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		elevator Elevator
		expected Status
	}{
		{"empty queue goes idle", Elevator{CurrentFloor: 3, TargetFloors: []int{}, Status: Up}, Idle},
		{"head above goes up", Elevator{CurrentFloor: 3, TargetFloors: []int{8}, Status: Idle}, Up},
		{"head below goes down", Elevator{CurrentFloor: 3, TargetFloors: []int{1}, Status: Idle}, Down},
		{"head at current floor reads idle", Elevator{CurrentFloor: 3, TargetFloors: []int{3}, Status: Up}, Idle},
		{"off stays off", Elevator{CurrentFloor: 0, TargetFloors: []int{}, Status: Off}, Off},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.elevator.UpdateStatus()
			if tc.elevator.Status != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, tc.elevator.Status)
			}
		})
	}
}

func TestElevator_RemoveTargetsAt(t *testing.T) {
	e := Elevator{TargetFloors: []int{4, 9, 4, 2}}

	e.RemoveTargetsAt(4)

	if expected := []int{9, 2}; !reflect.DeepEqual(e.TargetFloors, expected) {
		t.Errorf("Expected %v, got %v", expected, e.TargetFloors)
	}
}

func TestBuilding_Lookups(t *testing.T) {
	b, err := New(Config{NumberOfFloors: 10, ActiveElevatorCount: 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if e := b.ElevatorByID(15); e == nil || e.ID != 15 {
		t.Errorf("Expected elevator 15, got %+v", e)
	}
	if e := b.ElevatorByID(16); e != nil {
		t.Errorf("Expected nil for id 16, got %+v", e)
	}
	if e := b.ElevatorByID(-1); e != nil {
		t.Errorf("Expected nil for id -1, got %+v", e)
	}

	for floor, expected := range map[int]bool{-1: false, 0: true, 9: true, 10: false} {
		if got := b.ValidFloor(floor); got != expected {
			t.Errorf("Expected ValidFloor(%d) to be %v, got %v", floor, expected, got)
		}
	}
}

func TestElevator_JSONRoundTrip(t *testing.T) {
	e := Elevator{ID: 1, CurrentFloor: 2, TargetFloors: []int{3, 4}, Status: Down}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := `{"id":1,"currentFloor":2,"targetFloors":[3,4],"status":"Down"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}

	var back Elevator
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(back, e) {
		t.Errorf("Expected %+v, got %+v", e, back)
	}

	if err := json.Unmarshal([]byte(`{"status":"Sideways"}`), &back); err == nil {
		t.Error("Expected an error for an unknown status")
	}
}
