// Package building holds the fleet state: the building configuration and
// the fixed collection of elevator records mutated by pickups, target
// additions, steps and reconfiguration.
package building

import (
	"errors"
	"fmt"
)

// MaxElevators is the hard capacity of a fleet, independent of how many
// elevators are currently active.
const MaxElevators = 16

var ErrInvalidConfig = errors.New("invalid building configuration")

// Config is the mutable part of a building: how many floors it serves and
// how many of the sixteen elevator slots are in service.
type Config struct {
	NumberOfFloors      int `json:"numberOfFloors" yaml:"numberOfFloors"`
	ActiveElevatorCount int `json:"activeElevatorCount" yaml:"activeElevatorCount"`
}

func (c Config) Validate() error {
	if c.NumberOfFloors < 1 {
		return fmt.Errorf("%w: numberOfFloors must be at least 1, got %d", ErrInvalidConfig, c.NumberOfFloors)
	}
	if c.ActiveElevatorCount < 0 || c.ActiveElevatorCount > MaxElevators {
		return fmt.Errorf("%w: activeElevatorCount must be between 0 and %d, got %d",
			ErrInvalidConfig, MaxElevators, c.ActiveElevatorCount)
	}
	return nil
}

// Building owns the configuration and all sixteen elevator records. Records
// are never created or destroyed after New; reconfiguration only resets them.
type Building struct {
	Config    Config
	Elevators [MaxElevators]Elevator
}

// New creates a building with every elevator at floor 0 and an empty queue,
// the first cfg.ActiveElevatorCount marked Idle and the rest Off.
func New(cfg Config) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Building{}
	for i := range b.Elevators {
		b.Elevators[i].ID = i
	}
	b.apply(cfg)
	return b, nil
}

// Configure validates and applies a new configuration, resetting every
// elevator. Invalid input leaves the building untouched.
func (b *Building) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.apply(cfg)
	return nil
}

func (b *Building) apply(cfg Config) {
	b.Config = cfg
	for i := range b.Elevators {
		b.Elevators[i].reset(i < cfg.ActiveElevatorCount)
	}
}

// ElevatorByID returns the record for id, or nil when id is outside the
// sixteen fleet slots.
func (b *Building) ElevatorByID(id int) *Elevator {
	if id < 0 || id >= MaxElevators {
		return nil
	}
	return &b.Elevators[id]
}

// ValidFloor reports whether floor exists in the configured building.
func (b *Building) ValidFloor(floor int) bool {
	return floor >= 0 && floor < b.Config.NumberOfFloors
}
