// Package controller is the dispatch engine. It owns the building behind a
// single lock and exposes the operations the HTTP layer and the simulator
// call: status and config reads, reconfiguration, pickups, target additions
// and step ticks.
package controller

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/tiendc/go-deepcopy"

	"github.com/kris27x/ElevatorControlSystem/internal/building"
	"github.com/kris27x/ElevatorControlSystem/internal/scheduling"
)

var (
	// ErrNoElevatorAvailable is returned by Pickup when every elevator is
	// out of service.
	ErrNoElevatorAvailable = errors.New("no elevator available")

	// ErrFloorOutOfRange is returned by Pickup for floors the configured
	// building does not have.
	ErrFloorOutOfRange = errors.New("floor out of range")
)

// Controller serializes all fleet access. Every operation holds the lock
// for its full duration, so callers never observe a half-mutated fleet.
type Controller struct {
	mu       sync.RWMutex
	building *building.Building
	log      zerolog.Logger
}

// New creates an engine around a fresh building.
func New(cfg building.Config, log zerolog.Logger) (*Controller, error) {
	b, err := building.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Controller{
		building: b,
		log:      log.With().Str("component", "controller").Logger(),
	}, nil
}

// GetStatus returns a snapshot of all sixteen elevator records. The
// snapshot is deep-copied, so callers can hold or mutate it freely while
// the fleet keeps moving.
func (c *Controller) GetStatus() []building.Elevator {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]building.Elevator, building.MaxElevators)
	if err := deepcopy.Copy(&snapshot, c.building.Elevators[:]); err != nil {
		c.log.Panic().Err(err).Msg("fleet snapshot copy failed")
	}
	return snapshot
}

// GetConfig returns the current building configuration.
func (c *Controller) GetConfig() building.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.building.Config
}

// Configure applies a new building configuration and resets the whole
// fleet: active elevators become Idle at floor 0 with empty queues, the
// rest are switched Off. Invalid input is rejected with
// building.ErrInvalidConfig and leaves the fleet untouched.
func (c *Controller) Configure(numberOfFloors, activeElevatorCount int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg := building.Config{
		NumberOfFloors:      numberOfFloors,
		ActiveElevatorCount: activeElevatorCount,
	}
	if err := c.building.Configure(cfg); err != nil {
		c.log.Warn().Err(err).Msg("reconfiguration rejected")
		return err
	}
	c.log.Info().
		Int("numberOfFloors", numberOfFloors).
		Int("activeElevatorCount", activeElevatorCount).
		Msg("fleet reconfigured")
	return nil
}

// Pickup dispatches a floor call: the selector picks the best elevator,
// the call floor joins its queue and the queue is reordered. The assigned
// elevator id is returned. Duplicate queue entries are allowed here; they
// are cleared together when the cabin arrives.
func (c *Controller) Pickup(floor int, direction building.Direction) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.building.ValidFloor(floor) {
		return -1, fmt.Errorf("pickup at floor %d: %w", floor, ErrFloorOutOfRange)
	}

	idx, ok := scheduling.SelectBestElevator(c.building.Elevators[:], floor, direction)
	if !ok {
		c.log.Warn().Int("floor", floor).Msg("pickup with no elevator available")
		return -1, ErrNoElevatorAvailable
	}

	e := &c.building.Elevators[idx]
	e.TargetFloors = append(e.TargetFloors, floor)
	scheduling.UpdateTargets(e)

	c.log.Debug().
		Int("floor", floor).
		Stringer("direction", direction).
		Int("elevator", e.ID).
		Msg("pickup assigned")
	return e.ID, nil
}

// AddTarget queues targetFloor on one specific elevator and reorders its
// queue. Unknown ids, Off elevators and floors outside the building are
// rejected as a silent no-op: the return value reports acceptance and no
// error is raised.
func (c *Controller) AddTarget(elevatorID, targetFloor int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.building.ElevatorByID(elevatorID)
	if e == nil || !e.Active() || !c.building.ValidFloor(targetFloor) {
		c.log.Debug().
			Int("elevator", elevatorID).
			Int("floor", targetFloor).
			Msg("target rejected")
		return false
	}

	e.TargetFloors = append(e.TargetFloors, targetFloor)
	scheduling.UpdateTargets(e)

	c.log.Debug().
		Int("elevator", elevatorID).
		Int("floor", targetFloor).
		Msg("target queued")
	return true
}

// Step advances the whole fleet by one discrete tick. Each elevator moves
// at most one floor; none observes another's mid-tick state.
func (c *Controller) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.building.Elevators {
		scheduling.Advance(&c.building.Elevators[i])
	}
	c.log.Trace().Msg("tick applied")
}
