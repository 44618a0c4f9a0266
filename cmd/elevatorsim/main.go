// Command elevatorsim drives the dispatch engine from the terminal, one
// keypress per action, or fully automatic with -auto. It talks to the
// engine directly; no HTTP involved.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"github.com/kris27x/ElevatorControlSystem/internal/building"
	"github.com/kris27x/ElevatorControlSystem/internal/controller"
	"github.com/kris27x/ElevatorControlSystem/internal/logging"
)

var Logger = logging.GetLoggerConfigured(zerolog.WarnLevel)

func main() {
	floors := flag.Int("floors", 10, "Number of floors in the building")
	elevators := flag.Int("elevators", 3, "Number of active elevators")
	auto := flag.Int("auto", 0, "Run N random pickups and step until all idle, then exit")
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	flag.Parse()

	cfg := building.Config{NumberOfFloors: *floors, ActiveElevatorCount: *elevators}
	ctrl, err := controller.New(cfg, *Logger)
	if err != nil {
		Logger.Fatal().Err(err).Msg("creating dispatch engine failed")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	if *auto > 0 {
		runAuto(ctrl, rng, *auto, *floors)
		return
	}
	runInteractive(ctrl, rng, *floors)
}

func runAuto(ctrl *controller.Controller, rng *rand.Rand, pickups, floors int) {
	for i := 0; i < pickups; i++ {
		floor, dir := randomCall(rng, floors)
		id, err := ctrl.Pickup(floor, dir)
		if err != nil {
			Logger.Fatal().Err(err).Msg("pickup failed")
		}
		fmt.Printf("pickup at floor %d going %v -> elevator %d\n", floor, dir, id)
	}

	// Worst case one full sweep of the building per pickup.
	maxTicks := floors * (pickups + 1)
	for tick := 1; tick <= maxTicks; tick++ {
		ctrl.Step()
		if allIdle(ctrl) {
			render(ctrl)
			fmt.Printf("all elevators idle after %d ticks\n", tick)
			return
		}
	}
	render(ctrl)
	fmt.Printf("still busy after %d ticks, giving up\n", maxTicks)
	os.Exit(1)
}

func runInteractive(ctrl *controller.Controller, rng *rand.Rand, floors int) {
	fmt.Println("controls: [p] pickup  [t] target  [s/space] step  [r] redraw  [c] cycle fleet size  [q] quit")
	render(ctrl)

	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			Logger.Fatal().Err(err).Msg("reading key failed")
		}
		switch {
		case char == 'q' || key == keyboard.KeyCtrlC:
			return
		case char == 's' || key == keyboard.KeySpace:
			ctrl.Step()
			render(ctrl)
		case char == 'p':
			floor, dir := randomCall(rng, floors)
			id, err := ctrl.Pickup(floor, dir)
			if err != nil {
				fmt.Printf("pickup at floor %d: %v\n", floor, err)
				continue
			}
			fmt.Printf("pickup at floor %d going %v -> elevator %d\n", floor, dir, id)
		case char == 't':
			active := ctrl.GetConfig().ActiveElevatorCount
			if active == 0 {
				fmt.Println("no active elevators")
				continue
			}
			id, floor := rng.Intn(active), rng.Intn(floors)
			if ctrl.AddTarget(id, floor) {
				fmt.Printf("target floor %d queued on elevator %d\n", floor, id)
			}
		case char == 'r':
			render(ctrl)
		case char == 'c':
			next := ctrl.GetConfig().ActiveElevatorCount%building.MaxElevators + 1
			if err := ctrl.Configure(floors, next); err != nil {
				fmt.Printf("reconfigure: %v\n", err)
				continue
			}
			fmt.Printf("fleet reset, %d elevators active\n", next)
			render(ctrl)
		}
	}
}

func randomCall(rng *rand.Rand, floors int) (int, building.Direction) {
	floor := rng.Intn(floors)
	switch {
	case floor == 0:
		return floor, building.DirUp
	case floor == floors-1:
		return floor, building.DirDown
	case rng.Intn(2) == 0:
		return floor, building.DirUp
	default:
		return floor, building.DirDown
	}
}

func allIdle(ctrl *controller.Controller) bool {
	for _, e := range ctrl.GetStatus() {
		if e.Status == building.Up || e.Status == building.Down || len(e.TargetFloors) > 0 {
			return false
		}
	}
	return true
}

func render(ctrl *controller.Controller) {
	fmt.Println("  +----+-------+--------+----------------------+")
	fmt.Println("  | id | floor | status | targets              |")
	fmt.Println("  +----+-------+--------+----------------------+")
	for _, e := range ctrl.GetStatus() {
		if e.Status == building.Off {
			continue
		}
		fmt.Printf("  | %2d | %5d | %-6.6s | %-20.20s |\n",
			e.ID, e.CurrentFloor, e.Status.String(), fmt.Sprint(e.TargetFloors))
	}
	fmt.Println("  +----+-------+--------+----------------------+")
}
