package building

import (
	"encoding/json"
	"fmt"
)

// Status is the operating state of a single elevator. It is a closed set;
// consumers are expected to switch over all four values.
type Status int

const (
	Idle Status = iota
	Up
	Down
	Off
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Off:
		return "Off"
	default:
		return "Undefined"
	}
}

// ParseStatus maps the wire form back to a Status value.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "Idle":
		return Idle, nil
	case "Up":
		return Up, nil
	case "Down":
		return Down, nil
	case "Off":
		return Off, nil
	default:
		return Idle, fmt.Errorf("unknown elevator status %q", name)
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Direction is the travel direction of a floor call.
type Direction int

const (
	DirDown Direction = -1
	DirUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Undefined"
	}
}

func (d Direction) Valid() bool {
	return d == DirUp || d == DirDown
}
