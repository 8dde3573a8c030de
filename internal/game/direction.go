package game

import (
	"fmt"
	"math"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions in the order input and recording are processed.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Y is the lane of arrows with this direction.
func (d Direction) Y() float64 {
	switch d {
	case Up:
		return 150
	case Down:
		return 50
	case Left:
		return -50
	case Right:
		return -150
	}
	return 0
}

// Rotation of the arrow glyph, in radians.
func (d Direction) Rotation() float64 {
	switch d {
	case Up:
		return math.Pi * 0.5
	case Down:
		return -math.Pi * 0.5
	case Left:
		return math.Pi
	case Right:
		return 0
	}
	return 0
}

func (d Direction) MarshalText() ([]byte, error) {
	if d > Right {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	for _, c := range Directions {
		if c.String() == string(text) {
			*d = c
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", string(text))
}

// Pressed holds whether each direction's key was pressed during this tick.
type Pressed [len(Directions)]bool

func (p Pressed) Any() bool {
	for _, v := range p {
		if v {
			return true
		}
	}
	return false
}
