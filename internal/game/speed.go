package game

import "fmt"

type Speed uint8

const (
	Slow Speed = iota
	Medium
	Fast
)

var Speeds = [...]Speed{Slow, Medium, Fast}

func (s Speed) String() string {
	switch s {
	case Slow:
		return "Slow"
	case Medium:
		return "Medium"
	case Fast:
		return "Fast"
	}
	return fmt.Sprintf("Speed(%d)", uint8(s))
}

func (s Speed) Multiplier() float64 {
	switch s {
	case Slow:
		return 1.0
	case Medium:
		return 1.2
	case Fast:
		return 1.5
	}
	return 1.0
}

// Value is the x velocity of an arrow with this speed.
func (s Speed) Value() float64 {
	return BaseSpeed * s.Multiplier()
}

// TravelDuration is the number of seconds from spawn to target.
func (s Speed) TravelDuration() float64 {
	return Distance / s.Value()
}

func (s Speed) MarshalText() ([]byte, error) {
	if s > Fast {
		return nil, fmt.Errorf("invalid speed %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Speed) UnmarshalText(text []byte) error {
	for _, c := range Speeds {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown speed %q", string(text))
}
