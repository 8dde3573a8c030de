package engine

import (
	"errors"
	"fmt"
)

type Mode uint8

const (
	Menu Mode = iota
	Play
	Record
)

func (m Mode) String() string {
	switch m {
	case Menu:
		return "menu"
	case Play:
		return "play"
	case Record:
		return "record"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

var ErrTransition = errors.New("invalid mode transition")

// canEnter lists the legal transitions. Play and Record are only reachable
// from the menu and only lead back to it.
func canEnter(from, to Mode) bool {
	switch from {
	case Menu:
		return to == Play || to == Record
	case Play, Record:
		return to == Menu
	}
	return false
}

func transitionError(from, to Mode) error {
	return fmt.Errorf("%w: %v -> %v", ErrTransition, from, to)
}
