package game

import "fmt"

// ParseError is returned when a chart file is malformed.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse chart %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AssetError is returned when a file a chart refers to cannot be found.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("unable to load asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// IOError is returned when a recorded chart cannot be saved.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("unable to write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// StateError signals an operation attempted in the wrong state, e.g.
// starting playback before there is anything to play.
type StateError struct {
	Op  string
	Err error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }
