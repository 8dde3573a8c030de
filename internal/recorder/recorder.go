// Package recorder turns key presses into a new chart ("map maker" mode).
package recorder

import (
	"git.lost.host/meutraa/drumcity/internal/game"
)

const Name = "Map Maker output"

// Writer stores an encoded chart, replacing whatever was at file.
type Writer interface {
	Write(file string, chart *game.ChartFile) error
}

type Recorder struct {
	writer Writer
	file   string
	audio  string
	offset float64

	arrows []game.ChartEntry
	armed  bool
}

// New creates a recorder that saves to file. audio is the chart's filename
// field and offset is subtracted from the clock for every press, so hit
// times are relative to the start of the audio.
func New(w Writer, file, audio string, offset float64) *Recorder {
	return &Recorder{
		writer: w,
		file:   file,
		audio:  audio,
		offset: offset,
	}
}

// Arm starts a new recording. Only an armed recorder saves on Finalize.
func (r *Recorder) Arm() {
	r.arrows = r.arrows[:0]
	r.armed = true
}

func (r *Recorder) Armed() bool {
	return r.armed
}

// Tick records a Slow arrow for every direction pressed this tick.
func (r *Recorder) Tick(elapsed float64, pressed game.Pressed) int {
	if !r.armed {
		return 0
	}
	n := 0
	for _, d := range game.Directions {
		if !pressed[d] {
			continue
		}
		r.arrows = append(r.arrows, game.ChartEntry{
			HitTime:   elapsed - r.offset,
			Speed:     game.Slow,
			Direction: d,
		})
		n++
	}
	return n
}

func (r *Recorder) Entries() []game.ChartEntry {
	return r.arrows
}

func (r *Recorder) Chart() *game.ChartFile {
	arrows := make([]game.ChartEntry, len(r.arrows))
	copy(arrows, r.arrows)
	return &game.ChartFile{
		Name:     Name,
		Filename: r.audio,
		Arrows:   arrows,
	}
}

// Finalize writes the recording and disarms the recorder. It does nothing if
// the recorder was never armed.
func (r *Recorder) Finalize() error {
	if !r.armed {
		return nil
	}
	r.armed = false
	if err := r.writer.Write(r.file, r.Chart()); nil != err {
		return &game.IOError{Path: r.file, Err: err}
	}
	return nil
}

func (r *Recorder) File() string {
	return r.file
}
