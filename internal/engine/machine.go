// Package engine runs the menu, play and record modes of the game, one tick
// at a time.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"git.lost.host/meutraa/drumcity/internal/clock"
	"git.lost.host/meutraa/drumcity/internal/game"
	"git.lost.host/meutraa/drumcity/internal/recorder"
	"git.lost.host/meutraa/drumcity/internal/score"
	"github.com/google/uuid"
)

// Sink is a loaded song that can be started once.
type Sink interface {
	Play() error
	Close() error
}

type AudioOpener func(path string) (Sink, error)

type Loader interface {
	Parse(file string) (*game.Chart, error)
}

type Options struct {
	Loader    Loader
	OpenAudio AudioOpener
	Scorer    score.Scorer

	// Recorder is used in record mode, together with RecordAudio
	Recorder    *recorder.Recorder
	RecordAudio string

	// Seconds between entering a mode and starting the audio
	StartOffset float64

	Logger *slog.Logger
}

type Machine struct {
	opts Options
	log  *slog.Logger

	mode    Mode
	clock   clock.Clock
	tracker score.Tracker
	trigger Trigger
	sink    Sink

	play *playSession
}

func New(opts Options) *Machine {
	if nil == opts.Logger {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if nil == opts.Scorer {
		opts.Scorer = &score.DefaultScorer{}
	}
	return &Machine{
		opts:    opts,
		log:     opts.Logger,
		trigger: Trigger{Offset: opts.StartOffset},
	}
}

func (m *Machine) Mode() Mode {
	return m.mode
}

// Score of the current, or last, play session.
func (m *Machine) Score() score.Score {
	return m.tracker.Score()
}

func (m *Machine) Elapsed() float64 {
	return m.clock.Elapsed()
}

// Play loads a chart and starts playing it. On error the machine stays in
// the menu.
func (m *Machine) Play(chartFile string) error {
	if !canEnter(m.mode, Play) {
		return transitionError(m.mode, Play)
	}
	if nil == m.opts.Loader {
		return &game.StateError{Op: "play", Err: errors.New("no chart loader")}
	}

	chart, err := m.opts.Loader.Parse(chartFile)
	if nil != err {
		return err
	}
	sink, err := m.openAudio(chart.AudioPath)
	if nil != err {
		return err
	}

	m.sink = sink
	m.play = newPlaySession(chart)
	m.tracker.Reset()
	m.enter(Play)
	m.log.Info("playing chart", "name", chart.Name, "arrows", len(chart.Events))
	return nil
}

// Record starts a map maker session.
func (m *Machine) Record() error {
	if !canEnter(m.mode, Record) {
		return transitionError(m.mode, Record)
	}
	if nil == m.opts.Recorder {
		return &game.StateError{Op: "record", Err: errors.New("no recorder")}
	}

	sink, err := m.openAudio(m.opts.RecordAudio)
	if nil != err {
		return err
	}

	m.sink = sink
	m.opts.Recorder.Arm()
	m.enter(Record)
	m.log.Info("recording chart", "file", m.opts.Recorder.File())
	return nil
}

// Exit tears down the current session and returns to the menu. Leaving
// record mode saves the recording; a failure to save is returned after the
// teardown completes.
func (m *Machine) Exit() error {
	if !canEnter(m.mode, Menu) {
		return transitionError(m.mode, Menu)
	}

	var err error
	switch m.mode {
	case Play:
		s := m.tracker.Score()
		m.log.Info("play finished", "points", s.Points, "hits", s.Hits, "misses", s.Misses)
		m.play = nil
	case Record:
		err = m.opts.Recorder.Finalize()
		if nil == err {
			m.log.Info("saved recording", "file", m.opts.Recorder.File(), "arrows", len(m.opts.Recorder.Entries()))
		}
	}

	if nil != m.sink {
		if cerr := m.sink.Close(); nil != cerr {
			m.log.Warn("unable to close audio", "error", cerr)
		}
		m.sink = nil
	}

	m.mode = Menu
	m.log = m.opts.Logger
	return err
}

// Tick advances the active session to now. pressed holds the directions
// whose key went down since the previous tick. Nothing happens in the menu.
func (m *Machine) Tick(now time.Time, pressed game.Pressed) (Frame, error) {
	frame := Frame{Mode: m.mode}
	if m.mode == Menu {
		return frame, nil
	}

	m.clock.Update(now)
	frame.Elapsed, frame.Delta = m.clock.Elapsed(), m.clock.Delta()

	if m.trigger.Due(frame.Elapsed) {
		if nil == m.sink {
			return frame, &game.StateError{Op: "start audio", Err: errors.New("no audio sink")}
		}
		if err := m.sink.Play(); nil != err {
			return frame, fmt.Errorf("unable to start audio: %w", err)
		}
		frame.AudioStarted = true
		m.log.Debug("started audio", "elapsed", frame.Elapsed)
	}

	switch m.mode {
	case Play:
		m.play.tick(&frame, pressed, m.opts.Scorer, &m.tracker)
		frame.Score = m.tracker.Score()
		if late := m.play.scheduler.Late(); late > m.play.late {
			m.log.Warn("arrows spawned late", "count", late-m.play.late, "elapsed", frame.Elapsed)
			m.play.late = late
		}
	case Record:
		frame.Recorded = m.opts.Recorder.Tick(frame.Elapsed, pressed)
	}
	return frame, nil
}

func (m *Machine) enter(mode Mode) {
	m.mode = mode
	m.clock.Reset()
	m.trigger.Reset()
	m.log = m.opts.Logger.With("session", uuid.NewString(), "mode", mode.String())
}

func (m *Machine) openAudio(path string) (Sink, error) {
	if nil == m.opts.OpenAudio {
		return nil, nil
	}
	return m.opts.OpenAudio(path)
}
