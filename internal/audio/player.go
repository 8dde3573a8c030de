// Package audio decodes songs and plays them on the default output device.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/drumcity/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// SampleRate of the output device. Songs are resampled to it.
const SampleRate = beep.SampleRate(44100)

var (
	initOnce sync.Once
	initErr  error
)

func initSpeaker() error {
	initOnce.Do(func() {
		initErr = speaker.Init(SampleRate, SampleRate.N(time.Second/60))
	})
	return initErr
}

type Player struct {
	file     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

// Supported reports whether file has an extension Open can decode.
func Supported(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3", ".ogg", ".wav":
		return true
	}
	return false
}

func decode(file string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", filepath.Ext(file))
}

// Open decodes a song without starting it. Any failure is an AssetError.
func Open(file string) (*Player, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, &game.AssetError{Path: file, Err: err}
	}
	streamer, format, err := decode(file, f)
	if nil != err {
		f.Close()
		return nil, &game.AssetError{Path: file, Err: err}
	}
	return &Player{
		file:     file,
		streamer: streamer,
		format:   format,
	}, nil
}

func (p *Player) Play() error {
	if err := initSpeaker(); nil != err {
		return fmt.Errorf("unable to open audio device: %w", err)
	}
	var s beep.Streamer = p.streamer
	if p.format.SampleRate != SampleRate {
		s = beep.Resample(4, p.format.SampleRate, SampleRate, s)
	}
	p.ctrl = &beep.Ctrl{Streamer: s}
	speaker.Play(p.ctrl)
	return nil
}

func (p *Player) Close() error {
	if nil != p.ctrl {
		speaker.Lock()
		p.ctrl.Paused = true
		p.ctrl.Streamer = nil
		speaker.Unlock()
	}
	return p.streamer.Close()
}

// Silent stands in for a Player when audio is disabled.
type Silent struct{}

// OpenSilent checks that the song exists but never plays it.
func OpenSilent(file string) (*Silent, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, &game.AssetError{Path: file, Err: err}
	}
	return &Silent{}, f.Close()
}

func (s *Silent) Play() error { return nil }
func (s *Silent) Close() error { return nil }
