// Package input turns keyboard events into per-tick direction presses.
package input

import (
	"errors"

	"git.lost.host/meutraa/drumcity/internal/game"
	"github.com/eiannone/keyboard"
)

var ErrClosed = errors.New("keyboard closed")

// Keys are the runes for Up, Down, Left and Right. The arrow keys always work.
type Keys [len(game.Directions)]rune

type Snapshot struct {
	Pressed game.Pressed
	Quit    bool
	Enter   bool
	Runes   []rune // Typed runes that are not direction keys
}

type Poller struct {
	events <-chan keyboard.KeyEvent
	keys   Keys
	owned  bool
}

// Open takes over the terminal keyboard. Close must be called to restore it.
func Open(keys Keys, buffer int) (*Poller, error) {
	events, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, err
	}
	p := NewPoller(events, keys)
	p.owned = true
	return p, nil
}

func NewPoller(events <-chan keyboard.KeyEvent, keys Keys) *Poller {
	return &Poller{events: events, keys: keys}
}

func (p *Poller) Close() error {
	if !p.owned {
		return nil
	}
	return keyboard.Close()
}

func (p *Poller) Direction(ev keyboard.KeyEvent) (game.Direction, bool) {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}
	if ev.Rune == 0 {
		return 0, false
	}
	for i, r := range p.keys {
		if r == ev.Rune {
			return game.Directions[i], true
		}
	}
	return 0, false
}

// QuitRune leaves the current screen, like Esc. It cannot be a direction key.
const QuitRune = 'q'

func isQuit(ev keyboard.KeyEvent) bool {
	return ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC || ev.Rune == QuitRune
}

// Poll drains the events that arrived since the last call without blocking.
func (p *Poller) Poll() (Snapshot, error) {
	var s Snapshot
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				return s, ErrClosed
			}
			if nil != ev.Err {
				return s, ev.Err
			}
			if isQuit(ev) {
				s.Quit = true
				continue
			}
			if d, ok := p.Direction(ev); ok {
				s.Pressed[d] = true
				continue
			}
			switch {
			case ev.Key == keyboard.KeyEnter:
				s.Enter = true
			case ev.Rune != 0:
				s.Runes = append(s.Runes, ev.Rune)
			}
		default:
			return s, nil
		}
	}
}

