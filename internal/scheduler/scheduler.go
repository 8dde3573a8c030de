package scheduler

import (
	"git.lost.host/meutraa/drumcity/internal/game"
)

// Scheduler releases chart events as the clock passes their spawn time.
// Each event is released exactly once, in order.
type Scheduler struct {
	events []game.ArrowEvent
	cursor int
	ticked bool
	late   int
}

func New(events []game.ArrowEvent) *Scheduler {
	return &Scheduler{events: events}
}

// Reset rewinds to the first event.
func (s *Scheduler) Reset() {
	s.cursor = 0
	s.ticked = false
	s.late = 0
}

// Tick calls spawn for every unreleased event with SpawnTime <= elapsed and
// returns how many were released. Because the cursor only moves forward this
// is exactly the window (elapsed-delta, elapsed] for a clock that advanced by
// delta, however large delta is. On the first tick after a reset it also
// releases the events that were due before the session started.
func (s *Scheduler) Tick(elapsed, delta float64, spawn func(game.ArrowEvent)) int {
	start := elapsed - delta
	n := 0
	for s.cursor < len(s.events) {
		e := s.events[s.cursor]
		if e.SpawnTime > elapsed {
			// sorted, nothing later can be due
			break
		}
		if s.ticked && e.SpawnTime <= start {
			s.late++
		}
		spawn(e)
		s.cursor++
		n++
	}
	s.ticked = true
	return n
}

// Late counts events released after their window had already passed, which
// only happens when the clock jumps without the scheduler seeing it.
func (s *Scheduler) Late() int {
	return s.late
}

// Pending is the number of events not released yet.
func (s *Scheduler) Pending() int {
	return len(s.events) - s.cursor
}

func (s *Scheduler) Done() bool {
	return s.cursor >= len(s.events)
}
