package engine

import (
	"git.lost.host/meutraa/drumcity/internal/game"
	"git.lost.host/meutraa/drumcity/internal/motion"
	"git.lost.host/meutraa/drumcity/internal/scheduler"
	"git.lost.host/meutraa/drumcity/internal/score"
)

type playSession struct {
	chart     *game.Chart
	scheduler *scheduler.Scheduler
	live      []*game.LiveArrow // In spawn order
	late      int
}

func newPlaySession(chart *game.Chart) *playSession {
	return &playSession{
		chart:     chart,
		scheduler: scheduler.New(chart.Events),
	}
}

func (s *playSession) tick(frame *Frame, pressed game.Pressed, scorer score.Scorer, tracker *score.Tracker) {
	elapsed, delta := frame.Elapsed, frame.Delta

	s.scheduler.Tick(elapsed, delta, func(e game.ArrowEvent) {
		frame.Spawned = append(frame.Spawned, e)
		s.live = append(s.live, game.Spawn(e))
	})

	for _, a := range s.live {
		motion.Step(a, elapsed, delta)
	}

	s.live, frame.Judged = scorer.Judge(s.live, pressed)
	tracker.Record(frame.Judged)

	frame.Live = s.live
	frame.Finished = s.scheduler.Done() && len(s.live) == 0
}
