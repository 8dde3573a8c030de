package engine

import (
	"git.lost.host/meutraa/drumcity/internal/game"
	"git.lost.host/meutraa/drumcity/internal/score"
)

// Frame is everything a tick produced, for the presentation layer.
type Frame struct {
	Mode           Mode
	Elapsed, Delta float64

	Spawned []game.ArrowEvent
	Judged  []game.Judgement
	Live    []*game.LiveArrow // Owned by the engine, valid until the next tick
	Score   score.Score

	Recorded     int  // Presses recorded this tick
	AudioStarted bool // Playback was started this tick
	Finished     bool // Every arrow of the chart has been judged
}
