package score

import (
	"git.lost.host/meutraa/drumcity/internal/game"
)

type Scorer interface {
	// Judge resolves live arrows against the directions pressed this tick.
	// Arrows that stay live are returned in their original order.
	Judge(live []*game.LiveArrow, pressed game.Pressed) ([]*game.LiveArrow, []game.Judgement)

	// Points awarded for a hit distance away from the target
	Points(distance float64) uint

	Distance(a *game.LiveArrow) float64
}

type Score struct {
	Points uint
	Hits   uint
	Misses uint
}
