package score

import (
	"math"

	"git.lost.host/meutraa/drumcity/internal/game"
)

const (
	maxPoints = 100
	minPoints = 10
)

type DefaultScorer struct{}

// Returns the signed x offset from the target
func (s *DefaultScorer) Distance(a *game.LiveArrow) float64 {
	return a.X - game.TargetPosition
}

func (s *DefaultScorer) Points(distance float64) uint {
	// Tenths first, so an exact half like 99.5 is not lost to float error
	tenths := math.Round((game.Threshold - math.Abs(distance)) * maxPoints * 10 / game.Threshold)
	points := math.Round(tenths / 10)
	if points > maxPoints {
		return maxPoints
	}
	if points < minPoints {
		return minPoints
	}
	return uint(points)
}

// Judge expects live to be in spawn order. A pressed direction resolves at
// most one arrow, the earliest spawned one inside the hit window.
func (s *DefaultScorer) Judge(live []*game.LiveArrow, pressed game.Pressed) ([]*game.LiveArrow, []game.Judgement) {
	var used game.Pressed
	var judged []game.Judgement
	remaining := live[:0]

	for _, a := range live {
		d := a.Direction
		if a.InWindow() && pressed[d] && !used[d] {
			used[d] = true
			distance := s.Distance(a)
			judged = append(judged, game.Judgement{
				Verdict:  game.Hit,
				Arrow:    *a,
				Distance: distance,
				Points:   s.Points(distance),
			})
			continue
		}
		if a.X > 2*game.TargetPosition {
			// Scrolled off the playfield without being hit
			judged = append(judged, game.Judgement{
				Verdict: game.Miss,
				Arrow:   *a,
			})
			continue
		}
		remaining = append(remaining, a)
	}

	// Clear the tail so dropped arrows can be collected
	for i := len(remaining); i < len(live); i++ {
		live[i] = nil
	}
	return remaining, judged
}
