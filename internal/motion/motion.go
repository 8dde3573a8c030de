// Package motion moves live arrows along the playfield.
package motion

import (
	"math"

	"git.lost.host/meutraa/drumcity/internal/game"
)

const (
	fallRate  = 2.0
	shrink    = 3.0
	minScale  = 0.2
	spinScale = 460.0
)

// Position is the x coordinate of an arrow age seconds after it spawned.
func Position(age float64, speed game.Speed) float64 {
	return game.SpawnPosition + age*speed.Value()
}

// Overshoot is how far x lies past the end of the hit window.
func Overshoot(x float64) float64 {
	return x - game.TargetPosition - game.Threshold
}

// Scale of an arrow that has overshot the hit window.
func Scale(overshoot float64) float64 {
	if overshoot <= 0 {
		return 1
	}
	return math.Max((100-overshoot/shrink)/100, minScale)
}

// Step moves the arrow to where it is at elapsed. Arrows past the hit window
// fall out of their lane, shrink and spin; this has no effect on judgement.
func Step(a *game.LiveArrow, elapsed, delta float64) {
	a.Age = elapsed - a.SpawnTime
	if a.Age < 0 {
		a.Age = 0
	}
	a.X = Position(a.Age, a.Speed)

	o := Overshoot(a.X)
	if o <= 0 {
		return
	}
	a.Y -= delta * o * fallRate
	a.Scale = Scale(o)
	a.Rotation -= o * a.Speed.Multiplier() / spinScale
}
