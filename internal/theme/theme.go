package theme

import (
	"image/color"

	"git.lost.host/meutraa/drumcity/internal/game"
)

type Theme interface {
	RenderArrow(rotation, scale float64) string
	RenderTarget(d game.Direction) string
	ArrowColor(s game.Speed) color.RGBA
	VerdictColor(v game.Verdict) color.RGBA
}
