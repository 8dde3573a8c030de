package theme

import (
	"image/color"
	"math"

	"git.lost.host/meutraa/drumcity/internal/game"
)

type DefaultTheme struct {
}

const (
	smallSym = "·"
)

var (
	// Counter clockwise from pointing right
	syms       = [...]string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}
	targetSyms = map[game.Direction]string{
		game.Up:    "△",
		game.Down:  "▽",
		game.Left:  "◁",
		game.Right: "▷",
	}
	arrowColors = map[game.Speed]color.RGBA{
		game.Slow:   {236, 30, 0, 255},  // red
		game.Medium: {0, 118, 236, 255}, // blue
		game.Fast:   {0, 236, 128, 255}, // green
	}
	hitColor  = color.RGBA{236, 195, 0, 255}
	missColor = color.RGBA{106, 106, 106, 255}
	white     = color.RGBA{255, 255, 255, 255}
)

// RenderArrow picks the glyph closest to the arrow's rotation. Arrows that
// have shrunk below half size are drawn as a dot.
func (t *DefaultTheme) RenderArrow(rotation, scale float64) string {
	if scale < 0.5 {
		return smallSym
	}
	step := 2 * math.Pi / float64(len(syms))
	i := int(math.Round(rotation/step)) % len(syms)
	if i < 0 {
		i += len(syms)
	}
	return syms[i]
}

func (t *DefaultTheme) RenderTarget(d game.Direction) string {
	return targetSyms[d]
}

func (t *DefaultTheme) ArrowColor(s game.Speed) color.RGBA {
	c, ok := arrowColors[s]
	if !ok {
		return white
	}
	return c
}

func (t *DefaultTheme) VerdictColor(v game.Verdict) color.RGBA {
	switch v {
	case game.Hit:
		return hitColor
	case game.Miss:
		return missColor
	}
	return white
}
