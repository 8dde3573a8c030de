package parser

import (
	"io"

	"git.lost.host/meutraa/drumcity/internal/game"
)

type Parser interface {
	// Parse loads a chart file and checks that its audio exists.
	Parse(file string) (*game.Chart, error)

	Decode(r io.Reader, format Format) (*game.ChartFile, error)
	Encode(w io.Writer, format Format, chart *game.ChartFile) error

	// Write replaces file with the encoded chart.
	Write(file string, chart *game.ChartFile) error
}
