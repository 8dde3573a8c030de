package render

import (
	"math"

	"git.lost.host/meutraa/drumcity/internal/game"
)

// laneHeight is the distance between lanes in playfield units.
const laneHeight = 50.0

// FieldEnd is the x coordinate where unhit arrows leave the playfield.
const FieldEnd = 2 * game.TargetPosition

// Field maps playfield coordinates onto terminal cells.
type Field struct {
	Left, Width int // Columns
	Middle      int // Row of y = 0
}

func NewField(columns, rows int) Field {
	margin := columns / 10
	return Field{
		Left:   margin + 1,
		Width:  columns - 2*margin,
		Middle: rows / 2,
	}
}

func (f Field) Column(x float64) int {
	frac := (x - game.SpawnPosition) / (FieldEnd - game.SpawnPosition)
	return f.Left + int(math.Round(frac*float64(f.Width-1)))
}

func (f Field) Row(y float64) int {
	return f.Middle - int(math.Round(y/laneHeight))
}

// Contains reports whether a cell is inside the playfield.
func (f Field) Contains(col, row int) bool {
	return col >= f.Left && col < f.Left+f.Width && row > 0
}
