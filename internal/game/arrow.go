package game

// LiveArrow is a spawned arrow that has not been judged yet.
type LiveArrow struct {
	Speed     Speed
	Direction Direction
	SpawnTime float64
	Age       float64 // Seconds since spawn

	// This is presentation state
	X, Y     float64
	Scale    float64
	Rotation float64
}

func Spawn(e ArrowEvent) *LiveArrow {
	return &LiveArrow{
		Speed:     e.Speed,
		Direction: e.Direction,
		SpawnTime: e.SpawnTime,
		X:         SpawnPosition,
		Y:         e.Direction.Y(),
		Scale:     1,
		Rotation:  e.Direction.Rotation(),
	}
}

// InWindow reports whether the arrow can currently be hit.
func (a *LiveArrow) InWindow() bool {
	return a.X >= TargetPosition-Threshold && a.X <= TargetPosition+Threshold
}
