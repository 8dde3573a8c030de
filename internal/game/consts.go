package game

const (
	// BaseSpeed is the x velocity of a Slow arrow, in units per second.
	BaseSpeed = 200.0

	// SpawnPosition is the x coordinate arrows appear at, off the playfield.
	SpawnPosition = -400.0

	// TargetPosition is the x coordinate arrows should be hit at.
	TargetPosition = 200.0

	// Threshold is the margin around TargetPosition that still counts as a hit.
	Threshold = 20.0

	// Distance travelled between spawn and target.
	Distance = TargetPosition - SpawnPosition

	// StartTimeOffset is the number of seconds before the audio starts.
	StartTimeOffset = 3.0
)
