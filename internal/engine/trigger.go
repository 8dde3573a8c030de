package engine

// Trigger fires once, on the first tick at or past its offset.
type Trigger struct {
	Offset float64
	fired  bool
}

func (t *Trigger) Reset() {
	t.fired = false
}

func (t *Trigger) Fired() bool {
	return t.fired
}

// Due reports whether this tick crosses the offset. It is true at most once
// between resets.
func (t *Trigger) Due(elapsed float64) bool {
	if t.fired || elapsed < t.Offset {
		return false
	}
	t.fired = true
	return true
}
