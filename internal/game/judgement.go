package game

type Verdict uint8

const (
	Hit Verdict = iota + 1
	Miss
)

func (v Verdict) String() string {
	switch v {
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	}
	return "None"
}

// Judgement is the resolution of a single arrow.
type Judgement struct {
	Verdict  Verdict
	Arrow    LiveArrow
	Distance float64 // x offset from the target when hit
	Points   uint
}
