package score

import "git.lost.host/meutraa/drumcity/internal/game"

// Tracker accumulates the score of a play session.
type Tracker struct {
	score Score
}

func (t *Tracker) RecordHit(points uint) {
	t.score.Hits++
	t.score.Points += points
}

func (t *Tracker) RecordMiss() {
	t.score.Misses++
}

func (t *Tracker) Record(judged []game.Judgement) {
	for _, j := range judged {
		switch j.Verdict {
		case game.Hit:
			t.RecordHit(j.Points)
		case game.Miss:
			t.RecordMiss()
		}
	}
}

func (t *Tracker) Score() Score {
	return t.score
}

func (t *Tracker) Reset() {
	t.score = Score{}
}
