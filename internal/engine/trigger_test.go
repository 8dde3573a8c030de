package engine

import "testing"

func TestTrigger(t *testing.T) {
	tr := Trigger{Offset: 3}
	fired := 0
	for _, e := range []float64{0, 1, 2.99, 3.2, 3.4, 10} {
		if tr.Due(e) {
			fired++
			if e != 3.2 {
				t.Error("fired at", e)
			}
		}
	}
	if fired != 1 || !tr.Fired() {
		t.Error("fired", fired)
	}
	tr.Reset()
	if !tr.Due(3) {
		t.Error("trigger should fire again after a reset")
	}
}
