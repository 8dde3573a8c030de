package clock

import (
	"testing"
	"time"
)

func TestUpdate(t *testing.T) {
	var c Clock
	start := time.Unix(1000, 0)

	c.Update(start)
	if c.Elapsed() != 0 || c.Delta() != 0 {
		t.Fatal("first update", c.Elapsed(), c.Delta())
	}

	c.Update(start.Add(250 * time.Millisecond))
	c.Update(start.Add(1 * time.Second))
	if c.Elapsed() != 1 {
		t.Error("elapsed", c.Elapsed())
	}
	if c.Delta() != 0.75 {
		t.Error("delta", c.Delta())
	}
}

func TestReset(t *testing.T) {
	var c Clock
	start := time.Unix(1000, 0)
	c.Update(start)
	c.Update(start.Add(2 * time.Second))

	// Time spent in a menu must not show up after the reset
	c.Reset()
	c.Update(start.Add(90 * time.Second))
	if c.Elapsed() != 0 || c.Delta() != 0 {
		t.Fatal("after reset", c.Elapsed(), c.Delta())
	}
	c.Update(start.Add(90*time.Second + 16*time.Millisecond))
	if c.Elapsed() != 0.016 {
		t.Error("elapsed", c.Elapsed())
	}
}

func TestBackwards(t *testing.T) {
	var c Clock
	start := time.Unix(1000, 0)
	c.Update(start)
	c.Update(start.Add(time.Second))
	c.Update(start.Add(500 * time.Millisecond))
	if c.Elapsed() != 1 || c.Delta() != 0 {
		t.Error("clock went backwards", c.Elapsed(), c.Delta())
	}
}
