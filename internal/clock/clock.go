// Package clock provides the game time source. It only advances when it is
// updated, so time spent outside a session is never counted.
package clock

import "time"

type Clock struct {
	elapsed time.Duration
	delta   time.Duration
	last    time.Time
}

// Reset zeroes the elapsed time. The next Update has a zero delta.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.delta = 0
	c.last = time.Time{}
}

// Update advances the clock to now.
func (c *Clock) Update(now time.Time) {
	if c.last.IsZero() {
		c.delta = 0
	} else {
		c.delta = now.Sub(c.last)
		if c.delta < 0 {
			c.delta = 0
		}
	}
	c.elapsed += c.delta
	c.last = now
}

// Elapsed is the number of seconds since the last Reset.
func (c *Clock) Elapsed() float64 {
	return c.elapsed.Seconds()
}

// Delta is the number of seconds between the last two updates.
func (c *Clock) Delta() float64 {
	return c.delta.Seconds()
}
