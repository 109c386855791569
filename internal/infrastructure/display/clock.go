package display

import "time"

// Clock measures frame-to-frame elapsed time.
type Clock struct {
	now      func() time.Time
	last     time.Time
	maxDelta float64
	started  bool
}

// NewClock creates a clock for a loop capped at tps iterations per second.
func NewClock(tps int) *Clock {
	return newClockWithSource(tps, time.Now)
}

func newClockWithSource(tps int, now func() time.Time) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{
		now:      now,
		maxDelta: 1.0 / float64(tps),
	}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to
// [0, 1/tps]. The first call returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	dt := t.Sub(c.last).Seconds()
	c.last = t

	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// MaxDelta is the upper bound Tick will ever return.
func (c *Clock) MaxDelta() float64 {
	return c.maxDelta
}
