package core

import "time"

// MaxFrameStep caps the dt of a single frame, in seconds. A frame arriving
// after a longer gap (suspended process, stalled terminal) advances the game
// by this much only.
const MaxFrameStep = 0.25

// Clock turns frame timestamps into the (dt, now) pair the screens consume.
// now is game time in seconds: the sum of every dt handed out, so it only
// moves forward and skips the part of a gap that was capped.
type Clock struct {
	last     time.Time
	elapsed  float64
	fallback float64
}

// NewClock creates a clock whose first frame reports 1/tickRate as dt.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{fallback: 1 / float64(tickRate)}
}

// Tick records a frame at t and returns the elapsed seconds since the previous
// frame and the game time.
func (c *Clock) Tick(t time.Time) (dt, now float64) {
	if c.last.IsZero() {
		dt = c.fallback
	} else {
		dt = min(max(t.Sub(c.last).Seconds(), 0), MaxFrameStep)
	}
	if !t.Before(c.last) {
		c.last = t
	}
	c.elapsed += dt
	return dt, c.elapsed
}
