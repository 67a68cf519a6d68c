// Package engine holds frame timing helpers shared by the game loop.
package engine

import "time"

// Time is the timing state of one frame.
type Time struct {
	// Dt is the time since the previous frame, in seconds.
	Dt   float64
	Now  time.Time
	Last time.Time
}

// Clock produces a Time per frame.
type Clock struct {
	now  func() time.Time
	time Time
}

// NewClock returns a clock reading the wall clock.
func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith returns a clock reading now. Used by tests.
func NewClockWith(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, time: Time{Now: t, Last: t}}
}

// Tick advances the clock to the current frame and returns its timing.
func (c *Clock) Tick() Time {
	c.time.Last = c.time.Now
	c.time.Now = c.now()
	c.time.Dt = c.time.Now.Sub(c.time.Last).Seconds()
	return c.time
}

// Timer fires once after an initial delay, then every threshold.
type Timer struct {
	threshold float64
	delay     float64
	elapsed   float64
	fired     bool
}

// NewTimer returns a timer firing after delay, then every threshold. Both
// are durations in seconds.
func NewTimer(threshold, delay float64) *Timer {
	return &Timer{threshold: threshold, delay: delay}
}

// IsPassed accumulates dt and reports whether the timer fired this frame.
func (t *Timer) IsPassed(dt float64) bool {
	t.elapsed += dt

	if !t.fired {
		if t.elapsed >= t.delay {
			t.fired = true
			t.elapsed = 0
			return true
		}
		return false
	}

	if t.elapsed >= t.threshold {
		t.elapsed = 0
		return true
	}
	return false
}

// Reset rewinds the timer to its initial delay.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.fired = false
}
