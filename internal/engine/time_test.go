package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockTick(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := NewClockWith(func() time.Time { return now })

	now = now.Add(16 * time.Millisecond)
	ft := c.Tick()
	assert.InDelta(t, 0.016, ft.Dt, 1e-9)
	assert.Equal(t, base, ft.Last)

	now = now.Add(50 * time.Millisecond)
	ft = c.Tick()
	assert.InDelta(t, 0.050, ft.Dt, 1e-9)
	assert.Equal(t, base.Add(16*time.Millisecond), ft.Last)
}

func TestTimer(t *testing.T) {
	timer := NewTimer(0.1, 0.3)

	assert.False(t, timer.IsPassed(0.2))
	assert.True(t, timer.IsPassed(0.1), "initial delay")
	assert.False(t, timer.IsPassed(0.05))
	assert.True(t, timer.IsPassed(0.05))
	assert.True(t, timer.IsPassed(0.1))

	timer.Reset()
	assert.False(t, timer.IsPassed(0.1))
	assert.True(t, timer.IsPassed(0.2))
}

func TestTimerZeroDelayFiresImmediately(t *testing.T) {
	timer := NewTimer(1, 0)
	assert.True(t, timer.IsPassed(0))
	assert.False(t, timer.IsPassed(0.5))
	assert.True(t, timer.IsPassed(0.5))
}
