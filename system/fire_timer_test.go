package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFireTimer_RepeatingCompletions(t *testing.T) {
	timer := NewFireTimer(100 * time.Millisecond)

	assert.Equal(t, 0, timer.Tick(50*time.Millisecond))
	assert.Equal(t, 1, timer.Tick(50*time.Millisecond))
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	assert.Equal(t, 2, timer.Tick(250*time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, timer.Elapsed(), "remainder carries over")
	assert.Equal(t, 1, timer.Tick(50*time.Millisecond))
}

func TestFireTimer_ZeroAndNegative(t *testing.T) {
	timer := NewFireTimer(100 * time.Millisecond)
	assert.Equal(t, 0, timer.Tick(0))
	assert.Equal(t, 0, timer.Tick(-time.Second))
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	disabled := NewFireTimer(0)
	assert.Equal(t, 0, disabled.Tick(time.Second))
}

func TestFireTimer_ResetAndInterval(t *testing.T) {
	timer := NewFireTimer(100 * time.Millisecond)
	timer.Tick(70 * time.Millisecond)
	timer.Reset()
	assert.Equal(t, 0, timer.Tick(70*time.Millisecond))

	timer.SetInterval(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, timer.Interval())
	assert.Equal(t, time.Duration(0), timer.Elapsed())
	assert.Equal(t, 1, timer.Tick(70*time.Millisecond))
}
