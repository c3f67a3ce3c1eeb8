package system

import "time"

// FireTimer is a repeating countdown gating the weapon
// Elapsed time carries over between intervals so the cadence stays fixed
type FireTimer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewFireTimer creates a freshly reset timer
func NewFireTimer(interval time.Duration) *FireTimer {
	return &FireTimer{interval: interval}
}

// Tick advances the timer by dt and returns how many intervals completed during this tick
func (t *FireTimer) Tick(dt time.Duration) int {
	if t.interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	completed := int(t.elapsed / t.interval)
	t.elapsed %= t.interval
	return completed
}

// Reset clears accumulated time
func (t *FireTimer) Reset() {
	t.elapsed = 0
}

// SetInterval changes the interval and resets the timer
func (t *FireTimer) SetInterval(interval time.Duration) {
	t.interval = interval
	t.elapsed = 0
}

// Interval returns the configured interval
func (t *FireTimer) Interval() time.Duration {
	return t.interval
}

// Elapsed returns time accumulated toward the next completion
func (t *FireTimer) Elapsed() time.Duration {
	return t.elapsed
}
