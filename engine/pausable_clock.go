package engine

import (
	"time"
)

// PausableClock derives game time from a TimeProvider
// Game time is real time minus every completed and ongoing pause, so it stands still while paused
// Pause and Resume are called from the frame loop goroutine
type PausableClock struct {
	provider TimeProvider

	paused   bool
	pausedAt time.Time     // Real time the current pause began
	pausedBy time.Duration // Sum of completed pauses
}

// NewPausableClock creates a running clock; a nil provider reads the monotonic clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider}
}

// Now returns game time
func (pc *PausableClock) Now() time.Time {
	real := pc.provider.Now()
	if pc.paused {
		real = pc.pausedAt
	}
	return real.Add(-pc.pausedBy)
}

// RealTime returns the provider's time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause freezes game time; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.provider.Now()
}

// Resume restarts game time from where it froze; resuming a running clock is a no-op
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.pausedBy += pc.provider.Now().Sub(pc.pausedAt)
}

// IsPaused reports whether game time is frozen
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// PausedTotal returns the real time spent paused, the ongoing pause included
func (pc *PausableClock) PausedTotal() time.Duration {
	if pc.paused {
		return pc.pausedBy + pc.provider.Now().Sub(pc.pausedAt)
	}
	return pc.pausedBy
}
