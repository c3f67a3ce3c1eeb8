package engine

import (
	"time"
)

// MockTimeProvider is a hand-driven clock for stepping a Game frame by frame in tests
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider creates a provider frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the current provider time
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// TickFrames advances by interval before each of n Game ticks and returns the summed frame deltas
func (m *MockTimeProvider) TickFrames(g *Game, n int, interval time.Duration) time.Duration {
	var total time.Duration
	for range n {
		m.Advance(interval)
		total += g.Tick()
	}
	return total
}
