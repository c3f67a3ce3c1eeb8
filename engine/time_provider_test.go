package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	assert.True(t, mock.Now().Equal(testEpoch))

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(testEpoch.Add(90*time.Minute)))
}

func TestMockTimeProvider_TickFrames(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	g := NewGame(NewWorld(), mock)

	// The first tick of a fresh game has zero delta
	assert.Equal(t, 144*time.Millisecond, mock.TickFrames(g, 10, 16*time.Millisecond))
	assert.Equal(t, int64(10), g.FrameNumber())

	assert.Equal(t, 160*time.Millisecond, mock.TickFrames(g, 10, 16*time.Millisecond))
	assert.True(t, mock.Now().Equal(testEpoch.Add(320*time.Millisecond)))
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
