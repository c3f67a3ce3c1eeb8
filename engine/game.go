package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// Game drives the world one frame at a time
// Every Tick runs each registered system exactly once, in priority order, on the caller's goroutine
type Game struct {
	World *World
	Clock *PausableClock

	frameNumber atomic.Int64

	lastGameTime time.Time
	started      bool

	// MaxDelta clamps the delta of a single frame, zero disables
	MaxDelta time.Duration
}

// NewGame creates a game over world with a pausable clock reading provider
func NewGame(world *World, provider TimeProvider) *Game {
	return &Game{
		World:    world,
		Clock:    NewPausableClock(provider),
		MaxDelta: parameter.MaxFrameDelta,
	}
}

// Tick samples the clock and advances one frame by the game time elapsed since the previous Tick
// The first Tick has zero delta
func (g *Game) Tick() time.Duration {
	now := g.Clock.Now()

	var dt time.Duration
	if g.started {
		dt = now.Sub(g.lastGameTime)
	}
	g.started = true
	g.lastGameTime = now

	if dt < 0 {
		dt = 0
	}
	if g.MaxDelta > 0 && dt > g.MaxDelta {
		g.World.Resources.Logger.Debug("frame delta clamped",
			zap.Duration("delta", dt),
			zap.Duration("max", g.MaxDelta),
		)
		dt = g.MaxDelta
	}

	g.Step(dt)
	return dt
}

// Step advances one frame by an explicit delta
// While paused only the time resource is refreshed
func (g *Game) Step(dt time.Duration) {
	frame := g.frameNumber.Add(1)
	paused := g.Clock.IsPaused()
	if paused {
		dt = 0
	}

	g.World.Resources.Time.Update(g.Clock.Now(), g.Clock.RealTime(), dt, frame)

	if paused {
		return
	}
	g.World.Update()
}

// SetInput publishes the input snapshot read by the next frame
func (g *Game) SetInput(s input.Snapshot) {
	g.World.Resources.Input.Snapshot = s
}

// FrameNumber returns the number of frames stepped so far
func (g *Game) FrameNumber() int64 {
	return g.frameNumber.Load()
}

// Pause freezes game time and system updates
func (g *Game) Pause() {
	g.Clock.Pause()
	g.World.Resources.Logger.Info("game paused", zap.Int64("frame", g.FrameNumber()))
}

// Resume continues game time and system updates
func (g *Game) Resume() {
	g.Clock.Resume()
	g.World.Resources.Logger.Info("game resumed",
		zap.Int64("frame", g.FrameNumber()),
		zap.Duration("paused_total", g.Clock.PausedTotal()),
	)
}

// TogglePause flips the pause state and returns the new state
func (g *Game) TogglePause() bool {
	if g.Clock.IsPaused() {
		g.Resume()
		return false
	}
	g.Pause()
	return true
}

// IsPaused reports whether the game is paused
func (g *Game) IsPaused() bool {
	return g.Clock.IsPaused()
}

// Reset destroys every entity, re-initializes systems and respawns the player
func (g *Game) Reset() error {
	g.World.Clear()
	g.World.InitSystems()
	e, err := g.World.SpawnPlayer()
	if err != nil {
		return err
	}
	g.World.Resources.Logger.Info("game reset", zap.Uint64("player", uint64(e)))
	return nil
}
