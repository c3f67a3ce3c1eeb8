package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame loop interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta fed to systems after a stall (debugger, suspended terminal)
	MaxFrameDelta = 250 * time.Millisecond

	// EventChannelSize is the buffered capacity between the input poller and the frame loop
	EventChannelSize = 256
)
