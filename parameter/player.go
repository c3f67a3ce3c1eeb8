package parameter

import "time"

// Player Entity
const (
	// PlayerSpeed is the per-axis movement speed in world units per second
	PlayerSpeed = 90.0

	// PlayerScale is the player's visual scale
	PlayerScale = 1.0

	// PlayerAsset is the player sprite, relative to the asset root
	PlayerAsset = "bevy_bird.png"

	// NormalizeDiagonal scales diagonal movement to axis speed
	// Off by default: diagonal movement is faster than axis movement
	NormalizeDiagonal = false
)

// Terminal Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or autorepeat
	// Must exceed the terminal's initial autorepeat delay to avoid stutter
	KeyHoldWindow = 550 * time.Millisecond
)
