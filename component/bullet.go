package component

import (
	"time"

	"github.com/lixenwraith/bird-shooter/core"
)

// BulletComponent marks a linear projectile travelling along its spawn facing
type BulletComponent struct {
	Owner       core.Entity   // Firing entity, zero when fired without a player
	Speed       float64       // World units per second
	Lifetime    time.Duration // Accumulated age
	MaxLifetime time.Duration // Destruction threshold, zero disables
	SpawnFrame  int64         // Frame the bullet was created in; it starts moving on the next frame
}
