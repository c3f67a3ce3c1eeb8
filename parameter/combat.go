package parameter

import "time"

// Weapon
const (
	// FireInterval is the repeating fire-rate timer interval
	FireInterval = 100 * time.Millisecond
)

// Bullet Entity
const (
	// BulletSpeed is the bullet speed in world units per second
	BulletSpeed = 1000.0

	// BulletScale is the bullet's visual scale
	BulletScale = 0.5

	// BulletAsset is the bullet sprite, relative to the asset root
	BulletAsset = "bullet.png"

	// BulletMaxLifetime is the age at which a bullet is culled, zero disables
	BulletMaxLifetime = 3 * time.Second

	// BulletCullMargin is how far past the visible world bounds a bullet may travel before culling, in world units
	// Negative disables bounds culling
	BulletCullMargin = 64.0
)
