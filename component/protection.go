package component

// ProtectionFlags defines immunity to lifecycle mechanics
// Uses bitmask pattern for composable protection
type ProtectionFlags uint8

const (
	// ProtectNone provides no immunity (default)
	ProtectNone ProtectionFlags = 0

	// ProtectFromCull makes entity immune to the cull step
	ProtectFromCull ProtectionFlags = 1 << iota

	// ProtectAll makes entity completely indestructible
	// Used for the player entity. World.DestroyEntity() will reject destruction
	ProtectAll ProtectionFlags = 0xFF
)

// Has checks if a specific protection flag is set
func (p ProtectionFlags) Has(flag ProtectionFlags) bool {
	return p&flag == flag
}

// ProtectionComponent provides immunity to lifecycle mechanics
type ProtectionComponent struct {
	Mask ProtectionFlags
}
