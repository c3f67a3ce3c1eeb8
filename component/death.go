package component

// DeathReason records why an entity was tagged for culling
type DeathReason uint8

const (
	DeathExpired DeathReason = iota + 1
	DeathOutOfBounds
)

// DeathComponent tags an entity for destruction at the end of the tick
type DeathComponent struct {
	Reason DeathReason
}
