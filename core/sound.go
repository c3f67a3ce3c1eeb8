package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot SoundType = iota // Bullet fired
	SoundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	default:
		return "unknown"
	}
}
