package component

// SpriteComponent binds an entity to its image asset and terminal glyph
type SpriteComponent struct {
	Asset string // Path relative to the asset root
	Glyph rune   // Terminal fallback; zero lets the renderer pick by rotation
}
