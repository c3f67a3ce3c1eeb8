package parameter

import "image/color"

// ClearColor is the background fill
var ClearColor = color.RGBA{R: 51, G: 51, B: 51, A: 255}

// Terminal glyphs
const (
	// BulletGlyph is drawn for bullets
	BulletGlyph = '•'

	// PlayerGlyphs are indexed by facing octant, counter-clockwise from +X
	PlayerGlyphs = "→↗↑↖←↙↓↘"

	// BulletFadeStart is the lifetime fraction after which terminal bullets fade into the background
	BulletFadeStart = 0.75
)

// Default tints used when a sprite asset is unavailable
var (
	PlayerTint = color.RGBA{R: 255, G: 220, B: 120, A: 255}
	BulletTint = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	StatusTint = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)
