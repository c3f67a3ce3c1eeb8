// Package camera maps between viewport coordinates and world space
package camera

import (
	"errors"
	"math"

	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/vmath"
)

var (
	// ErrOutsideViewport is returned when a screen point lies outside the viewport
	ErrOutsideViewport = errors.New("camera: point outside viewport")
	// ErrEmptyViewport is returned while the viewport has no area
	ErrEmptyViewport = errors.New("camera: empty viewport")
)

// Camera2D is an orthographic camera centred on Position
// The viewport centre maps to Position, screen Y grows down while world Y grows up
// UnitsPerCellX/Y convert one viewport unit (cell or pixel) into world units
type Camera2D struct {
	Position       vmath.Vec2
	ViewportWidth  int
	ViewportHeight int
	UnitsPerCellX  float64
	UnitsPerCellY  float64
}

// New creates a camera at the world origin
func New(width, height int, unitsX, unitsY float64) *Camera2D {
	return &Camera2D{
		ViewportWidth:  width,
		ViewportHeight: height,
		UnitsPerCellX:  unitsX,
		UnitsPerCellY:  unitsY,
	}
}

// Resize updates the viewport dimensions
func (c *Camera2D) Resize(width, height int) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// Contains reports whether p lies inside the viewport
func (c *Camera2D) Contains(p input.ScreenPoint) bool {
	return p.X >= 0 && p.Y >= 0 &&
		p.X < float64(c.ViewportWidth) && p.Y < float64(c.ViewportHeight)
}

// ViewportToWorld projects a viewport point into world space
// Terminal callers pass cell centres (col+0.5, row+0.5)
func (c *Camera2D) ViewportToWorld(p input.ScreenPoint) (vmath.Vec2, error) {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return vmath.Vec2{}, ErrEmptyViewport
	}
	if !c.Contains(p) {
		return vmath.Vec2{}, ErrOutsideViewport
	}
	halfW := float64(c.ViewportWidth) / 2
	halfH := float64(c.ViewportHeight) / 2
	return vmath.Vec2{
		X: c.Position.X + (p.X-halfW)*c.UnitsPerCellX,
		Y: c.Position.Y + (halfH-p.Y)*c.UnitsPerCellY,
	}, nil
}

// WorldToViewportF projects a world point into continuous viewport coordinates
func (c *Camera2D) WorldToViewportF(v vmath.Vec2) input.ScreenPoint {
	halfW := float64(c.ViewportWidth) / 2
	halfH := float64(c.ViewportHeight) / 2
	return input.ScreenPoint{
		X: halfW + (v.X-c.Position.X)/c.UnitsPerCellX,
		Y: halfH - (v.Y-c.Position.Y)/c.UnitsPerCellY,
	}
}

// WorldToViewport projects a world point onto the viewport cell containing it
// ok is false when the cell is off-screen
func (c *Camera2D) WorldToViewport(v vmath.Vec2) (x, y int, ok bool) {
	p := c.WorldToViewportF(v)
	x = int(math.Floor(p.X))
	y = int(math.Floor(p.Y))
	ok = x >= 0 && y >= 0 && x < c.ViewportWidth && y < c.ViewportHeight
	return x, y, ok
}

// Bounds is an axis-aligned world rectangle
type Bounds struct {
	Min, Max vmath.Vec2
}

// Contains reports whether v lies inside the rectangle, edges included
func (b Bounds) Contains(v vmath.Vec2) bool {
	return v.X >= b.Min.X && v.X <= b.Max.X && v.Y >= b.Min.Y && v.Y <= b.Max.Y
}

// VisibleBounds returns the world rectangle shown by the viewport, grown by margin world units
func (c *Camera2D) VisibleBounds(margin float64) Bounds {
	halfW := float64(c.ViewportWidth) / 2 * c.UnitsPerCellX
	halfH := float64(c.ViewportHeight) / 2 * c.UnitsPerCellY
	return Bounds{
		Min: vmath.Vec2{X: c.Position.X - halfW - margin, Y: c.Position.Y - halfH - margin},
		Max: vmath.Vec2{X: c.Position.X + halfW + margin, Y: c.Position.Y + halfH + margin},
	}
}
