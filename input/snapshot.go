package input

// ScreenPoint is a position in viewport units (terminal cells or window pixels)
// Origin is top-left, Y grows downward
type ScreenPoint struct {
	X, Y float64
}

// Snapshot is the per-frame input state handed to systems
type Snapshot struct {
	Keys KeySet
	Fire bool // Primary mouse button held

	Cursor         ScreenPoint
	CursorInWindow bool // False when the cursor left the window or focus was lost
}

// Pressed reports whether k is held this frame
func (s Snapshot) Pressed(k Key) bool {
	return s.Keys.Has(k)
}
