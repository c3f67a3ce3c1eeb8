package input

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	default:
		return "None"
	}
}

// MouseState accumulates mouse events between frames
// Position is kept in viewport units; Inside tracks focus and window presence
type MouseState struct {
	Position ScreenPoint
	Primary  bool
	Inside   bool
	seen     bool
}

// Move records the cursor at p, marking it inside the window
func (m *MouseState) Move(p ScreenPoint) {
	m.Position = p
	m.Inside = true
	m.seen = true
}

// SetButton records the primary button state
func (m *MouseState) SetButton(b MouseButton, down bool) {
	if b == MouseBtnLeft {
		m.Primary = down
	}
}

// Leave marks the cursor as outside the window and drops the button
// A window that loses focus stops reporting releases
func (m *MouseState) Leave() {
	m.Inside = false
	m.Primary = false
}

// Enter marks the cursor inside again once its position is known
func (m *MouseState) Enter() {
	if m.seen {
		m.Inside = true
	}
}

// Apply copies the mouse state into a snapshot
func (m *MouseState) Apply(s *Snapshot) {
	s.Cursor = m.Position
	s.CursorInWindow = m.Inside
	s.Fire = m.Primary
}
