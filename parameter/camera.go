package parameter

// Camera projection
const (
	// CellWorldWidth is the world width covered by one terminal cell
	CellWorldWidth = 8.0

	// CellWorldHeight is the world height covered by one terminal cell
	// Twice the width since terminal cells are roughly 1:2
	CellWorldHeight = 16.0

	// PixelWorldSize is the world size of one window pixel in the windowed frontend
	PixelWorldSize = 1.0
)

// Windowed frontend
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "bird-shooter"
)
