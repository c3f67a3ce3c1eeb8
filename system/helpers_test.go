package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/input"
)

// newTestWorld creates a world with a spawned player and a 100x100 camera at 1 unit per cell
func newTestWorld(t *testing.T) (*engine.World, core.Entity) {
	t.Helper()
	w := engine.NewWorld()
	w.Resources.Camera.Camera = camera.New(100, 100, 1, 1)
	e, err := w.SpawnPlayer()
	require.NoError(t, err)
	return w, e
}

// setFrame publishes dt and an input snapshot as the game loop would
func setFrame(w *engine.World, dt time.Duration, snap input.Snapshot) {
	w.Resources.Time.DeltaTime = dt
	w.Resources.Time.FrameNumber++
	w.Resources.Input.Snapshot = snap
}

func playerTransform(t *testing.T, w *engine.World, e core.Entity) component.TransformComponent {
	t.Helper()
	tr, ok := w.Components.Transform.GetComponent(e)
	require.True(t, ok)
	return tr
}

// cursorAt returns a snapshot whose cursor maps to world point (x, y) on the test camera
func cursorAt(x, y float64) input.Snapshot {
	return input.Snapshot{
		Cursor:         input.ScreenPoint{X: 50 + x, Y: 50 - y},
		CursorInWindow: true,
	}
}
