package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/render"
)

// arrowKeys mirror W/A/S/D on the cursor keys
var arrowKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:    input.KeyW,
	tcell.KeyLeft:  input.KeyA,
	tcell.KeyDown:  input.KeyS,
	tcell.KeyRight: input.KeyD,
}

// InputHandler turns tcell events into per-frame input snapshots
// Keys count as held for the hold window after their last press or autorepeat
type InputHandler struct {
	keys   *input.KeyTable
	hold   *input.HoldTracker
	mouse  input.MouseState
	camera *camera.Camera2D
	logger *zap.Logger
}

// NewInputHandler creates a handler; cam is resized on terminal resize and may be nil
func NewInputHandler(keys *input.KeyTable, holdWindow time.Duration, cam *camera.Camera2D, logger *zap.Logger) *InputHandler {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputHandler{
		keys:   keys,
		hold:   input.NewHoldTracker(holdWindow),
		camera: cam,
		logger: logger,
	}
}

// HandleEvent applies ev at now and returns the action it triggers
func (h *InputHandler) HandleEvent(ev tcell.Event, now time.Time) input.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev, now)

	case *tcell.EventMouse:
		x, y := ev.Position()
		// Cell centre keeps the projection symmetric around the cursor cell
		h.mouse.Move(input.ScreenPoint{X: float64(x) + 0.5, Y: float64(y) + 0.5})
		h.mouse.SetButton(input.MouseBtnLeft, ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventFocus:
		if ev.Focused {
			h.mouse.Enter()
		} else {
			h.mouse.Leave()
			h.hold.ReleaseAll()
		}
		h.logger.Debug("focus changed", zap.Bool("focused", ev.Focused))

	case *tcell.EventResize:
		w, ht := ev.Size()
		if h.camera != nil {
			h.camera.Resize(render.PlayfieldSize(w, ht))
		}
		h.logger.Debug("terminal resized", zap.Int("width", w), zap.Int("height", ht))
	}
	return input.ActionNone
}

func (h *InputHandler) handleKey(ev *tcell.EventKey, now time.Time) input.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.ActionQuit
	case tcell.KeyRune:
		r := ev.Rune()
		if k, ok := h.keys.MovementKey(r); ok {
			h.hold.Press(k, now)
			return input.ActionNone
		}
		return h.keys.Action(r)
	}

	if k, ok := arrowKeys[ev.Key()]; ok {
		h.hold.Press(k, now)
	}
	return input.ActionNone
}

// Snapshot returns the input state for a frame starting at now
func (h *InputHandler) Snapshot(now time.Time) input.Snapshot {
	s := input.Snapshot{Keys: h.hold.Held(now)}
	h.mouse.Apply(&s)
	return s
}

// ReleaseAll drops held keys and the mouse button, used on pause and reset
func (h *InputHandler) ReleaseAll() {
	h.hold.ReleaseAll()
	h.mouse.SetButton(input.MouseBtnLeft, false)
}
