package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/parameter"
	"github.com/lixenwraith/bird-shooter/vmath"
)

// AimSystem turns the player to face the cursor
// The full signed angle is applied each frame, so facing lands on the cursor in one step
type AimSystem struct {
	engine.SystemBase

	lastCursor    vmath.Vec2
	hasLastCursor bool
}

// NewAimSystem creates the aim system
func NewAimSystem(world *engine.World) engine.System {
	s := &AimSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

func (s *AimSystem) Init() {
	s.hasLastCursor = false
}

func (s *AimSystem) Name() string { return "aim" }

func (s *AimSystem) Priority() int { return parameter.PriorityAim }

func (s *AimSystem) Update() {
	snap := s.Resource.Input.Snapshot
	if !snap.CursorInWindow {
		return
	}
	cam := s.Resource.Camera.Camera
	if cam == nil {
		return
	}
	cursor, err := cam.ViewportToWorld(snap.Cursor)
	if err != nil {
		return
	}

	if !s.hasLastCursor || cursor != s.lastCursor {
		s.Resource.Logger.Debug("cursor in window",
			zap.Float64("x", cursor.X),
			zap.Float64("y", cursor.Y),
		)
		s.lastCursor = cursor
		s.hasLastCursor = true
	}

	for _, e := range s.Component.Player.GetAllEntities() {
		transform, ok := s.Component.Transform.GetComponent(e)
		if !ok {
			continue
		}
		toCursor := vmath.V2Sub(cursor, transform.Position)
		if vmath.V2IsZero(toCursor) {
			continue
		}
		delta := vmath.V2AngleTo(transform.Forward(), toCursor)
		transform.Rotation = vmath.NormalizeAngle(transform.Rotation + delta)
		s.Component.Transform.SetComponent(e, transform)
	}
}
