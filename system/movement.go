package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/parameter"
	"github.com/lixenwraith/bird-shooter/vmath"
)

// MovementSystem moves every player entity from the held W/A/S/D keys
type MovementSystem struct {
	engine.SystemBase
}

// NewMovementSystem creates the player movement system
func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

func (s *MovementSystem) Update() {
	dir := MovementDirection(s.Resource.Input.Snapshot.Keys)
	dt := s.Resource.Time.DeltaTime.Seconds()

	if s.Resource.Tuning.NormalizeDiagonal && dir.X != 0 && dir.Y != 0 {
		dir = vmath.V2Scale(dir, 1/math.Sqrt2)
	}

	for _, e := range s.Component.Player.GetAllEntities() {
		player, ok := s.Component.Player.GetComponent(e)
		if !ok {
			continue
		}
		transform, ok := s.Component.Transform.GetComponent(e)
		if !ok {
			continue
		}

		s.Resource.Logger.Debug("player position",
			zap.Int64("frame", s.Resource.Time.FrameNumber),
			zap.Float64("x", transform.Position.X),
		)

		if vmath.V2IsZero(dir) || dt == 0 {
			continue
		}
		step := player.Speed * dt
		transform.Position = vmath.V2Add(transform.Position, vmath.V2Scale(dir, step))
		s.Component.Transform.SetComponent(e, transform)
	}
}

// MovementDirection resolves held keys into per-axis unit steps
// Precedence: W+D, W+A, S+D, S+A, then W, S, A, D alone
// Diagonals keep both unit components, so they are not normalized
func MovementDirection(keys input.KeySet) vmath.Vec2 {
	w, a, s, d := keys.Has(input.KeyW), keys.Has(input.KeyA), keys.Has(input.KeyS), keys.Has(input.KeyD)
	switch {
	case w && d:
		return vmath.Vec2{X: 1, Y: 1}
	case w && a:
		return vmath.Vec2{X: -1, Y: 1}
	case s && d:
		return vmath.Vec2{X: 1, Y: -1}
	case s && a:
		return vmath.Vec2{X: -1, Y: -1}
	case w:
		return vmath.Vec2{Y: 1}
	case s:
		return vmath.Vec2{Y: -1}
	case a:
		return vmath.Vec2{X: -1}
	case d:
		return vmath.Vec2{X: 1}
	}
	return vmath.Vec2{}
}
