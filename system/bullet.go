package system

import (
	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/parameter"
	"github.com/lixenwraith/bird-shooter/vmath"
)

// BulletSystem advances bullets along the facing captured at spawn, starting the frame after spawn
// Bullets past their lifetime or outside the visible world bounds are tagged for culling
type BulletSystem struct {
	engine.SystemBase
}

// NewBulletSystem creates the bullet system
func NewBulletSystem(world *engine.World) engine.System {
	s := &BulletSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

func (s *BulletSystem) Init() {}

func (s *BulletSystem) Name() string { return "bullet" }

func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

func (s *BulletSystem) Update() {
	entities := s.Component.Bullet.GetAllEntities()
	if len(entities) == 0 {
		return
	}

	dt := s.Resource.Time.DeltaTime
	secs := dt.Seconds()
	frame := s.Resource.Time.FrameNumber

	margin := s.Resource.Tuning.BulletCullMargin
	cam := s.Resource.Camera.Camera
	cullBounds := cam != nil && margin >= 0
	var bounds camera.Bounds
	if cullBounds {
		bounds = cam.VisibleBounds(margin)
	}

	for _, e := range entities {
		bullet, ok := s.Component.Bullet.GetComponent(e)
		if !ok {
			continue
		}
		transform, ok := s.Component.Transform.GetComponent(e)
		if !ok {
			continue
		}
		// Spawned by the weapon earlier this frame
		if bullet.SpawnFrame == frame {
			continue
		}

		if dt > 0 {
			bullet.Lifetime += dt
			step := vmath.V2Scale(transform.Forward(), bullet.Speed*secs)
			transform.Position = vmath.V2Add(transform.Position, step)

			s.Component.Bullet.SetComponent(e, bullet)
			s.Component.Transform.SetComponent(e, transform)
		}

		switch {
		case bullet.MaxLifetime > 0 && bullet.Lifetime > bullet.MaxLifetime:
			s.Component.Death.SetComponent(e, component.DeathComponent{Reason: component.DeathExpired})
		case cullBounds && !bounds.Contains(transform.Position):
			s.Component.Death.SetComponent(e, component.DeathComponent{Reason: component.DeathOutOfBounds})
		}
	}
}
