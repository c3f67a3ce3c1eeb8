package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// CullSystem removes entities tagged for death
// It runs last in the frame so every other system sees the final state
type CullSystem struct {
	engine.SystemBase

	culled int64
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

func (s *CullSystem) Init() {
	s.culled = 0
}

func (s *CullSystem) Name() string { return "cull" }

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Culled returns the number of entities destroyed since Init
func (s *CullSystem) Culled() int64 { return s.culled }

// Update destroys tagged entities, dropping the tag from protected ones
func (s *CullSystem) Update() {
	entities := s.Component.Death.GetAllEntities()
	if len(entities) == 0 {
		return
	}

	doomed := entities[:0]
	for _, e := range entities {
		if prot, ok := s.Component.Protection.GetComponent(e); ok {
			if prot.Mask.Has(component.ProtectFromCull) {
				s.Component.Death.RemoveEntity(e)
				continue
			}
		}
		doomed = append(doomed, e)
	}
	destroyed := s.World.DestroyEntities(doomed)

	s.culled += int64(destroyed)
	if destroyed > 0 {
		s.Resource.Logger.Debug("entities culled",
			zap.Int("count", destroyed),
			zap.Int("bullets_alive", s.Component.Bullet.CountEntities()),
		)
	}
}
