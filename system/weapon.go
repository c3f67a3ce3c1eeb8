package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// WeaponSystem fires bullets from the player while the fire button is held
// The fire timer ticks every frame whether or not the button is held;
// intervals completing while the button is up are dropped, so no backlog builds
type WeaponSystem struct {
	engine.SystemBase

	timer *FireTimer

	// Telemetry
	fired         int64
	warnedNoOwner bool
}

// NewWeaponSystem creates the weapon system
func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{
		SystemBase: engine.NewSystemBase(world),
		timer:      NewFireTimer(world.Resources.Tuning.FireInterval),
	}
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.timer.SetInterval(s.Resource.Tuning.FireInterval)
	s.fired = 0
	s.warnedNoOwner = false
}

func (s *WeaponSystem) Name() string { return "weapon" }

func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

// Fired returns the number of bullets spawned since Init
func (s *WeaponSystem) Fired() int64 { return s.fired }

func (s *WeaponSystem) Update() {
	completed := s.timer.Tick(s.Resource.Time.DeltaTime)
	if completed == 0 || !s.Resource.Input.Snapshot.Fire {
		return
	}

	owner := s.Resource.Player.Entity
	source, ok := s.World.PlayerTransform()
	if !ok {
		// Fall back to the origin so the weapon keeps working without a player
		owner = 0
		source = component.TransformComponent{}
		if !s.warnedNoOwner {
			s.Resource.Logger.Warn("firing without a player, using origin transform")
			s.warnedNoOwner = true
		}
	}

	for i := 0; i < completed; i++ {
		s.spawnBullet(owner, source)
	}
}

func (s *WeaponSystem) spawnBullet(owner core.Entity, source component.TransformComponent) {
	tuning := s.Resource.Tuning
	e := s.World.CreateEntity()

	s.Component.Transform.SetComponent(e, component.TransformComponent{
		Position: source.Position,
		Rotation: source.Rotation,
		Scale:    tuning.BulletScale,
	})
	s.Component.Bullet.SetComponent(e, component.BulletComponent{
		Owner:       owner,
		Speed:       tuning.BulletSpeed,
		MaxLifetime: tuning.BulletMaxLifetime,
		SpawnFrame:  s.Resource.Time.FrameNumber,
	})
	s.Component.Sprite.SetComponent(e, component.SpriteComponent{
		Asset: tuning.BulletAsset,
		Glyph: parameter.BulletGlyph,
	})

	s.fired++

	if player := s.Resource.Audio.Player; player != nil {
		player.Play(core.SoundShot)
	}

	s.Resource.Logger.Debug("bullet spawned",
		zap.Uint64("entity", uint64(e)),
		zap.Float64("x", source.Position.X),
		zap.Float64("y", source.Position.Y),
		zap.Float64("rotation", source.Rotation),
	)
}
