package engine

import (
	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/core"
)

// SpawnPlayer creates the singleton player at the world origin facing +X
// Returns ErrPlayerExists while a player is alive
func (w *World) SpawnPlayer() (core.Entity, error) {
	if existing := w.Resources.Player.Entity; existing != 0 && w.Components.Player.HasEntity(existing) {
		return existing, ErrPlayerExists
	}

	tuning := w.Resources.Tuning
	e := w.CreateEntity()

	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Scale: tuning.PlayerScale,
	})
	w.Components.Player.SetComponent(e, component.PlayerComponent{
		Speed: tuning.PlayerSpeed,
	})
	w.Components.Sprite.SetComponent(e, component.SpriteComponent{
		Asset: tuning.PlayerAsset,
	})
	w.Components.Protection.SetComponent(e, component.ProtectionComponent{
		Mask: component.ProtectAll,
	})

	w.Resources.Player.Entity = e
	return e, nil
}

// PlayerTransform returns the singleton player's transform
// ok is false when no player exists
func (w *World) PlayerTransform() (component.TransformComponent, bool) {
	e := w.Resources.Player.Entity
	if e == 0 {
		return component.TransformComponent{}, false
	}
	return w.Components.Transform.GetComponent(e)
}
