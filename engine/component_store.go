package engine

import (
	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/core"
)

// ComponentStore holds the typed stores for every component kind
type ComponentStore struct {
	Transform  *Store[component.TransformComponent]
	Player     *Store[component.PlayerComponent]
	Bullet     *Store[component.BulletComponent]
	Sprite     *Store[component.SpriteComponent]
	Death      *Store[component.DeathComponent]
	Protection *Store[component.ProtectionComponent]
}

// entityStore is the type-erased view World uses for whole-entity lifecycle operations
type entityStore interface {
	RemoveBatch(entities []core.Entity)
	ClearAllComponents()
}

// initComponentStores creates the stores and registers them for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform:  NewStore[component.TransformComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Bullet:     NewStore[component.BulletComponent](),
		Sprite:     NewStore[component.SpriteComponent](),
		Death:      NewStore[component.DeathComponent](),
		Protection: NewStore[component.ProtectionComponent](),
	}

	w.allStores = []entityStore{
		w.Components.Transform,
		w.Components.Player,
		w.Components.Bullet,
		w.Components.Sprite,
		w.Components.Death,
		w.Components.Protection,
	}
}

func (w *World) removeFromAllStores(entities []core.Entity) {
	for _, s := range w.allStores {
		s.RemoveBatch(entities)
	}
}

func (w *World) clearAllStores() {
	for _, s := range w.allStores {
		s.ClearAllComponents()
	}
}
