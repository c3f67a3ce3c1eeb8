package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/core"
)

// World contains all entities and their components using typed stores
// Entity IDs are allocated monotonically and never reused, including across Clear
// A World belongs to the goroutine running the frame loop
type World struct {
	nextEntityID core.Entity

	// Singleton resources
	Resources *Resource

	Components ComponentStore
	allStores  []entityStore

	systems []System
}

// NewWorld creates a new ECS world with default resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResource(),
	}

	initComponentStores(w)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Entities with ProtectAll are left untouched
func (w *World) DestroyEntity(e core.Entity) {
	w.DestroyEntities([]core.Entity{e})
}

// DestroyEntities removes every listed entity from all stores in one pass per store
// Entities with ProtectAll are skipped; returns the number destroyed
func (w *World) DestroyEntities(entities []core.Entity) int {
	doomed := slices.DeleteFunc(slices.Clone(entities), func(e core.Entity) bool {
		prot, ok := w.Components.Protection.GetComponent(e)
		return ok && prot.Mask == component.ProtectAll
	})
	if len(doomed) == 0 {
		return 0
	}
	w.removeFromAllStores(doomed)
	return len(doomed)
}

// Clear removes all entities and components from the world, protected ones included
// Resources and systems are kept; the player resource is reset
func (w *World) Clear() {
	w.clearAllStores()
	w.Resources.Player.Entity = 0
}

// EntityCount returns the number of live entities with a transform
func (w *World) EntityCount() int {
	return w.Components.Transform.CountEntities()
}

// AddSystem adds a system to the world and keeps systems ordered by priority
// Systems sharing a priority run in registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// InitSystems re-initializes every system, used on reset
func (w *World) InitSystems() {
	for _, system := range w.systems {
		system.Init()
	}
}
