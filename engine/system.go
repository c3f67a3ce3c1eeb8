package engine

// System is a per-frame controller run by World.Update
type System interface {
	// Init resets system-local state
	Init()
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	// Update runs one frame using the world's resources
	Update()
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: &w.Components,
	}
}
