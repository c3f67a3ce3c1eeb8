package component

// PlayerComponent marks the controllable entity
type PlayerComponent struct {
	Speed float64 // World units per second, per axis
}
