package component

import "github.com/lixenwraith/bird-shooter/vmath"

// TransformComponent places an entity in world space
type TransformComponent struct {
	Position vmath.Vec2
	Rotation float64 // Radians about the depth axis, counter-clockwise from +X
	Scale    float64 // Uniform visual scale
}

// Forward returns the entity's local X axis in world space
func (t TransformComponent) Forward() vmath.Vec2 {
	return vmath.V2FromAngle(t.Rotation)
}
