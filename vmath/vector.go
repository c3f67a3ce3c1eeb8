package vmath

import "math"

// Vec2 is a float64 2D vector in world space
// Y grows upward, angles are radians measured counter-clockwise from +X
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Dot returns a.X*b.X + a.Y*b.Y
func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product of a and b
// Positive when b lies counter-clockwise from a
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector of v, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2IsZero reports whether both components are exactly zero
func V2IsZero(v Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// V2FromAngle returns the unit facing vector for rotation theta
// This is the local X axis of an entity expressed in world space
func V2FromAngle(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{cos, sin}
}

// V2AngleTo returns the signed angle that rotates from onto to, in (-π, π]
// Returns 0 when either vector is zero
func V2AngleTo(from, to Vec2) float64 {
	if V2IsZero(from) || V2IsZero(to) {
		return 0
	}
	return math.Atan2(V2Cross(from, to), V2Dot(from, to))
}

// NormalizeAngle wraps theta into (-π, π]
func NormalizeAngle(theta float64) float64 {
	if theta > -math.Pi && theta <= math.Pi {
		return theta
	}
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}
	return theta
}
