package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/vmath"
)

func TestMovement_KeyCombinations(t *testing.T) {
	const step = 45.0 // 90 units/s for 0.5s

	tests := []struct {
		name string
		keys input.KeySet
		want vmath.Vec2
	}{
		{"none", 0, vmath.Vec2{}},
		{"W", input.Keys(input.KeyW), vmath.Vec2{Y: step}},
		{"S", input.Keys(input.KeyS), vmath.Vec2{Y: -step}},
		{"A", input.Keys(input.KeyA), vmath.Vec2{X: -step}},
		{"D", input.Keys(input.KeyD), vmath.Vec2{X: step}},
		{"W+D", input.Keys(input.KeyW, input.KeyD), vmath.Vec2{X: step, Y: step}},
		{"W+A", input.Keys(input.KeyW, input.KeyA), vmath.Vec2{X: -step, Y: step}},
		{"S+D", input.Keys(input.KeyS, input.KeyD), vmath.Vec2{X: step, Y: -step}},
		{"S+A", input.Keys(input.KeyS, input.KeyA), vmath.Vec2{X: -step, Y: -step}},
		{"W+S resolves to W", input.Keys(input.KeyW, input.KeyS), vmath.Vec2{Y: step}},
		{"A+D resolves to A", input.Keys(input.KeyA, input.KeyD), vmath.Vec2{X: -step}},
		{"W+A+D resolves to W+D", input.Keys(input.KeyW, input.KeyA, input.KeyD), vmath.Vec2{X: step, Y: step}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, player := newTestWorld(t)
			s := NewMovementSystem(w)

			setFrame(w, 500*time.Millisecond, input.Snapshot{Keys: tt.keys})
			s.Update()

			got := playerTransform(t, w, player).Position
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestMovement_Accumulates(t *testing.T) {
	w, player := newTestWorld(t)
	s := NewMovementSystem(w)

	for i := 0; i < 10; i++ {
		setFrame(w, 100*time.Millisecond, input.Snapshot{Keys: input.Keys(input.KeyD)})
		s.Update()
	}

	got := playerTransform(t, w, player).Position
	assert.InDelta(t, 90.0, got.X, 1e-9)
	assert.Equal(t, 0.0, got.Y)
}

func TestMovement_ZeroDeltaNoMove(t *testing.T) {
	w, player := newTestWorld(t)
	s := NewMovementSystem(w)

	setFrame(w, 0, input.Snapshot{Keys: input.Keys(input.KeyW, input.KeyD)})
	s.Update()

	assert.Equal(t, vmath.Vec2{}, playerTransform(t, w, player).Position)
}

func TestMovement_NormalizeDiagonal(t *testing.T) {
	w, player := newTestWorld(t)
	w.Resources.Tuning.NormalizeDiagonal = true
	s := NewMovementSystem(w)

	setFrame(w, time.Second, input.Snapshot{Keys: input.Keys(input.KeyW, input.KeyA)})
	s.Update()

	got := playerTransform(t, w, player).Position
	assert.InDelta(t, 90.0, vmath.V2Mag(got), 1e-9)
	assert.InDelta(t, -90/math.Sqrt2, got.X, 1e-9)
}

func TestMovement_EachPlayerIndependently(t *testing.T) {
	w, first := newTestWorld(t)

	second := w.CreateEntity()
	w.Components.Transform.SetComponent(second, component.TransformComponent{Position: vmath.Vec2{X: 5, Y: 5}})
	w.Components.Player.SetComponent(second, component.PlayerComponent{Speed: 10})

	s := NewMovementSystem(w)
	setFrame(w, time.Second, input.Snapshot{Keys: input.Keys(input.KeyS)})
	s.Update()

	assert.Equal(t, vmath.Vec2{Y: -90}, playerTransform(t, w, first).Position)
	assert.Equal(t, vmath.Vec2{X: 5, Y: -5}, playerTransform(t, w, second).Position)
}
