package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/vmath"
)

func spawnTestBullet(w *engine.World, pos vmath.Vec2, rotation, speed float64, maxLifetime time.Duration) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Rotation: rotation, Scale: 0.5})
	w.Components.Bullet.SetComponent(e, component.BulletComponent{Speed: speed, MaxLifetime: maxLifetime})
	return e
}

func TestBullet_StraightLineTravel(t *testing.T) {
	angles := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 4, 2.5}

	for _, theta := range angles {
		w, _ := newTestWorld(t)
		w.Resources.Tuning.BulletCullMargin = -1
		s := NewBulletSystem(w)
		start := vmath.Vec2{X: 3, Y: -4}
		e := spawnTestBullet(w, start, theta, 1000, 0)

		for range 5 {
			setFrame(w, 20*time.Millisecond, released)
			s.Update()
		}

		tr, ok := w.Components.Transform.GetComponent(e)
		require.True(t, ok)
		want := vmath.V2Add(start, vmath.V2Scale(vmath.V2FromAngle(theta), 1000*0.1))
		assert.InDelta(t, want.X, tr.Position.X, 1e-9, "theta %v", theta)
		assert.InDelta(t, want.Y, tr.Position.Y, 1e-9, "theta %v", theta)
		assert.Equal(t, theta, tr.Rotation, "rotation never changes")
	}
}

func TestBullet_ZeroDeltaIsNoOp(t *testing.T) {
	w, _ := newTestWorld(t)
	s := NewBulletSystem(w)
	e := spawnTestBullet(w, vmath.Vec2{X: 1, Y: 2}, 1, 1000, time.Second)
	before, _ := w.Components.Bullet.GetComponent(e)

	setFrame(w, 0, released)
	s.Update()
	s.Update()

	tr, _ := w.Components.Transform.GetComponent(e)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 2}, tr.Position)
	after, _ := w.Components.Bullet.GetComponent(e)
	assert.Equal(t, before, after)
	assert.False(t, w.Components.Death.HasEntity(e))
}

func TestBullet_ExpiresAfterMaxLifetime(t *testing.T) {
	w, _ := newTestWorld(t)
	s := NewBulletSystem(w)
	e := spawnTestBullet(w, vmath.Vec2{}, 0, 0, 300*time.Millisecond)

	for range 3 {
		setFrame(w, 100*time.Millisecond, released)
		s.Update()
	}
	assert.False(t, w.Components.Death.HasEntity(e), "lifetime equal to max is still alive")

	setFrame(w, 100*time.Millisecond, released)
	s.Update()
	death, ok := w.Components.Death.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, component.DeathExpired, death.Reason)
}

func TestBullet_ZeroMaxLifetimeNeverExpires(t *testing.T) {
	w, _ := newTestWorld(t)
	s := NewBulletSystem(w)
	e := spawnTestBullet(w, vmath.Vec2{}, 0, 0, 0)

	setFrame(w, time.Hour, released)
	s.Update()
	assert.False(t, w.Components.Death.HasEntity(e))
}

func TestBullet_OutOfBounds(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Resources.Tuning.BulletCullMargin = 10
	s := NewBulletSystem(w)

	// Visible bounds are [-50, 50] on both axes, so the cull edge sits at 60
	e := spawnTestBullet(w, vmath.Vec2{}, 0, 100, 0)

	setFrame(w, 500*time.Millisecond, released)
	s.Update()
	assert.False(t, w.Components.Death.HasEntity(e), "at x=50")

	setFrame(w, 50*time.Millisecond, released)
	s.Update()
	assert.False(t, w.Components.Death.HasEntity(e), "at x=55")

	setFrame(w, 100*time.Millisecond, released)
	s.Update()
	death, ok := w.Components.Death.GetComponent(e)
	require.True(t, ok, "at x=65")
	assert.Equal(t, component.DeathOutOfBounds, death.Reason)
}

func TestBullet_BoundsCullingDisabled(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Resources.Tuning.BulletCullMargin = -1
	s := NewBulletSystem(w)
	e := spawnTestBullet(w, vmath.Vec2{}, 0, 1000, 0)

	setFrame(w, time.Second, released)
	s.Update()
	assert.False(t, w.Components.Death.HasEntity(e))

	// Without a camera there are no bounds either
	w2 := engine.NewWorld()
	s2 := NewBulletSystem(w2)
	e2 := spawnTestBullet(w2, vmath.Vec2{}, 0, 1000, 0)
	setFrame(w2, time.Second, released)
	s2.Update()
	assert.False(t, w2.Components.Death.HasEntity(e2))
}
