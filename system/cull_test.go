package system

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/bird-shooter/component"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/vmath"
)

func TestCull_DestroysTaggedBullets(t *testing.T) {
	w, _ := newTestWorld(t)
	s := NewCullSystem(w).(*CullSystem)

	dead := spawnTestBullet(w, vmath.Vec2{}, 0, 0, 0)
	alive := spawnTestBullet(w, vmath.Vec2{}, 0, 0, 0)
	w.Components.Death.SetComponent(dead, component.DeathComponent{Reason: component.DeathExpired})

	s.Update()

	assert.False(t, w.Components.Bullet.HasEntity(dead))
	assert.False(t, w.Components.Transform.HasEntity(dead))
	assert.False(t, w.Components.Death.HasEntity(dead))
	assert.True(t, w.Components.Bullet.HasEntity(alive))
	assert.Equal(t, int64(1), s.Culled())
}

func TestCull_LeavesPlayerAlone(t *testing.T) {
	w, player := newTestWorld(t)
	s := NewCullSystem(w).(*CullSystem)

	w.Components.Death.SetComponent(player, component.DeathComponent{Reason: component.DeathOutOfBounds})
	s.Update()

	assert.True(t, w.Components.Player.HasEntity(player))
	assert.True(t, w.Components.Transform.HasEntity(player))
	assert.False(t, w.Components.Death.HasEntity(player), "tag dropped from protected entity")
	assert.Equal(t, int64(0), s.Culled())
}

func TestSystems_FullFrameOrder(t *testing.T) {
	w, player := newTestWorld(t)
	systems := RegisterAll(w)

	names := make([]string, 0, 5)
	for _, s := range w.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"movement", "aim", "weapon", "bullet", "cull"}, names)

	// The bullet spawned this frame takes the freshly aimed facing and
	// starts at the player's position
	snap := cursorAt(10, 40)
	snap.Fire = true
	setFrame(w, 100*time.Millisecond, snap)
	w.Update()

	tr := playerTransform(t, w, player)
	assert.InDelta(t, 0, tr.Position.X, 1e-9)

	bullets := w.Components.Bullet.GetAllEntities()
	if assert.Len(t, bullets, 1) {
		bt, _ := w.Components.Transform.GetComponent(bullets[0])
		assert.InDelta(t, tr.Rotation, bt.Rotation, 1e-12)
		assert.Equal(t, tr.Position, bt.Position)

		setFrame(w, 100*time.Millisecond, cursorAt(10, 40))
		w.Update()
		bt, _ = w.Components.Transform.GetComponent(bullets[0])
		assert.InDelta(t, 100, vmath.V2Mag(bt.Position), 1e-9)
	}
	assert.Equal(t, int64(1), systems.Weapon.Fired())
}

func TestGame_BulletStartsAtPlayerOnSpawnFrame(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Resources.Tuning.BulletCullMargin = -1
	RegisterAll(w)
	game := engine.NewGame(w, engine.NewMockTimeProvider(time.Unix(0, 0)))

	game.SetInput(input.Snapshot{Fire: true})
	game.Step(100 * time.Millisecond)
	assert.Equal(t, []float64{0}, bulletXs(w))

	// Two intervals complete: both new bullets wait at the player while the first travels
	game.Step(250 * time.Millisecond)
	assert.Equal(t, []float64{0, 0, 250}, bulletXs(w))

	game.SetInput(input.Snapshot{})
	game.Step(100 * time.Millisecond)
	assert.Equal(t, []float64{100, 100, 350}, bulletXs(w))
}

// bulletXs returns the sorted X positions of all bullets
func bulletXs(w *engine.World) []float64 {
	xs := make([]float64, 0)
	for _, e := range w.Components.Bullet.GetAllEntities() {
		tr, _ := w.Components.Transform.GetComponent(e)
		xs = append(xs, tr.Position.X)
	}
	sort.Float64s(xs)
	return xs
}
