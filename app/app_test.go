package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/input"
)

// silentFlags points at a config with audio off so tests never open a device
func silentFlags(t *testing.T, extra string) *Flags {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "audio:\n  enabled: false\nlogging:\n  dir: " + filepath.Join(dir, "logs") + "\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return &Flags{ConfigPath: path, AssetRoot: dir}
}

func TestRegisterFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-debug", "-mute", "-assets", "art", "-config", "x.yaml"}))
	assert.Equal(t, &Flags{ConfigPath: "x.yaml", Debug: true, AssetRoot: "art", Mute: true}, f)
}

func TestNew_WiresSession(t *testing.T) {
	cam := camera.New(80, 23, 8, 16)
	a, err := New(silentFlags(t, "player:\n  speed: 45\n"), cam)
	require.NoError(t, err)
	defer a.Close()

	assert.Same(t, cam, a.World.Resources.Camera.Camera)
	assert.Equal(t, 45.0, a.World.Resources.Tuning.PlayerSpeed)
	assert.Nil(t, a.Audio)
	assert.True(t, a.Muted())
	assert.Len(t, a.World.Systems(), 5)

	player := a.World.Resources.Player.Entity
	require.NotZero(t, player)
	p, ok := a.World.Components.Player.GetComponent(player)
	require.True(t, ok)
	assert.Equal(t, 45.0, p.Speed)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(silentFlags(t, "bullet:\n  speed: 0\n"), camera.New(10, 10, 1, 1))
	assert.ErrorContains(t, err, "bullet.speed")
}

func TestNew_DebugWritesLog(t *testing.T) {
	flags := silentFlags(t, "")
	flags.Debug = true
	a, err := New(flags, camera.New(10, 10, 1, 1))
	require.NoError(t, err)
	a.Close()
	a.Close()

	data, err := os.ReadFile(filepath.Join(filepath.Dir(flags.ConfigPath), "logs", "bird-shooter.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Equal(t, 1, strings.Count(string(data), "session ended"), "close is idempotent")
}

func TestHandleAction(t *testing.T) {
	a, err := New(silentFlags(t, ""), camera.New(100, 100, 1, 1))
	require.NoError(t, err)
	defer a.Close()

	first := a.World.Resources.Player.Entity

	assert.False(t, a.HandleAction(input.ActionPause))
	assert.True(t, a.Game.IsPaused())
	assert.False(t, a.HandleAction(input.ActionPause))
	assert.False(t, a.Game.IsPaused())

	// Fire a bullet, then reset clears it and respawns the player
	a.Game.SetInput(input.Snapshot{Fire: true})
	a.Game.Step(100 * time.Millisecond)
	assert.Equal(t, 1, a.World.Components.Bullet.CountEntities())

	assert.False(t, a.HandleAction(input.ActionReset))
	assert.Equal(t, 0, a.World.Components.Bullet.CountEntities())
	assert.NotEqual(t, first, a.World.Resources.Player.Entity)

	assert.False(t, a.HandleAction(input.ActionMute), "mute without audio is a no-op")
	assert.False(t, a.HandleAction(input.ActionNone))
	assert.True(t, a.HandleAction(input.ActionQuit))
}
