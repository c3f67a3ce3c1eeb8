// Package app wires configuration, logging, audio and the engine for both frontends
package app

import (
	"flag"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/asset"
	"github.com/lixenwraith/bird-shooter/audio"
	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/config"
	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/logger"
	"github.com/lixenwraith/bird-shooter/system"
)

// Flags are the command-line overrides shared by both binaries
type Flags struct {
	ConfigPath string
	Debug      bool
	AssetRoot  string
	Mute       bool
}

// RegisterFlags defines the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "bird-shooter.yaml", "Path to YAML config (missing file uses defaults)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging to logs/bird-shooter.log")
	fs.StringVar(&f.AssetRoot, "assets", "", "Asset directory (overrides config)")
	fs.BoolVar(&f.Mute, "mute", false, "Start with sound muted")
	return f
}

// App owns everything a frontend needs to run a session
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	World    *engine.World
	Game     *engine.Game
	Systems  system.Systems
	Assets   *asset.Loader
	Audio    *audio.SoundPlayer // nil when audio is unavailable
	KeyTable *input.KeyTable

	closeLog  func() error
	closeOnce sync.Once
}

// New loads configuration, opens the log, starts audio and spawns the player
// cam is attached as the world camera and must not be nil
func New(flags *Flags, cam *camera.Camera2D) (*App, error) {
	if flags == nil {
		flags = &Flags{}
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if flags.Debug {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if flags.AssetRoot != "" {
		cfg.Assets.Root = flags.AssetRoot
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.Setup(logger.Config{
		Enabled: cfg.Logging.Enabled,
		Level:   cfg.Logging.Level,
		Dir:     cfg.Logging.Dir,
	})
	if err != nil {
		return nil, err
	}

	world := engine.NewWorld()
	world.Resources.Logger = log
	*world.Resources.Tuning = cfg.Tuning()
	world.Resources.Camera.Camera = cam

	a := &App{
		Config:   cfg,
		Logger:   log,
		World:    world,
		Game:     engine.NewGame(world, nil),
		Assets:   asset.NewLoader(cfg.Assets.Root),
		KeyTable: keys,
		closeLog: closeLog,
	}

	a.startAudio(flags.Mute)
	a.Systems = system.RegisterAll(world)

	if _, err := world.SpawnPlayer(); err != nil {
		a.Close()
		return nil, fmt.Errorf("app: spawn player: %w", err)
	}

	log.Info("session started",
		zap.String("config", flags.ConfigPath),
		zap.String("assets", cfg.Assets.Root),
		zap.Float64("player_speed", cfg.Player.Speed),
		zap.Float64("bullet_speed", cfg.Bullet.Speed),
		zap.Duration("fire_interval", cfg.Bullet.FireInterval),
		zap.Bool("audio", a.Audio != nil),
	)
	return a, nil
}

// startAudio opens the speaker; failure leaves the game silent
func (a *App) startAudio(muted bool) {
	if !a.Config.Audio.Enabled {
		return
	}
	cfg := audio.DefaultAudioConfig()
	cfg.MasterVolume = a.Config.Audio.Volume

	player := audio.NewSoundPlayer(cfg, a.Logger)
	if err := player.Start(); err != nil {
		a.Logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return
	}
	if muted {
		player.ToggleMute()
	}
	a.Audio = player
	a.World.Resources.Audio.Player = player
}

// HandleAction applies a frontend action and reports whether to quit
func (a *App) HandleAction(action input.Action) (quit bool) {
	switch action {
	case input.ActionQuit:
		a.Logger.Info("quit requested", zap.Int64("frame", a.Game.FrameNumber()))
		return true
	case input.ActionPause:
		a.Game.TogglePause()
	case input.ActionReset:
		if err := a.Game.Reset(); err != nil {
			a.Logger.Error("reset failed", zap.Error(err))
		}
	case input.ActionMute:
		if a.Audio != nil {
			muted := a.Audio.ToggleMute()
			a.Logger.Info("mute toggled", zap.Bool("muted", muted))
		}
	}
	return false
}

// Muted reports whether sound is off, including when audio is unavailable
func (a *App) Muted() bool {
	return a.Audio == nil || a.Audio.IsMuted()
}

// Close stops audio and flushes the log; later calls are no-ops
func (a *App) Close() {
	a.closeOnce.Do(a.close)
}

func (a *App) close() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
	a.Logger.Info("session ended",
		zap.Int64("frames", a.Game.FrameNumber()),
		zap.Int64("bullets_fired", a.firedCount()),
	)
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

func (a *App) firedCount() int64 {
	if a.Systems.Weapon == nil {
		return 0
	}
	return a.Systems.Weapon.Fired()
}
