// Package config loads game settings from YAML
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bird-shooter/engine"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk configuration
// Durations use Go syntax ("100ms", "3s")
type Config struct {
	Player  PlayerConfig      `yaml:"player"`
	Bullet  BulletConfig      `yaml:"bullet"`
	Input   InputConfig       `yaml:"input"`
	Assets  AssetConfig       `yaml:"assets"`
	Audio   AudioConfig       `yaml:"audio"`
	Logging LoggingConfig     `yaml:"logging"`
	Keymap  map[string]string `yaml:"keymap"`
}

type PlayerConfig struct {
	Speed             float64 `yaml:"speed"`
	Scale             float64 `yaml:"scale"`
	NormalizeDiagonal bool    `yaml:"normalize_diagonal"`
}

type BulletConfig struct {
	Speed        float64       `yaml:"speed"`
	Scale        float64       `yaml:"scale"`
	FireInterval time.Duration `yaml:"fire_interval"`
	MaxLifetime  time.Duration `yaml:"max_lifetime"` // Zero disables expiry
	CullMargin   float64       `yaml:"cull_margin"`  // Negative disables bounds culling
}

type InputConfig struct {
	KeyHoldWindow time.Duration `yaml:"key_hold_window"`
}

type AssetConfig struct {
	Root   string `yaml:"root"`
	Player string `yaml:"player"`
	Bullet string `yaml:"bullet"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Dir     string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Speed:             parameter.PlayerSpeed,
			Scale:             parameter.PlayerScale,
			NormalizeDiagonal: parameter.NormalizeDiagonal,
		},
		Bullet: BulletConfig{
			Speed:        parameter.BulletSpeed,
			Scale:        parameter.BulletScale,
			FireInterval: parameter.FireInterval,
			MaxLifetime:  parameter.BulletMaxLifetime,
			CullMargin:   parameter.BulletCullMargin,
		},
		Input: InputConfig{
			KeyHoldWindow: parameter.KeyHoldWindow,
		},
		Assets: AssetConfig{
			Root:   "assets",
			Player: parameter.PlayerAsset,
			Bullet: parameter.BulletAsset,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "logs",
		},
	}
}

// Load reads path over the defaults
// A missing file yields the defaults; malformed or invalid content is an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and key bindings
func (c *Config) Validate() error {
	var errs []error
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("%w: player.speed must be positive, got %v", ErrInvalid, c.Player.Speed))
	}
	if c.Player.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: player.scale must be positive, got %v", ErrInvalid, c.Player.Scale))
	}
	if c.Bullet.Speed <= 0 {
		errs = append(errs, fmt.Errorf("%w: bullet.speed must be positive, got %v", ErrInvalid, c.Bullet.Speed))
	}
	if c.Bullet.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: bullet.scale must be positive, got %v", ErrInvalid, c.Bullet.Scale))
	}
	if c.Bullet.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: bullet.fire_interval must be positive, got %v", ErrInvalid, c.Bullet.FireInterval))
	}
	if c.Bullet.MaxLifetime < 0 {
		errs = append(errs, fmt.Errorf("%w: bullet.max_lifetime must not be negative, got %v", ErrInvalid, c.Bullet.MaxLifetime))
	}
	if c.Input.KeyHoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: input.key_hold_window must be positive, got %v", ErrInvalid, c.Input.KeyHoldWindow))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, c.Audio.Volume))
	}
	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// Tuning maps the gameplay settings onto the engine's tuning resource
func (c *Config) Tuning() engine.TuningResource {
	t := engine.DefaultTuning()
	t.PlayerSpeed = c.Player.Speed
	t.PlayerScale = c.Player.Scale
	t.NormalizeDiagonal = c.Player.NormalizeDiagonal
	t.BulletSpeed = c.Bullet.Speed
	t.BulletScale = c.Bullet.Scale
	t.FireInterval = c.Bullet.FireInterval
	t.BulletMaxLifetime = c.Bullet.MaxLifetime
	t.BulletCullMargin = c.Bullet.CullMargin
	if c.Assets.Player != "" {
		t.PlayerAsset = c.Assets.Player
	}
	if c.Assets.Bullet != "" {
		t.BulletAsset = c.Assets.Bullet
	}
	return t
}

// KeyTable returns the default bindings with the keymap overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if err := kt.Apply(c.Keymap); err != nil {
		return nil, err
	}
	return kt, nil
}
