package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/camera"
	"github.com/lixenwraith/bird-shooter/core"
	"github.com/lixenwraith/bird-shooter/input"
	"github.com/lixenwraith/bird-shooter/parameter"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Tuning *TuningResource
	Player *PlayerResource
	Input  *InputResource
	Camera *CameraResource
	Audio  *AudioResource

	Logger *zap.Logger
}

// NewResource creates resources with default tuning, an empty input snapshot,
// no camera, no audio and a no-op logger
func NewResource() *Resource {
	tuning := DefaultTuning()
	return &Resource{
		Time:   &TimeResource{},
		Tuning: &tuning,
		Player: &PlayerResource{},
		Input:  &InputResource{},
		Camera: &CameraResource{},
		Audio:  &AudioResource{},
		Logger: zap.NewNop(),
	}
}

// TimeResource wraps time data for systems
// It is updated by Game at the start of every frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the duration since the last frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// TuningResource holds gameplay constants fixed for a session
type TuningResource struct {
	PlayerSpeed       float64
	PlayerScale       float64
	PlayerAsset       string
	NormalizeDiagonal bool

	BulletSpeed       float64
	BulletScale       float64
	BulletAsset       string
	BulletMaxLifetime time.Duration
	BulletCullMargin  float64 // Negative disables bounds culling

	FireInterval time.Duration
}

// DefaultTuning returns the tuning from parameter constants
func DefaultTuning() TuningResource {
	return TuningResource{
		PlayerSpeed:       parameter.PlayerSpeed,
		PlayerScale:       parameter.PlayerScale,
		PlayerAsset:       parameter.PlayerAsset,
		NormalizeDiagonal: parameter.NormalizeDiagonal,
		BulletSpeed:       parameter.BulletSpeed,
		BulletScale:       parameter.BulletScale,
		BulletAsset:       parameter.BulletAsset,
		BulletMaxLifetime: parameter.BulletMaxLifetime,
		BulletCullMargin:  parameter.BulletCullMargin,
		FireInterval:      parameter.FireInterval,
	}
}

// PlayerResource holds the singleton player entity, zero when none exists
type PlayerResource struct {
	Entity core.Entity
}

// InputResource holds the input snapshot for the current frame
type InputResource struct {
	Snapshot input.Snapshot
}

// CameraResource holds the active camera, nil until a frontend attaches one
type CameraResource struct {
	Camera *camera.Camera2D
}

//go:generate go tool mockgen -destination=mocks/audio_player.go -package=mocks . AudioPlayer

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface, Player is nil when audio is unavailable
type AudioResource struct {
	Player AudioPlayer
}
