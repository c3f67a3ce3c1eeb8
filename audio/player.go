package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/bird-shooter/core"
)

// SoundPlayer plays one-shot effects through the system speaker
// Effects are mixed, so overlapping shots never cut each other off
type SoundPlayer struct {
	mu     sync.Mutex
	config *AudioConfig
	mixer  *beep.Mixer
	logger *zap.Logger

	running atomic.Bool
	muted   atomic.Bool
	played  atomic.Int64
}

// NewSoundPlayer creates a stopped player; Start opens the device
func NewSoundPlayer(cfg *AudioConfig, logger *zap.Logger) *SoundPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundPlayer{
		config: cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Start initializes the speaker and begins streaming the mixer
// A disabled config leaves the player stopped without error
func (p *SoundPlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return nil
	}
	if !p.config.Enabled {
		p.logger.Info("audio disabled by config")
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(p.config.BufferSize)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.running.Store(true)

	p.logger.Info("audio started",
		zap.Int("sample_rate", p.config.SampleRate),
		zap.Duration("buffer", p.config.BufferSize),
	)
	return nil
}

// Stop silences all effects and closes the speaker
func (p *SoundPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.Swap(false) {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.logger.Info("audio stopped", zap.Int64("played", p.played.Load()))
}

// Play queues an effect, returning false when it was not queued
func (p *SoundPlayer) Play(sound core.SoundType) bool {
	if !p.running.Load() || p.muted.Load() {
		return false
	}

	streamer := GetSoundEffect(sound, p.config)
	if streamer == nil {
		p.logger.Warn("unknown sound", zap.Stringer("sound", sound))
		return false
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()

	p.played.Add(1)
	return true
}

// ToggleMute flips the mute state and returns the new state
func (p *SoundPlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether effects are muted
func (p *SoundPlayer) IsMuted() bool { return p.muted.Load() }

// IsRunning reports whether the speaker is open
func (p *SoundPlayer) IsRunning() bool { return p.running.Load() }

// Played returns the number of effects queued since creation
func (p *SoundPlayer) Played() int64 { return p.played.Load() }
