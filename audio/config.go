package audio

import (
	"time"

	"github.com/lixenwraith/bird-shooter/core"
)

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
	BufferSize    time.Duration
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundShot: 0.4,
		},
		SampleRate: 44100,
		BufferSize: 50 * time.Millisecond,
	}
}

// effectVolume returns the scaled volume for a sound, master volume included
func (c *AudioConfig) effectVolume(s core.SoundType) float64 {
	vol, ok := c.EffectVolumes[s]
	if !ok {
		vol = 1
	}
	return vol * c.MasterVolume
}
