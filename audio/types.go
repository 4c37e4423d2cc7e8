package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Snake grew into food
	SoundDeath                  // Boundary or body collision
	SoundWin                    // Board filled
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"eat", "death", "win"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64               // 0.0 to 1.0
	EffectVolumes map[SoundType]float64 // Per-effect multiplier
	SampleRate    int
}

// DefaultAudioConfig returns sensible defaults
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundEat:   0.6,
			SoundDeath: 0.8,
			SoundWin:   0.7,
		},
		SampleRate: 44100,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound type")
)
