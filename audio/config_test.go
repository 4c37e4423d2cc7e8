package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *AudioConfig)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *AudioConfig) {
				def := DefaultAudioConfig()
				if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
					t.Errorf("got %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "disabled",
			env:  map[string]string{EnvAudioEnabled: "false"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.Enabled {
					t.Error("expected audio disabled")
				}
			},
		},
		{
			name: "bad bool ignored",
			env:  map[string]string{EnvAudioEnabled: "maybe"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if !cfg.Enabled {
					t.Error("expected default Enabled=true")
				}
			},
		},
		{
			name: "master volume",
			env:  map[string]string{EnvMasterVolume: "80"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 0.8 {
					t.Errorf("MasterVolume = %f, want 0.8", cfg.MasterVolume)
				}
			},
		},
		{
			name: "master volume clamped high",
			env:  map[string]string{EnvMasterVolume: "250"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 1 {
					t.Errorf("MasterVolume = %f, want 1", cfg.MasterVolume)
				}
			},
		},
		{
			name: "master volume clamped low",
			env:  map[string]string{EnvMasterVolume: "-5"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 0 {
					t.Errorf("MasterVolume = %f, want 0", cfg.MasterVolume)
				}
			},
		},
		{
			name: "effect volumes",
			env:  map[string]string{EnvSFXVolumes: `{"eat":0.2,"win":1.5,"bogus":0.1}`},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.EffectVolumes[SoundEat] != 0.2 {
					t.Errorf("eat = %f, want 0.2", cfg.EffectVolumes[SoundEat])
				}
				if cfg.EffectVolumes[SoundWin] != 1 {
					t.Errorf("win = %f, want clamped 1", cfg.EffectVolumes[SoundWin])
				}
				if cfg.EffectVolumes[SoundDeath] != DefaultAudioConfig().EffectVolumes[SoundDeath] {
					t.Error("death volume should keep its default")
				}
			},
		},
		{
			name: "effect volumes malformed",
			env:  map[string]string{EnvSFXVolumes: `{eat:`},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.EffectVolumes[SoundEat] != DefaultAudioConfig().EffectVolumes[SoundEat] {
					t.Error("malformed JSON should keep defaults")
				}
			},
		},
		{
			name: "sample rate",
			env:  map[string]string{EnvSampleRate: "48000"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.SampleRate != 48000 {
					t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
				}
			},
		},
		{
			name: "sample rate invalid",
			env:  map[string]string{EnvSampleRate: "-1"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.SampleRate != 44100 {
					t.Errorf("SampleRate = %d, want default", cfg.SampleRate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSFXVolumes, EnvSampleRate} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, LoadAudioConfig())
		})
	}
}
