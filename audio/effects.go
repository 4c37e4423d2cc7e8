package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/grid-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose pitch glides linearly between two frequencies
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a sine glide from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := s.from + (s.to-s.from)*float64(s.position)/float64(s.duration)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateEatSound generates a quick upward gulp: a sine glide over a short noise crunch
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// D5 up to A6
	glide := NewSweep(587.33, 1760.0, constants.EatSoundDuration, rate)
	glideShaped := NewEnvelope(glide, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundRelease, rate)

	crunch := NewOscillator(0, constants.EatCrunchDuration, WaveNoise, rate)
	crunchShaped := NewEnvelope(crunch, constants.EatCrunchDuration, 0, constants.EatCrunchRelease, rate)

	mixed := beep.Mix(
		newVolume(glideShaped, 0.75),
		newVolume(crunchShaped, 0.25),
	)
	return newVolume(mixed, effectVolume(cfg, SoundEat))
}

// CreateDeathSound generates a low saw buzz with a noise burst
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(90.0, constants.DeathSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	noise := NewOscillator(0, constants.DeathSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(buzzShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundDeath))
}

// winNotes is a C major arpeggio, C5 E5 G5 C6
var winNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// CreateWinSound generates an ascending arpeggio for a filled board
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(winNotes))
	for _, freq := range winNotes {
		notes = append(notes, winNote(freq, rate))
	}
	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundWin))
}

func winNote(freq float64, rate beep.SampleRate) beep.Streamer {
	n := rate.N(constants.WinSoundNoteDuration)
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist for a low sample rate
		tone = NewOscillator(freq, constants.WinSoundNoteDuration, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(n, tone), constants.WinSoundNoteDuration, constants.WinSoundAttack, constants.WinSoundRelease, rate)
}

// GetSoundEffect returns the streamer for the given type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
