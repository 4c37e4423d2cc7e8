package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	// EatSoundDuration is the rising glide length
	EatSoundDuration = 110 * time.Millisecond
	EatSoundAttack   = 4 * time.Millisecond
	EatSoundRelease  = 70 * time.Millisecond

	// EatCrunchDuration is the noise burst layered under the glide start
	EatCrunchDuration = 18 * time.Millisecond
	EatCrunchRelease  = 12 * time.Millisecond
)

// Death Sound Timing
const (
	DeathSoundDuration = 400 * time.Millisecond
	DeathSoundAttack   = 5 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
)

// Win Sound Timing
const (
	WinSoundNoteDuration = 120 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundRelease      = 80 * time.Millisecond
)
