package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/event"
)

// SoundManager plays game sound effects through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager, nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrAudioDisabled when turned off by configuration
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a sound effect, no-op before Initialize
func (sm *SoundManager) Play(st SoundType) error {
	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// HandleEvent plays the sound mapped to a game event
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if st, ok := SoundForEvent(ev.Type); ok {
		sm.Play(st)
	}
}

// SoundForEvent maps game events to sound effects
func SoundForEvent(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventFoodEaten:
		return SoundEat, true
	case event.EventBoundaryHit, event.EventCollision:
		return SoundDeath, true
	case event.EventBoardFilled:
		return SoundWin, true
	default:
		return 0, false
	}
}

// Cleanup clears queued sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer = &beep.Mixer{}
	sm.initialized = false
}
