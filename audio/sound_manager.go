// Package audio plays short cues for animation milestones through beep.
//
// Audio is optional: a SoundManager that failed to initialise, or was never
// initialised, silently drops every cue.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/butterfly/constant"
)

// Sound identifies a cue
type Sound int

const (
	SoundChime Sound = iota
	SoundFinish
)

// SoundManager owns the speaker and a mixer that cues are queued into
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager creates a manager at the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(constant.AudioSampleRate),
		volume: min(1, max(0, volume)),
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue; dropped when audio is not initialised
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := sm.create(s)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played++
}

// Played returns the number of cues sent to the speaker
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

func (sm *SoundManager) create(s Sound) beep.Streamer {
	switch s {
	case SoundChime:
		return CreateChimeSound(sm.rate, sm.volume)
	case SoundFinish:
		return CreateFinishSound(sm.rate, sm.volume)
	default:
		return nil
	}
}

// Close stops playback and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
