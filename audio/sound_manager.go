package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lightbeam/constant"
	"github.com/lixenwraith/lightbeam/core"
)

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled")

// SoundManager plays game sound effects through the beep speaker
// All operations degrade to no-ops when the speaker is unavailable
type SoundManager struct {
	mu     sync.Mutex
	cfg    *AudioConfig
	cache  *soundCache
	mixer  *beep.Mixer
	rate   beep.SampleRate
	muted  atomic.Bool
	ready  atomic.Bool
	played atomic.Int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		cache: newSoundCache(cfg.SampleRate),
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ready.Load() {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.ready.Store(true)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.ready.Load() {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.ready.Store(false)
}

// Play queues a sound variant, returns false when nothing was queued
func (sm *SoundManager) Play(st core.SoundType, variant int) bool {
	if !sm.ready.Load() || sm.muted.Load() {
		return false
	}

	streamer := sm.streamer(st, variant)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
	return true
}

// streamer builds a volume-adjusted one-shot streamer for a sound
func (sm *SoundManager) streamer(st core.SoundType, variant int) beep.Streamer {
	buf := sm.cache.get(st, variant)
	if len(buf) == 0 {
		return nil
	}
	return newVolume(&bufferStreamer{buf: buf}, sm.cfg.Volume(st))
}

// IsRunning reports whether the speaker is active
func (sm *SoundManager) IsRunning() bool {
	return sm.ready.Load()
}

// ToggleMute flips mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns the number of sounds queued since start
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// newVolume wraps a streamer with volume control
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
