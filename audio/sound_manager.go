package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/brain-splash/core"
)

const clickDuration = 140 * time.Millisecond

// SoundManager owns the speaker: click chime and the intro soundtrack
// Every method is a no-op until Initialize succeeds, so the splash runs silent on hosts without audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	volume      *effects.Volume
	clickCtrl   *beep.Ctrl
	trackCtrl   *beep.Ctrl
	trackGen    uint64 // Bumped on every PlayTrack/StopTrack, stale end callbacks are dropped
	initialized bool
}

// NewSoundManager creates a sound manager, nothing is opened until Initialize
func NewSoundManager(cfg Config) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize sets up the speaker, disabled audio initializes nothing and returns nil
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sm.sampleRate, sm.sampleRate.N(time.Millisecond*100))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.volume = newVolume(sm.mixer, sm.cfg.Gain())
	speaker.Play(sm.volume)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz, volume %d%%", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// newVolume maps a linear gain onto beep's exponential volume control
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(gain)
	return v
}

// Initialized reports whether sounds are actually played
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SampleRate returns the output rate tracks are resampled to
func (sm *SoundManager) SampleRate() beep.SampleRate {
	return sm.sampleRate
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.clickCtrl != nil {
		sm.clickCtrl.Paused = true
	}
	if sm.trackCtrl != nil {
		sm.trackCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.clickCtrl = nil
	sm.trackCtrl = nil
	sm.trackGen++
	speaker.Close()
	sm.initialized = false
}

// PlayClick restarts the activation chime from the beginning
func (sm *SoundManager) PlayClick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewChimeGenerator(sm.sampleRate, clickDuration)}

	speaker.Lock()
	if sm.clickCtrl != nil {
		sm.clickCtrl.Paused = true
		sm.clickCtrl.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.clickCtrl = ctrl
}

// StopClick silences the chime, the next PlayClick starts from the beginning
func (sm *SoundManager) StopClick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.clickCtrl == nil {
		return
	}

	speaker.Lock()
	sm.clickCtrl.Paused = true
	sm.clickCtrl.Streamer = nil
	speaker.Unlock()

	sm.clickCtrl = nil
}

// PlayTrack replaces the current track with s, resampled from format to the output rate
// onEnded runs on its own goroutine when s is exhausted, never after StopTrack
func (sm *SoundManager) PlayTrack(s beep.Streamer, format beep.Format, onEnded func()) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return fmt.Errorf("audio not initialized")
	}

	if format.SampleRate != 0 && format.SampleRate != sm.sampleRate {
		s = beep.Resample(4, format.SampleRate, sm.sampleRate, s)
	}

	sm.trackGen++
	gen := sm.trackGen
	done := beep.Callback(func() {
		// Runs under the speaker lock, hand off before touching sm.mu
		core.Go(func() { sm.trackEnded(gen, onEnded) })
	})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(s, done)}

	speaker.Lock()
	if sm.trackCtrl != nil {
		sm.trackCtrl.Paused = true
		sm.trackCtrl.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.trackCtrl = ctrl
	return nil
}

func (sm *SoundManager) trackEnded(gen uint64, onEnded func()) {
	sm.mu.Lock()
	current := gen == sm.trackGen
	if current {
		sm.trackCtrl = nil
	}
	sm.mu.Unlock()

	if current && onEnded != nil {
		onEnded()
	}
}

// StopTrack halts the track without firing its end callback
func (sm *SoundManager) StopTrack() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.trackGen++
	if !sm.initialized || sm.trackCtrl == nil {
		return
	}

	speaker.Lock()
	sm.trackCtrl.Paused = true
	sm.trackCtrl.Streamer = nil
	speaker.Unlock()

	sm.trackCtrl = nil
}
