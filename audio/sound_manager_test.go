package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayClick()
	sm.StopClick()
	sm.StopTrack()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("Manager reports initialized without Initialize")
	}
}

func TestSoundManagerPlayTrackRequiresInit(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	called := false
	err := sm.PlayTrack(beep.Silence(10), beep.Format{SampleRate: 48000, NumChannels: 2, Precision: 2}, func() { called = true })
	if err == nil {
		t.Error("Expected error when playing a track without audio")
	}
	if called {
		t.Error("End callback fired for a track that never played")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled audio should initialize as a no-op, got %v", err)
	}
	if sm.Initialized() {
		t.Error("Disabled audio opened the speaker")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayClick()
	sm.StopClick()
	sm.Cleanup()
}

// TestSoundManagerTrackEnd verifies the end callback fires once for the current track only
func TestSoundManagerTrackEnd(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())
	if err := sm.Initialize(); err != nil {
		t.Skipf("No audio device: %v", err)
	}
	defer sm.Cleanup()

	format := beep.Format{SampleRate: sm.SampleRate(), NumChannels: 2, Precision: 2}
	tone, err := generators.SineTone(sm.SampleRate(), 440)
	if err != nil {
		t.Fatalf("SineTone failed: %v", err)
	}

	stale := make(chan struct{}, 1)
	if err := sm.PlayTrack(tone, format, func() { stale <- struct{}{} }); err != nil {
		t.Fatalf("PlayTrack failed: %v", err)
	}
	sm.StopTrack()

	ended := make(chan struct{}, 1)
	short := beep.Take(sm.SampleRate().N(20*time.Millisecond), beep.Silence(-1))
	if err := sm.PlayTrack(short, format, func() { ended <- struct{}{} }); err != nil {
		t.Fatalf("PlayTrack failed: %v", err)
	}

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("End callback not fired")
	}
	select {
	case <-stale:
		t.Error("Stopped track fired its end callback")
	default:
	}
}

// TestSoundManagerOperationsAfterCleanup verifies operations after cleanup are safe
func TestSoundManagerOperationsAfterCleanup(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	if err := sm.Initialize(); err != nil {
		t.Logf("Initialization failed (expected in test environment): %v", err)
	}
	sm.Cleanup()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked after cleanup: %v", r)
		}
	}()

	sm.PlayClick()
	sm.StopClick()
	sm.StopTrack()
}
