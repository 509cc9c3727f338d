package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("FrameInterval = %s, want 16ms", cfg.FrameInterval)
	}
	if !cfg.Fullscreen || !cfg.Hint {
		t.Error("Fullscreen and hint should default on")
	}
	if !cfg.Audio.Enabled || cfg.Audio.MasterVolume != 80 || cfg.Audio.SampleRate != 48000 {
		t.Errorf("Audio defaults wrong: %+v", cfg.Audio)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BRAIN_SPLASH_IMAGE", "/tmp/brain.png")
	t.Setenv("BRAIN_SPLASH_INTRO", "/tmp/intro.mp4")
	t.Setenv("BRAIN_SPLASH_PLAYER", "mpv")
	t.Setenv("BRAIN_SPLASH_SEED", "42")
	t.Setenv("BRAIN_SPLASH_FRAME_INTERVAL", "33ms")
	t.Setenv("BRAIN_SPLASH_AUDIO_ENABLED", "false")
	t.Setenv("BRAIN_SPLASH_MASTER_VOLUME", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Image != "/tmp/brain.png" || cfg.Intro != "/tmp/intro.mp4" || cfg.Player != "mpv" {
		t.Errorf("Paths not read: %+v", cfg)
	}
	if cfg.Seed != 42 || cfg.FrameInterval != 33*time.Millisecond {
		t.Errorf("Seed/interval not read: %d %s", cfg.Seed, cfg.FrameInterval)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 25 {
		t.Errorf("Nested audio config not read: %+v", cfg.Audio)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"Bad volume", "BRAIN_SPLASH_MASTER_VOLUME", "loud", "parse env:"},
		{"Bad duration", "BRAIN_SPLASH_FRAME_INTERVAL", "fast", "parse env:"},
		{"Zero interval", "BRAIN_SPLASH_FRAME_INTERVAL", "0s", "frame interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
