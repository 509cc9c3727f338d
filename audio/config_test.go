package audio

import "testing"

func TestConfigGain(t *testing.T) {
	tests := []struct {
		name   string
		volume int
		want   float64
	}{
		{"Muted", 0, 0},
		{"Half", 50, 0.5},
		{"Full", 100, 1},
		{"Over range", 250, 1},
		{"Negative", -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{MasterVolume: tt.volume}
			if got := c.Gain(); got != tt.want {
				t.Errorf("Gain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	if v := newVolume(nil, 0); !v.Silent {
		t.Error("Zero gain should be silent")
	}
	if v := newVolume(nil, 1); v.Silent || v.Volume != 0 {
		t.Errorf("Unity gain should be volume 0, got %+v", v)
	}
	if v := newVolume(nil, 0.5); v.Volume != -1 {
		t.Errorf("Half gain should be volume -1, got %v", v.Volume)
	}
}

func TestNewSoundManagerDefaultsRate(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: true})
	if sm.SampleRate() != 48000 {
		t.Errorf("Expected default sample rate 48000, got %d", sm.SampleRate())
	}
}
