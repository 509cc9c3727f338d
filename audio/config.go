package audio

// Config holds audio settings, parsed from BRAIN_SPLASH_* variables by the config package
type Config struct {
	Enabled      bool `env:"AUDIO_ENABLED" envDefault:"true"`
	MasterVolume int  `env:"MASTER_VOLUME" envDefault:"80"` // Percent, 0-100
	SampleRate   int  `env:"SAMPLE_RATE" envDefault:"48000"`
}

// DefaultConfig returns the settings used when the environment is empty
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 80,
		SampleRate:   48000,
	}
}

// Gain returns the master volume as a linear factor clamped to [0,1]
func (c Config) Gain() float64 {
	v := float64(c.MasterVolume) / 100.0
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
