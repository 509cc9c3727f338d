// Package config loads runtime settings from the environment and the scene file
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/brain-splash/audio"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "BRAIN_SPLASH_"

// Config holds process-level settings; command-line flags override it in main
type Config struct {
	Scene      string `env:"SCENE"`      // Scene YAML path
	Image      string `env:"IMAGE"`      // Brain artwork, generated when empty
	Intro      string `env:"INTRO"`      // Video played after the splash
	Soundtrack string `env:"SOUNDTRACK"` // Audio-only intro used without a video player
	Player     string `env:"PLAYER"`     // Preferred video player binary
	Fullscreen bool   `env:"FULLSCREEN" envDefault:"true"`

	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"16ms"`
	Seed          uint64        `env:"SEED"` // 0 seeds from the clock
	Hint          bool          `env:"HINT" envDefault:"true"`
	Debug         bool          `env:"DEBUG"`

	Audio audio.Config
}

// Load parses BRAIN_SPLASH_* variables over the defaults
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FrameInterval <= 0 {
		return Config{}, fmt.Errorf("frame interval must be positive, got %s", cfg.FrameInterval)
	}
	return cfg, nil
}
