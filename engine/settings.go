package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/brain-splash/core"
)

// HotspotSpec is the fixed layout entry of one hotspot
type HotspotSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label"`
}

// Settings holds the tunables of the interaction and animation
// Per-frame rates assume a ~60Hz loop
type Settings struct {
	Hotspots    []HotspotSpec
	Required    int
	ClickRadius float64
	Inset       core.Inset

	Palette []string // Activation colors, indexed by activation order
	Theme   string   // Link and recombination color

	RevealDamping float64 // Fraction of the remaining gap closed per frame
	RevealPartial float64 // Reveal target reached after Required-1 activations

	LinkStep       float64 // Link progress per frame
	LinkCurvature  float64
	LinkResolution int // Samples for a full link, partial links scale with progress

	ConvergeRate float64
	PulseStart   float64
	PulseDecay   float64
	LabelFade    float64

	FlashStart float64
	FlashDecay float64
	MergeRate  float64

	ZoomOutDelay time.Duration // Recombination start to splash zoom-out
	MediaDelay   time.Duration // Recombination start to intro playback

	AmbientCount int
	AmbientSpeed float64

	// Loop resets after the intro ends, otherwise the controller stays Done
	Loop bool
}

// DefaultSettings returns the stock five-node brain layout
func DefaultSettings() Settings {
	return Settings{
		Hotspots: []HotspotSpec{
			{X: 0.35, Y: 0.55, Label: "LLM"},
			{X: 0.50, Y: 0.40, Label: "Gen AI"},
			{X: 0.65, Y: 0.55, Label: "Deep Learning"},
			{X: 0.45, Y: 0.72, Label: "Neural Network"},
			{X: 0.65, Y: 0.72, Label: "Machine Learning"},
		},
		Required:    5,
		ClickRadius: 3,
		Inset:       core.Inset{Top: 0.10, Bottom: 0.16, Left: 0.06, Right: 0.06},

		Palette: []string{"#ff3b3b", "#1ce5ff", "#ffd60a", "#4cd137", "#1e90ff"},
		Theme:   "#ffae00",

		RevealDamping: 0.045,
		RevealPartial: 50,

		LinkStep:       0.035,
		LinkCurvature:  0.25,
		LinkResolution: 50,

		ConvergeRate: 0.1,
		PulseStart:   4,
		PulseDecay:   0.25,
		LabelFade:    0.03,

		FlashStart: 0.5,
		FlashDecay: 0.03,
		MergeRate:  0.025,

		ZoomOutDelay: 2500 * time.Millisecond,
		MediaDelay:   3500 * time.Millisecond,

		AmbientCount: 120,
		AmbientSpeed: 0.3,

		Loop: true,
	}
}

// Validate checks structural constraints the controller relies on
func (s Settings) Validate() error {
	if s.Required < 2 {
		return fmt.Errorf("required activations must be at least 2, got %d", s.Required)
	}
	if s.Required > len(s.Hotspots) {
		return fmt.Errorf("required activations %d exceed hotspot count %d", s.Required, len(s.Hotspots))
	}
	for i, h := range s.Hotspots {
		if h.X < 0 || h.X > 1 || h.Y < 0 || h.Y > 1 {
			return fmt.Errorf("hotspot %d position (%g,%g) outside [0,1]", i, h.X, h.Y)
		}
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	if s.ClickRadius <= 0 {
		return fmt.Errorf("click radius must be positive")
	}
	if s.LinkStep <= 0 || s.LinkStep >= 1 {
		return fmt.Errorf("link step %g outside (0,1)", s.LinkStep)
	}
	if s.RevealDamping <= 0 || s.RevealDamping > 1 {
		return fmt.Errorf("reveal damping %g outside (0,1]", s.RevealDamping)
	}
	if s.ConvergeRate <= 0 || s.ConvergeRate > 1 {
		return fmt.Errorf("converge rate %g outside (0,1]", s.ConvergeRate)
	}
	if s.LinkResolution <= 0 {
		return fmt.Errorf("link resolution must be positive, got %d", s.LinkResolution)
	}
	// Fades and decays only ever move toward their bound
	if s.MergeRate < 0 || s.FlashDecay < 0 || s.PulseDecay < 0 || s.LabelFade < 0 {
		return fmt.Errorf("fade and decay rates must not be negative")
	}
	if s.AmbientCount < 0 {
		return fmt.Errorf("ambient count must not be negative")
	}
	if s.MediaDelay < 0 || s.ZoomOutDelay < 0 {
		return fmt.Errorf("transition delays must not be negative")
	}
	return nil
}
