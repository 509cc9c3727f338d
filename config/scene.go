package config

import (
	"time"

	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/engine"
)

// Scene is the YAML description of layout, colors and animation rates
type Scene struct {
	Required    int                  `yaml:"required"`
	ClickRadius float64              `yaml:"click_radius"`
	Inset       core.Inset           `yaml:"inset"`
	Hotspots    []engine.HotspotSpec `yaml:"hotspots"`

	Palette []string `yaml:"palette"`
	Theme   string   `yaml:"theme"`

	Reveal struct {
		Damping float64 `yaml:"damping"`
		Partial float64 `yaml:"partial"`
	} `yaml:"reveal"`

	Links struct {
		Step       float64 `yaml:"step"`
		Curvature  float64 `yaml:"curvature"`
		Resolution int     `yaml:"resolution"`
	} `yaml:"links"`

	Nodes struct {
		PulseStart float64 `yaml:"pulse_start"`
		PulseDecay float64 `yaml:"pulse_decay"`
		LabelFade  float64 `yaml:"label_fade"`
	} `yaml:"nodes"`

	Recombine struct {
		ConvergeRate float64       `yaml:"converge_rate"`
		FlashStart   float64       `yaml:"flash_start"`
		FlashDecay   float64       `yaml:"flash_decay"`
		MergeRate    float64       `yaml:"merge_rate"`
		MergeText    string        `yaml:"merge_text"`
		ZoomOutDelay time.Duration `yaml:"zoom_out_delay"`
		MediaDelay   time.Duration `yaml:"media_delay"`
		ZoomDuration time.Duration `yaml:"zoom_duration"`
	} `yaml:"recombine"`

	Ambient struct {
		Count int     `yaml:"count"`
		Speed float64 `yaml:"speed"`
	} `yaml:"ambient"`

	Loop bool `yaml:"loop"`
}

// Settings converts the scene into controller settings
func (s *Scene) Settings() engine.Settings {
	return engine.Settings{
		Hotspots:    append([]engine.HotspotSpec(nil), s.Hotspots...),
		Required:    s.Required,
		ClickRadius: s.ClickRadius,
		Inset:       s.Inset,

		Palette: append([]string(nil), s.Palette...),
		Theme:   s.Theme,

		RevealDamping: s.Reveal.Damping,
		RevealPartial: s.Reveal.Partial,

		LinkStep:       s.Links.Step,
		LinkCurvature:  s.Links.Curvature,
		LinkResolution: s.Links.Resolution,

		ConvergeRate: s.Recombine.ConvergeRate,
		PulseStart:   s.Nodes.PulseStart,
		PulseDecay:   s.Nodes.PulseDecay,
		LabelFade:    s.Nodes.LabelFade,

		FlashStart: s.Recombine.FlashStart,
		FlashDecay: s.Recombine.FlashDecay,
		MergeRate:  s.Recombine.MergeRate,

		ZoomOutDelay: s.Recombine.ZoomOutDelay,
		MediaDelay:   s.Recombine.MediaDelay,

		AmbientCount: s.Ambient.Count,
		AmbientSpeed: s.Ambient.Speed,

		Loop: s.Loop,
	}
}
