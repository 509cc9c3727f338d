package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/vmath"
)

// Controller owns the whole splash state: activation set, reveal, link cursor, phase
// All methods must be called from the single loop goroutine
type Controller struct {
	settings Settings
	stage    Stage
	clock    TimeProvider
	sched    *Scheduler

	phase      Phase
	hotspots   []Hotspot
	order      []int // Activated hotspot indices in activation order
	reveal     Reveal
	links      LinkCursor
	linksArmed bool

	rng     *vmath.FastRand
	ambient *AmbientField // Created on first Resize

	flashAlpha   float64
	mergeAlpha   float64
	mergeVisible bool
	converge     vmath.Vec2

	canvas core.Size
	ref    core.Rect
	refOK  bool

	primed bool
	frames uint64
}

// NewController validates settings and builds an Idle controller
// A nil stage discards collaborator calls, a nil clock uses real time
func NewController(settings Settings, stage Stage, clock TimeProvider, seed uint64) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if stage == nil {
		stage = NopStage{}
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}

	c := &Controller{
		settings: settings,
		stage:    stage,
		clock:    clock,
		sched:    NewScheduler(),
		phase:    PhaseIdle,
		hotspots: NewHotspots(settings.Hotspots),
		order:    make([]int, 0, settings.Required),
		rng:      vmath.NewFastRand(seed),
	}
	return c, nil
}

// Resize records a new canvas extent and reference rectangle
// refOK=false marks the reference as unavailable; positions keep their last values
// Activation state is never touched
func (c *Controller) Resize(canvas core.Size, ref core.Rect, refOK bool) {
	if c.ambient == nil {
		c.ambient = NewAmbientField(c.settings.AmbientCount, c.settings.AmbientSpeed, canvas, c.rng)
	} else {
		c.ambient.SetBounds(canvas)
	}
	c.canvas = canvas
	c.ref = ref
	c.refOK = refOK && !ref.Empty()
	c.resolve()
}

// resolve applies the layout formula unless the hotspots are gathering
func (c *Controller) resolve() {
	if c.phase == PhaseRecombining || !c.refOK {
		return
	}
	ResolvePositions(c.hotspots, c.ref, c.settings.Inset)
}

// OnPointerActivate handles a click at canvas point (x, y), returns true if a hotspot activated
func (c *Controller) OnPointerActivate(x, y float64) bool {
	if !c.primed {
		c.primed = true
		c.stage.Prime()
	}

	if !c.phase.AcceptsInput() {
		return false
	}
	// Bounding box of the reference image, not its silhouette
	if !c.refOK || !c.ref.Contains(x, y) {
		return false
	}

	idx := HitTest(c.hotspots, vmath.Vec2{X: x, Y: y}, c.settings.ClickRadius)
	if idx < 0 {
		return false
	}
	c.activate(idx)

	if c.phase == PhaseIdle {
		c.setPhase(PhaseActivating)
	}
	if len(c.order) == c.settings.Required && !c.linksArmed {
		c.linksArmed = true
		c.links = LinkCursor{}
		c.setPhase(PhaseLinksAnimating)
	}
	return true
}

func (c *Controller) activate(idx int) {
	c.order = append(c.order, idx)
	h := &c.hotspots[idx]
	h.Active = true
	h.Color = c.settings.Palette[(len(c.order)-1)%len(c.settings.Palette)]
	h.Pulse = c.settings.PulseStart
	c.reveal.Target = RevealTarget(len(c.order), c.settings.Required, c.settings.RevealPartial)
	c.stage.PlayClick()
	log.Printf("[splash] hotspot %d %q activated (%d/%d)", idx, h.Label, len(c.order), c.settings.Required)
}

// Tick advances every animated quantity by one frame
// No-op while suspended in MediaPlaying or Done
func (c *Controller) Tick() {
	if c.phase.Suspended() {
		return
	}

	c.sched.Run(c.clock.Now())
	if c.phase.Suspended() {
		return
	}

	if c.phase == PhaseRecombining {
		ConvergePositions(c.hotspots, c.converge, c.settings.ConvergeRate)
	} else {
		c.resolve()
	}

	c.reveal.Step(c.settings.RevealDamping)
	if c.ambient != nil {
		c.ambient.Step()
	}

	if c.phase == PhaseLinksAnimating {
		if c.links.Index < c.settings.Required {
			c.links.Advance(c.settings.LinkStep)
		}
		if c.links.Index >= c.settings.Required {
			c.enterRecombining()
		}
	}

	decayVisuals(c.hotspots, c.settings.PulseDecay, c.settings.LabelFade)

	if c.phase == PhaseRecombining {
		c.flashAlpha = vmath.StepToward(c.flashAlpha, 0, c.settings.FlashDecay)
		c.mergeAlpha = vmath.StepToward(c.mergeAlpha, 1, c.settings.MergeRate)
	}

	c.frames++
}

func (c *Controller) enterRecombining() {
	c.setPhase(PhaseRecombining)
	c.flashAlpha = c.settings.FlashStart
	c.mergeAlpha = 0
	c.mergeVisible = true

	if c.refOK {
		c.converge.X, c.converge.Y = c.ref.Center()
	} else {
		c.converge = c.centroid()
	}
	for i := range c.hotspots {
		c.hotspots[i].Color = c.settings.Theme
	}

	c.after(c.settings.ZoomOutDelay, PhaseRecombining, c.stage.ZoomOut)
	c.after(c.settings.MediaDelay, PhaseRecombining, c.startMedia)
}

func (c *Controller) startMedia() {
	c.stage.HideSplash()
	c.stage.StopClick()
	c.setPhase(PhaseMediaPlaying)
	c.stage.StartMedia()
}

// after schedules fn guarded by the current epoch and the expected phase
func (c *Controller) after(d time.Duration, expect Phase, fn func()) {
	epoch := c.sched.Epoch()
	c.sched.After(c.clock.Now(), d, func() {
		if c.sched.Epoch() != epoch || c.phase != expect {
			log.Printf("[splash] dropped stale transition (phase %s, expected %s)", c.phase, expect)
			return
		}
		fn()
	})
}

func (c *Controller) centroid() vmath.Vec2 {
	var sum vmath.Vec2
	if len(c.hotspots) == 0 {
		return sum
	}
	for _, h := range c.hotspots {
		sum = vmath.V2Add(sum, h.Pos)
	}
	return vmath.V2Scale(sum, 1/float64(len(c.hotspots)))
}

// OnMediaEnded finishes the cycle, ignored unless media is playing
func (c *Controller) OnMediaEnded() {
	if c.phase != PhaseMediaPlaying {
		return
	}
	c.setPhase(PhaseDone)
	c.stage.StopMedia()
	if c.settings.Loop {
		c.Reset()
	}
}

// Reset returns to Idle, clears the cycle state and revokes pending transitions
// Idempotent
func (c *Controller) Reset() {
	c.sched.Bump()

	c.phase = PhaseIdle
	c.hotspots = NewHotspots(c.settings.Hotspots)
	c.order = c.order[:0]
	c.reveal = Reveal{}
	c.links = LinkCursor{}
	c.linksArmed = false
	c.flashAlpha = 0
	c.mergeAlpha = 0
	c.mergeVisible = false
	c.converge = vmath.Vec2{}
	c.resolve()

	c.stage.StopMedia()
	c.stage.StopClick()
	c.stage.ShowSplash()
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	log.Printf("[splash] phase %s -> %s", c.phase, p)
	c.phase = p
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// Suspended reports whether the loop should stop ticking until reset
func (c *Controller) Suspended() bool {
	return c.phase.Suspended()
}

// Order returns a copy of the activation order
func (c *Controller) Order() []int {
	return append([]int(nil), c.order...)
}

// Settings returns the controller configuration
func (c *Controller) Settings() Settings {
	return c.settings
}

// Frames returns the number of ticks processed
func (c *Controller) Frames() uint64 {
	return c.frames
}
