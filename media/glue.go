package media

import (
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/brain-splash/engine"
)

// Sound is the click surface of audio.SoundManager
type Sound interface {
	Initialize() error
	PlayClick()
	StopClick()
}

// Zoomer animates the splash zoom-out, implemented by render.Presenter
type Zoomer interface {
	StartZoom(now time.Time)
	ResetZoom()
}

// Glue implements engine.Stage over the speaker, the players and the presenter
// Stage calls come from the loop goroutine; player end notifications arrive on Ended()
type Glue struct {
	sound   Sound
	players []Player // Tried in order until one starts
	intro   string
	zoomer  Zoomer
	clock   engine.TimeProvider

	ended chan struct{}

	mu      sync.Mutex
	visible bool
	active  Player
	gen     uint64
}

var _ engine.Stage = (*Glue)(nil)

// NewGlue wires the collaborators, nil sound or zoomer are skipped
func NewGlue(sound Sound, players []Player, intro string, zoomer Zoomer, clock engine.TimeProvider) *Glue {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Glue{
		sound:   sound,
		players: players,
		intro:   intro,
		zoomer:  zoomer,
		clock:   clock,
		ended:   make(chan struct{}, 1),
		visible: true,
	}
}

// Ended delivers one value per finished intro, drained by the loop
func (g *Glue) Ended() <-chan struct{} {
	return g.ended
}

// SplashVisible reports whether the loop should draw the splash
func (g *Glue) SplashVisible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.visible
}

// Prime opens the speaker, failure leaves the splash silent
func (g *Glue) Prime() {
	if g.sound == nil {
		return
	}
	if err := g.sound.Initialize(); err != nil {
		log.Printf("[audio] unavailable, continuing silent: %v", err)
	}
}

func (g *Glue) PlayClick() {
	if g.sound != nil {
		g.sound.PlayClick()
	}
}

func (g *Glue) StopClick() {
	if g.sound != nil {
		g.sound.StopClick()
	}
}

func (g *Glue) ZoomOut() {
	if g.zoomer != nil {
		g.zoomer.StartZoom(g.clock.Now())
	}
}

func (g *Glue) HideSplash() {
	g.mu.Lock()
	g.visible = false
	g.mu.Unlock()
}

func (g *Glue) ShowSplash() {
	g.mu.Lock()
	g.visible = true
	g.mu.Unlock()
	if g.zoomer != nil {
		g.zoomer.ResetZoom()
	}
}

// StartMedia tries each player in order, with nothing playable the intro ends at once
func (g *Glue) StartMedia() {
	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	for _, p := range g.players {
		if err := p.Play(g.intro, g.endedFunc(gen)); err != nil {
			log.Printf("[media] %s failed: %v", p.Name(), err)
			continue
		}
		g.mu.Lock()
		g.active = p
		g.mu.Unlock()
		log.Printf("[media] intro playing via %s", p.Name())
		return
	}

	log.Printf("[media] nothing playable, skipping intro")
	g.post()
}

// endedFunc returns the end callback for generation gen
func (g *Glue) endedFunc(gen uint64) func() {
	return func() {
		g.mu.Lock()
		current := gen == g.gen
		g.mu.Unlock()
		if current {
			g.post()
		}
	}
}

// post never blocks, a pending notification already covers this one
func (g *Glue) post() {
	select {
	case g.ended <- struct{}{}:
	default:
	}
}

// StopMedia halts the active player and revokes its end notification
func (g *Glue) StopMedia() {
	g.mu.Lock()
	g.gen++
	p := g.active
	g.active = nil
	g.mu.Unlock()

	if p != nil {
		p.Stop()
	}
	// Drop a notification that raced the stop
	select {
	case <-g.ended:
	default:
	}
}
