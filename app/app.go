// Package app runs the splash: terminal input, frame loop and intro handoff
package app

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/engine"
	"github.com/lixenwraith/brain-splash/media"
	"github.com/lixenwraith/brain-splash/render"
)

const (
	defaultFill  = 0.7
	eventBacklog = 100
	hintText     = " click the nodes · r reset · q quit"
)

// Options tunes the loop
type Options struct {
	FrameInterval time.Duration
	Fill          float64 // Share of the canvas the brain may occupy
	Hint          bool
}

// App owns the loop goroutine; the controller is never touched from anywhere else
type App struct {
	screen    tcell.Screen
	ctrl      *engine.Controller
	renderer  *render.SplashRenderer
	presenter *render.Presenter
	glue      *media.Glue
	clock     engine.TimeProvider
	aspect    float64
	opts      Options

	events  chan tcell.Event
	buttons tcell.ButtonMask // Last seen mouse state, for press edges
	blanked bool

	crash func(any) // Receives panics from the poller and the loop
}

// New assembles an app over an initialized screen
func New(screen tcell.Screen, ctrl *engine.Controller, renderer *render.SplashRenderer, presenter *render.Presenter,
	glue *media.Glue, clock engine.TimeProvider, aspect float64, opts Options) *App {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 16 * time.Millisecond
	}
	if opts.Fill <= 0 || opts.Fill > 1 {
		opts.Fill = defaultFill
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Hint {
		presenter.SetHint(hintText)
	}
	return &App{
		screen:    screen,
		ctrl:      ctrl,
		renderer:  renderer,
		presenter: presenter,
		glue:      glue,
		clock:     clock,
		aspect:    aspect,
		opts:      opts,
		events:    make(chan tcell.Event, eventBacklog),
		crash:     core.HandleCrash,
	}
}

// Run polls input and drives frames until quit, ctx cancellation or the end of a non-looping intro
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(core.Guard(a.crash, func() error {
		return a.poll(done)
	}))
	g.Go(core.Guard(a.crash, func() error {
		defer func() {
			close(done)
			// Unblock PollEvent
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return a.loop(ctx)
	}))

	return g.Wait()
}

// poll forwards terminal events until done closes
func (a *App) poll(done <-chan struct{}) error {
	for {
		select {
		case <-done:
			return nil
		default:
		}

		ev := a.screen.PollEvent()
		if ev == nil {
			return nil // Screen finalized
		}
		select {
		case a.events <- ev:
		case <-done:
			return nil
		}
	}
}

func (a *App) loop(ctx context.Context) error {
	ticker := time.NewTicker(a.opts.FrameInterval)
	defer ticker.Stop()

	a.resize()
	a.frame()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-a.events:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-a.glue.Ended():
			a.ctrl.OnMediaEnded()
			if a.ctrl.Phase() == engine.PhaseDone {
				log.Printf("[splash] intro finished, exiting")
				return nil
			}

		case <-ticker.C:
			a.frame()
		}
	}
}

// frame advances the controller and draws unless the splash is hidden or parked
func (a *App) frame() {
	a.ctrl.Tick()

	if a.ctrl.Suspended() || !a.glue.SplashVisible() {
		if !a.blanked {
			a.presenter.Blank()
			a.blanked = true
		}
		return
	}
	a.blanked = false

	f := a.ctrl.Snapshot()
	a.renderer.Draw(&f)
	a.presenter.Present(a.renderer.Canvas(), a.renderer.Text(), a.clock.Now())
}

// handleEvent returns false when the app should quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			a.ctrl.Reset()
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		// Press edge of the primary button only, drags and the right button never click
		pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = buttons
		if pressed {
			x, y := CellToCanvas(ev.Position())
			a.ctrl.OnPointerActivate(x, y)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	canvas := core.Size{Width: float64(cols), Height: float64(rows * 2)}
	ref, ok := Layout(canvas, a.aspect, a.opts.Fill)
	a.ctrl.Resize(canvas, ref, ok)
}
