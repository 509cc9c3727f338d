package media

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/brain-splash/engine"
)

type fakeSound struct {
	initErr error
	calls   []string
}

func (s *fakeSound) Initialize() error { s.calls = append(s.calls, "init"); return s.initErr }
func (s *fakeSound) PlayClick()        { s.calls = append(s.calls, "click") }
func (s *fakeSound) StopClick()        { s.calls = append(s.calls, "stop") }

type fakePlayer struct {
	name    string
	err     error
	played  []string
	stopped int
	onEnded func()
}

func (p *fakePlayer) Name() string { return p.name }
func (p *fakePlayer) Play(path string, onEnded func()) error {
	if p.err != nil {
		return p.err
	}
	p.played = append(p.played, path)
	p.onEnded = onEnded
	return nil
}
func (p *fakePlayer) Stop() { p.stopped++ }

type fakeZoomer struct {
	started []time.Time
	resets  int
}

func (z *fakeZoomer) StartZoom(now time.Time) { z.started = append(z.started, now) }
func (z *fakeZoomer) ResetZoom()              { z.resets++ }

func pending(g *Glue) bool {
	select {
	case <-g.Ended():
		return true
	default:
		return false
	}
}

func TestGlueFallsThroughPlayers(t *testing.T) {
	broken := &fakePlayer{name: "ffplay", err: errors.New("no display")}
	working := &fakePlayer{name: "soundtrack"}
	g := NewGlue(&fakeSound{}, []Player{broken, working}, "intro.mp4", nil, nil)

	g.StartMedia()
	if len(working.played) != 1 || working.played[0] != "intro.mp4" {
		t.Fatalf("Fallback player not used: %v", working.played)
	}
	if pending(g) {
		t.Fatal("End reported before playback finished")
	}

	working.onEnded()
	if !pending(g) {
		t.Error("Natural end not delivered")
	}
}

func TestGlueNothingPlayableEndsAtOnce(t *testing.T) {
	g := NewGlue(nil, []Player{&fakePlayer{name: "ffplay", err: ErrNoPlayer}}, "", nil, nil)
	g.StartMedia()
	if !pending(g) {
		t.Error("Expected immediate end with no playable media")
	}
}

func TestGlueStopRevokesEnd(t *testing.T) {
	p := &fakePlayer{name: "ffplay"}
	g := NewGlue(nil, []Player{p}, "intro.mp4", nil, nil)

	g.StartMedia()
	stale := p.onEnded
	g.StopMedia()
	if p.stopped != 1 {
		t.Errorf("Expected player stopped once, got %d", p.stopped)
	}

	stale()
	if pending(g) {
		t.Error("End of a stopped playback was delivered")
	}

	// Racing notification posted before the stop is drained
	g.StartMedia()
	p.onEnded()
	g.StopMedia()
	if pending(g) {
		t.Error("Notification that raced StopMedia survived")
	}
}

func TestGlueSplashVisibilityAndZoom(t *testing.T) {
	z := &fakeZoomer{}
	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	g := NewGlue(nil, nil, "", z, clock)

	if !g.SplashVisible() {
		t.Fatal("Splash should start visible")
	}
	g.ZoomOut()
	if len(z.started) != 1 || !z.started[0].Equal(clock.Now()) {
		t.Errorf("Zoom not started at clock time: %v", z.started)
	}
	g.HideSplash()
	if g.SplashVisible() {
		t.Error("HideSplash left the splash visible")
	}
	g.ShowSplash()
	if !g.SplashVisible() || z.resets != 1 {
		t.Errorf("ShowSplash did not restore the splash (resets=%d)", z.resets)
	}
}

func TestGlueSoundForwarding(t *testing.T) {
	s := &fakeSound{initErr: errors.New("no device")}
	g := NewGlue(s, nil, "", nil, nil)

	g.Prime()
	g.PlayClick()
	g.StopClick()

	want := []string{"init", "click", "stop"}
	if len(s.calls) != len(want) {
		t.Fatalf("Calls = %v, want %v", s.calls, want)
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Errorf("Call %d = %s, want %s", i, s.calls[i], want[i])
		}
	}
}
