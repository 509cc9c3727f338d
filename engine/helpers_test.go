package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/brain-splash/core"
)

// recordingStage captures collaborator calls in order
type recordingStage struct {
	calls []string
}

func (s *recordingStage) Prime()      { s.calls = append(s.calls, "Prime") }
func (s *recordingStage) PlayClick()  { s.calls = append(s.calls, "PlayClick") }
func (s *recordingStage) StopClick()  { s.calls = append(s.calls, "StopClick") }
func (s *recordingStage) ZoomOut()    { s.calls = append(s.calls, "ZoomOut") }
func (s *recordingStage) HideSplash() { s.calls = append(s.calls, "HideSplash") }
func (s *recordingStage) ShowSplash() { s.calls = append(s.calls, "ShowSplash") }
func (s *recordingStage) StartMedia() { s.calls = append(s.calls, "StartMedia") }
func (s *recordingStage) StopMedia()  { s.calls = append(s.calls, "StopMedia") }

func (s *recordingStage) count(name string) int {
	n := 0
	for _, c := range s.calls {
		if c == name {
			n++
		}
	}
	return n
}

var (
	testCanvas = core.Size{Width: 200, Height: 120}
	testRef    = core.Rect{X: 50, Y: 20, Width: 100, Height: 80}
)

type fixture struct {
	ctrl  *Controller
	stage *recordingStage
	clock *MockTimeProvider
}

func newFixture(t *testing.T, mutate ...func(*Settings)) *fixture {
	t.Helper()
	settings := DefaultSettings()
	for _, m := range mutate {
		m(&settings)
	}
	stage := &recordingStage{}
	clock := NewMockTimeProvider(time.Unix(1_700_000_000, 0))

	ctrl, err := NewController(settings, stage, clock, 7)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	ctrl.Resize(testCanvas, testRef, true)
	return &fixture{ctrl: ctrl, stage: stage, clock: clock}
}

// clickHotspot clicks the exact center of hotspot idx
func (f *fixture) clickHotspot(idx int) bool {
	h := f.ctrl.Snapshot().Hotspots[idx]
	return f.ctrl.OnPointerActivate(h.Pos.X, h.Pos.Y)
}

func (f *fixture) activateAll(t *testing.T, order ...int) {
	t.Helper()
	for _, idx := range order {
		if !f.clickHotspot(idx) {
			t.Fatalf("Click on hotspot %d did not activate", idx)
		}
	}
}

// tickUntil ticks until the phase is reached, failing after limit frames
func (f *fixture) tickUntil(t *testing.T, phase Phase, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		f.ctrl.Tick()
		if f.ctrl.Phase() == phase {
			return i
		}
	}
	t.Fatalf("Phase %s not reached within %d frames (at %s)", phase, limit, f.ctrl.Phase())
	return 0
}
