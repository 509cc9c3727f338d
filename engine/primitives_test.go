package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/vmath"
)

func TestRevealTarget(t *testing.T) {
	tests := []struct {
		count    int
		expected float64
	}{
		{0, 0},
		{1, 12.5},
		{2, 25},
		{3, 37.5},
		{4, 50},
		{5, 100},
	}
	for _, tt := range tests {
		if got := RevealTarget(tt.count, 5, 50); got != tt.expected {
			t.Errorf("RevealTarget(%d) = %v, want %v", tt.count, got, tt.expected)
		}
	}
}

func TestRevealStepLagsTarget(t *testing.T) {
	r := Reveal{Target: 100}
	r.Step(0.045)
	if math.Abs(r.Current-4.5) > 1e-9 {
		t.Errorf("Expected first step to 4.5, got %v", r.Current)
	}
	for i := 0; i < 1000; i++ {
		r.Step(0.045)
		if r.Current > r.Target {
			t.Fatalf("Reveal overshot target: %v", r.Current)
		}
	}
}

func TestLinkCursorAdvance(t *testing.T) {
	var l LinkCursor
	frames := 0
	for l.Index == 0 {
		l.Advance(0.035)
		frames++
		if l.Progress < 0 || l.Progress >= 1 {
			t.Fatalf("Progress out of [0,1): %v", l.Progress)
		}
	}
	if frames != 29 {
		t.Errorf("Expected 29 frames per link, got %d", frames)
	}
	if l.Progress != 0 {
		t.Errorf("Expected progress reset to 0, got %v", l.Progress)
	}
}

func TestLinkPairWraps(t *testing.T) {
	tests := []struct {
		i        int
		from, to int
	}{
		{0, 0, 1},
		{3, 3, 4},
		{4, 4, 0},
	}
	for _, tt := range tests {
		a, b := LinkPair(tt.i, 5)
		if a != tt.from || b != tt.to {
			t.Errorf("LinkPair(%d) = (%d,%d), want (%d,%d)", tt.i, a, b, tt.from, tt.to)
		}
	}
}

func TestResolvePositions(t *testing.T) {
	hs := NewHotspots([]HotspotSpec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}})
	ref := core.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	inset := core.Inset{Top: 0.10, Bottom: 0.20, Left: 0.05, Right: 0.05}

	ResolvePositions(hs, ref, inset)

	if hs[0].Pos != (vmath.Vec2{X: 5, Y: 10}) {
		t.Errorf("Expected top-left at (5,10), got %v", hs[0].Pos)
	}
	if hs[1].Pos != (vmath.Vec2{X: 95, Y: 80}) {
		t.Errorf("Expected bottom-right at (95,80), got %v", hs[1].Pos)
	}
	if hs[2].Pos != (vmath.Vec2{X: 50, Y: 45}) {
		t.Errorf("Expected center at (50,45), got %v", hs[2].Pos)
	}
}

func TestHitTestFirstMatchWins(t *testing.T) {
	hs := []Hotspot{
		{Index: 0, Pos: vmath.Vec2{X: 10, Y: 10}},
		{Index: 1, Pos: vmath.Vec2{X: 11, Y: 10}},
		{Index: 2, Pos: vmath.Vec2{X: 40, Y: 40}},
	}
	p := vmath.Vec2{X: 10.6, Y: 10}

	if got := HitTest(hs, p, 3); got != 0 {
		t.Errorf("Expected first match 0, got %d", got)
	}
	hs[0].Active = true
	if got := HitTest(hs, p, 3); got != 1 {
		t.Errorf("Expected next inactive match 1, got %d", got)
	}
	if got := HitTest(hs, vmath.Vec2{X: 25, Y: 25}, 3); got != -1 {
		t.Errorf("Expected miss, got %d", got)
	}
	// Threshold is strict
	if got := HitTest(hs, vmath.Vec2{X: 43, Y: 40}, 3); got != -1 {
		t.Errorf("Expected miss at exactly the radius, got %d", got)
	}
}

func TestConvergePositions(t *testing.T) {
	hs := []Hotspot{{Pos: vmath.Vec2{X: 0, Y: 0}}, {Pos: vmath.Vec2{X: 100, Y: 50}}}
	target := vmath.Vec2{X: 50, Y: 50}
	for i := 0; i < 200; i++ {
		ConvergePositions(hs, target, 0.1)
	}
	for i, h := range hs {
		if vmath.V2Dist(h.Pos, target) > 0.01 {
			t.Errorf("Hotspot %d did not converge: %v", i, h.Pos)
		}
	}
}

func TestAmbientFieldStaysInBounds(t *testing.T) {
	bounds := core.Size{Width: 40, Height: 20}
	f := NewAmbientField(120, 3, bounds, vmath.NewFastRand(99))
	for step := 0; step < 5000; step++ {
		f.Step()
		for i, p := range f.Points {
			if p.Pos.X < 0 || p.Pos.X > bounds.Width || p.Pos.Y < 0 || p.Pos.Y > bounds.Height {
				t.Fatalf("Point %d escaped at step %d: %v", i, step, p.Pos)
			}
		}
	}
}

func TestAmbientFieldSetBoundsClamps(t *testing.T) {
	f := NewAmbientField(50, 0.3, core.Size{Width: 100, Height: 100}, vmath.NewFastRand(3))
	small := core.Size{Width: 10, Height: 5}
	f.SetBounds(small)
	for i, p := range f.Points {
		if p.Pos.X > small.Width || p.Pos.Y > small.Height {
			t.Errorf("Point %d not clamped: %v", i, p.Pos)
		}
	}
}

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(0, 0)
	var got []string

	s.After(now, 200*time.Millisecond, func() { got = append(got, "b") })
	s.After(now, 100*time.Millisecond, func() { got = append(got, "a") })
	s.After(now, 100*time.Millisecond, func() { got = append(got, "a2") })

	if ran := s.Run(now.Add(50 * time.Millisecond)); ran != 0 {
		t.Errorf("Expected nothing due, ran %d", ran)
	}
	if ran := s.Run(now.Add(time.Second)); ran != 3 {
		t.Errorf("Expected 3 callbacks, ran %d", ran)
	}
	want := []string{"a", "a2", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Pending())
	}
}

func TestSchedulerBumpRevokesPending(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(0, 0)
	fired := false

	s.After(now, time.Second, func() { fired = true })
	s.Bump()
	s.Run(now.Add(2 * time.Second))

	if fired {
		t.Error("Stale callback fired after Bump")
	}
	if s.Stale() != 1 {
		t.Errorf("Expected 1 stale callback, got %d", s.Stale())
	}
}

func TestSchedulerBumpInsideBatch(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(0, 0)
	second := false

	s.After(now, time.Millisecond, func() { s.Bump() })
	s.After(now, 2*time.Millisecond, func() { second = true })
	s.Run(now.Add(time.Second))

	if second {
		t.Error("Callback ran after an earlier callback in the batch bumped the epoch")
	}
}

func TestSchedulerNestedScheduleWaits(t *testing.T) {
	s := NewScheduler()
	now := time.Unix(0, 0)
	nested := false

	s.After(now, 0, func() {
		s.After(now, 0, func() { nested = true })
	})
	s.Run(now)
	if nested {
		t.Error("Nested callback ran in the same Run")
	}
	s.Run(now)
	if !nested {
		t.Error("Nested callback did not run on the next Run")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"Defaults", func(s *Settings) {}, false},
		{"Required exceeds hotspots", func(s *Settings) { s.Required = 6 }, true},
		{"Required below two", func(s *Settings) { s.Required = 1 }, true},
		{"Empty palette", func(s *Settings) { s.Palette = nil }, true},
		{"Hotspot outside unit square", func(s *Settings) { s.Hotspots[0].X = 1.5 }, true},
		{"Zero click radius", func(s *Settings) { s.ClickRadius = 0 }, true},
		{"Link step of one", func(s *Settings) { s.LinkStep = 1 }, true},
		{"Zero link resolution", func(s *Settings) { s.LinkResolution = 0 }, true},
		{"Negative merge rate", func(s *Settings) { s.MergeRate = -0.025 }, true},
		{"Negative flash decay", func(s *Settings) { s.FlashDecay = -0.03 }, true},
		{"Negative pulse decay", func(s *Settings) { s.PulseDecay = -0.25 }, true},
		{"Negative label fade", func(s *Settings) { s.LabelFade = -0.03 }, true},
		{"Zero merge rate", func(s *Settings) { s.MergeRate = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRecombining.String() != "recombining" {
		t.Errorf("Unexpected name %q", PhaseRecombining.String())
	}
	if Phase(42).String() != "unknown" {
		t.Errorf("Expected unknown for out-of-range phase")
	}
}
