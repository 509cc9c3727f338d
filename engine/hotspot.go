package engine

import (
	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/vmath"
)

// Hotspot is one interactive node over the reference image
type Hotspot struct {
	Index  int
	RX, RY float64 // Relative position, immutable after creation
	Pos    vmath.Vec2

	Active     bool
	Color      string
	Label      string
	LabelAlpha float64
	Pulse      float64
}

// NewHotspots creates the registry from the layout
func NewHotspots(specs []HotspotSpec) []Hotspot {
	hs := make([]Hotspot, len(specs))
	for i, s := range specs {
		hs[i] = Hotspot{
			Index: i,
			RX:    s.X,
			RY:    s.Y,
			Label: s.Label,
		}
	}
	return hs
}

// ResolvePositions maps every hotspot onto the inset reference rectangle
func ResolvePositions(hs []Hotspot, ref core.Rect, inset core.Inset) {
	safe := ref.Shrink(inset)
	for i := range hs {
		hs[i].Pos.X, hs[i].Pos.Y = safe.At(hs[i].RX, hs[i].RY)
	}
}

// ConvergePositions eases every hotspot toward target, arrival is asymptotic
func ConvergePositions(hs []Hotspot, target vmath.Vec2, frac float64) {
	for i := range hs {
		hs[i].Pos = vmath.V2Approach(hs[i].Pos, target, frac)
	}
}

// HitTest returns the first inactive hotspot in index order strictly within radius of p, or -1
func HitTest(hs []Hotspot, p vmath.Vec2, radius float64) int {
	for i := range hs {
		if hs[i].Active {
			continue
		}
		if vmath.V2Dist(hs[i].Pos, p) < radius {
			return i
		}
	}
	return -1
}

// decayVisuals advances the per-frame transient values of every hotspot
func decayVisuals(hs []Hotspot, pulseDecay, labelFade float64) {
	for i := range hs {
		h := &hs[i]
		if h.Pulse > 0 {
			h.Pulse = vmath.StepToward(h.Pulse, 0, pulseDecay)
		}
		if h.Active && h.LabelAlpha < 1 {
			h.LabelAlpha = vmath.StepToward(h.LabelAlpha, 1, labelFade)
		}
	}
}
