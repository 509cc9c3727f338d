package engine

import "github.com/lixenwraith/brain-splash/vmath"

// Reveal drives the circular mask over the reference image, both values in [0,100]
type Reveal struct {
	Current float64
	Target  float64
}

// RevealTarget is 0 with no activations, scales linearly to partial through required-1, then jumps to 100
func RevealTarget(count, required int, partial float64) float64 {
	switch {
	case count <= 0:
		return 0
	case count < required:
		return (float64(count) / float64(required-1)) * partial
	default:
		return 100
	}
}

// Step eases Current toward Target, the visible mask lags asymptotically
func (r *Reveal) Step(damping float64) {
	r.Current = vmath.Approach(r.Current, r.Target, damping)
}
