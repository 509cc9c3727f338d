package engine

import (
	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/vmath"
)

// AmbientPoint is a drifting background dot
type AmbientPoint struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// AmbientField is a fixed-size set of dots bounced at the canvas edges
type AmbientField struct {
	Points []AmbientPoint
	bounds core.Size
}

// NewAmbientField scatters count points over bounds with velocities in [-speed/2, speed/2)
func NewAmbientField(count int, speed float64, bounds core.Size, rng *vmath.FastRand) *AmbientField {
	f := &AmbientField{
		Points: make([]AmbientPoint, count),
		bounds: bounds,
	}
	for i := range f.Points {
		f.Points[i] = AmbientPoint{
			Pos: vmath.Vec2{X: rng.Float64() * bounds.Width, Y: rng.Float64() * bounds.Height},
			Vel: vmath.Vec2{X: (rng.Float64() - 0.5) * speed, Y: (rng.Float64() - 0.5) * speed},
		}
	}
	return f
}

// Step advances every point by its velocity, reflecting off the edges
func (f *AmbientField) Step() {
	w, h := f.bounds.Width, f.bounds.Height
	for i := range f.Points {
		p := &f.Points[i]
		p.Pos = vmath.V2Add(p.Pos, p.Vel)

		if p.Pos.X < 0 {
			p.Pos.X = 0
			p.Vel.X = -p.Vel.X
		} else if p.Pos.X > w {
			p.Pos.X = w
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y < 0 {
			p.Pos.Y = 0
			p.Vel.Y = -p.Vel.Y
		} else if p.Pos.Y > h {
			p.Pos.Y = h
			p.Vel.Y = -p.Vel.Y
		}
	}
}

// SetBounds changes the canvas extent and pulls stray points back inside
func (f *AmbientField) SetBounds(bounds core.Size) {
	f.bounds = bounds
	for i := range f.Points {
		p := &f.Points[i]
		p.Pos.X = vmath.Clamp(p.Pos.X, 0, bounds.Width)
		p.Pos.Y = vmath.Clamp(p.Pos.Y, 0, bounds.Height)
	}
}

// Bounds returns the current canvas extent
func (f *AmbientField) Bounds() core.Size {
	return f.bounds
}
