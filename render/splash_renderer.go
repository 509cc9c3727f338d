package render

import (
	"image"
	"math"

	"github.com/lixenwraith/brain-splash/engine"
	"github.com/lixenwraith/brain-splash/vmath"
)

// Options sizes the splash primitives in canvas pixels
// A terminal cell is one pixel wide and two pixels tall
type Options struct {
	RingRadius       float64 // Ring around a hotspot not yet activated
	ActiveRingRadius float64 // Ring around an activated hotspot before pulse
	PulseScale       float64 // Ring growth per unit of pulse
	RingWidth        float64
	CoreRadius       float64
	AmbientRadius    float64
	AmbientAlpha     float64
	HeadRadius       float64 // Glowing head of the animating link
	HeadGlow         float64 // Halo radius around the head
	LabelOffset      float64 // Label distance outward from the canvas center
	MergeText        string
	MergeHeight      float64 // Merge glyph height as a fraction of the reference height
}

// DefaultOptions returns sizes tuned for an 80×24 or larger terminal
func DefaultOptions() Options {
	return Options{
		RingRadius:       2.2,
		ActiveRingRadius: 2.6,
		PulseScale:       0.5,
		RingWidth:        1,
		CoreRadius:       1,
		AmbientRadius:    0.5,
		AmbientAlpha:     0.45,
		HeadRadius:       1,
		HeadGlow:         4,
		LabelOffset:      5,
		MergeText:        "AI",
		MergeHeight:      0.3,
	}
}

// SplashRenderer draws a controller frame onto a pixel canvas and a text layer
type SplashRenderer struct {
	opts    Options
	palette *Palette
	mask    *RevealMask
	canvas  *Canvas
	text    *TextLayer
	pts     []vmath.Vec2 // Reused polyline buffer
}

// NewSplashRenderer creates a renderer revealing img, nil img skips the reveal layer
func NewSplashRenderer(img image.Image, opts Options) *SplashRenderer {
	return &SplashRenderer{
		opts:    opts,
		palette: NewPalette(),
		mask:    NewRevealMask(img),
		canvas:  NewCanvas(0, 0),
		text:    NewTextLayer(0, 0),
	}
}

// Canvas returns the pixel layer of the last drawn frame
func (r *SplashRenderer) Canvas() *Canvas {
	return r.canvas
}

// Text returns the text layer of the last drawn frame
func (r *SplashRenderer) Text() *TextLayer {
	return r.text
}

// Draw clears both layers and paints f
func (r *SplashRenderer) Draw(f *engine.Frame) {
	w, h := int(f.Canvas.Width), int(f.Canvas.Height)
	r.canvas.Resize(w, h)
	r.text.Resize(w, (h+1)/2)
	r.canvas.Clear(RgbBackground)

	theme := r.palette.Resolve(f.Theme)

	if f.ReferenceOK {
		r.mask.Draw(r.canvas, f.Reference, f.Reveal.Current)
	}
	r.drawAmbient(f)
	if f.ShowLinks {
		r.drawLinks(f, theme)
	}
	r.drawHotspots(f, theme)
	r.drawMerge(f, theme)
}

func (r *SplashRenderer) drawAmbient(f *engine.Frame) {
	for _, p := range f.Ambient {
		r.canvas.FillCircle(p.Pos.X, p.Pos.Y, r.opts.AmbientRadius, RgbAmbient, r.opts.AmbientAlpha)
	}
}

func (r *SplashRenderer) drawLinks(f *engine.Frame, theme RGB) {
	for _, seg := range f.LinkSegments() {
		r.pts = seg.Points(r.pts[:0])
		r.canvas.Polyline(r.pts, theme, 1)
		if seg.Head {
			head := seg.HeadPoint()
			r.canvas.GlowCircle(head.X, head.Y, r.opts.HeadGlow, theme, 0.6)
			r.canvas.FillCircle(head.X, head.Y, r.opts.HeadRadius, Glow(theme, 0.4), 1)
		}
	}
}

func (r *SplashRenderer) drawHotspots(f *engine.Frame, theme RGB) {
	cx, cy := float64(f.Canvas.Width)/2, float64(f.Canvas.Height)/2
	labels := f.ActiveLabels()

	for _, h := range f.Hotspots {
		if !h.Active {
			r.canvas.StrokeCircle(h.Pos.X, h.Pos.Y, r.opts.RingRadius, r.opts.RingWidth, RgbNodeRing, 1)
			r.canvas.FillCircle(h.Pos.X, h.Pos.Y, r.opts.CoreRadius, RgbNodeIdle, 1)
			continue
		}

		col := r.palette.Resolve(h.Color)
		ring := r.opts.ActiveRingRadius + h.Pulse*r.opts.PulseScale
		r.canvas.StrokeCircle(h.Pos.X, h.Pos.Y, ring, r.opts.RingWidth, col, 1)
		r.canvas.FillCircle(h.Pos.X, h.Pos.Y, r.opts.CoreRadius, col, 1)

		if labels && h.LabelAlpha > 0 {
			r.drawLabel(h, cx, cy, theme)
		}
	}
}

// drawLabel places the label outward from the canvas center, growing away from it
func (r *SplashRenderer) drawLabel(h engine.Hotspot, cx, cy float64, theme RGB) {
	dir := vmath.V2Normalize(vmath.Vec2{X: h.Pos.X - cx, Y: h.Pos.Y - cy})
	if dir == (vmath.Vec2{}) {
		dir.Y = -1
	}
	at := vmath.V2Add(h.Pos, vmath.V2Scale(dir, r.opts.LabelOffset))

	anchor := AnchorCenter
	switch {
	case dir.X > 0.3:
		anchor = AnchorLeft
	case dir.X < -0.3:
		anchor = AnchorRight
	}
	row := int(math.Floor(at.Y / 2))
	r.text.PutAnchored(at.X, row, h.Label, anchor, theme, h.LabelAlpha, true)
}

func (r *SplashRenderer) drawMerge(f *engine.Frame, theme RGB) {
	if f.FlashAlpha > 0 {
		r.canvas.Fill(RgbFlash, f.FlashAlpha)
	}
	if !f.MergeVisible || f.MergeAlpha <= 0 {
		return
	}

	cx, cy := float64(f.Canvas.Width)/2, float64(f.Canvas.Height)/2
	refH := float64(f.Canvas.Height) / 2
	if f.ReferenceOK {
		cx, cy = f.Reference.Center()
		refH = f.Reference.Height
	}

	scale := max(math.Floor(refH*r.opts.MergeHeight/glyphH), 1)
	if DrawBlockText(r.canvas, r.opts.MergeText, cx, cy, scale, theme, f.MergeAlpha) {
		return
	}
	// Runes outside the block font fall back to a plain text label
	r.text.PutAnchored(cx, int(math.Floor(cy/2)), r.opts.MergeText, AnchorCenter, theme, f.MergeAlpha, true)
}
