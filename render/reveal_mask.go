package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/brain-splash/core"
)

// RevealMask draws the brain image clipped to a centered circle
// Radius is pct% of the rectangle half-diagonal, matching CSS circle(pct% at 50% 50%)
type RevealMask struct {
	src    image.Image
	scaled *image.RGBA
}

// NewRevealMask wraps a source image, nil draws nothing
func NewRevealMask(src image.Image) *RevealMask {
	return &RevealMask{src: src}
}

// SetImage replaces the source and drops the scaled cache
func (m *RevealMask) SetImage(src image.Image) {
	m.src = src
	m.scaled = nil
}

// RevealRadius returns the clip radius for pct in [0,100] over a w×h box
func RevealRadius(pct, w, h float64) float64 {
	return pct / 100 * math.Hypot(w, h) / math.Sqrt2
}

// scaledTo returns the source resampled to w×h, cached until the size changes
func (m *RevealMask) scaledTo(w, h int) *image.RGBA {
	if m.scaled != nil && m.scaled.Bounds().Dx() == w && m.scaled.Bounds().Dy() == h {
		return m.scaled
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), m.src, m.src.Bounds(), draw.Over, nil)
	m.scaled = dst
	return dst
}

// Draw composites the visible part of the image onto c
func (m *RevealMask) Draw(c *Canvas, rect core.Rect, pct float64) {
	if m.src == nil || pct <= 0 || rect.Empty() {
		return
	}

	x0 := int(math.Floor(rect.X))
	y0 := int(math.Floor(rect.Y))
	w := int(math.Round(rect.Width))
	h := int(math.Round(rect.Height))
	if w <= 0 || h <= 0 {
		return
	}

	img := m.scaledTo(w, h)
	cx, cy := rect.Center()
	r := RevealRadius(pct, rect.Width, rect.Height)
	r2 := r * r

	for py := 0; py < h; py++ {
		y := y0 + py
		dy := float64(y) + 0.5 - cy
		for px := 0; px < w; px++ {
			x := x0 + px
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			p := img.RGBAAt(px, py)
			if p.A == 0 {
				continue
			}
			// RGBA is premultiplied
			a := float64(p.A) / 255
			col := RGB{
				R: clamp(float64(p.R) / a),
				G: clamp(float64(p.G) / a),
				B: clamp(float64(p.B) / a),
			}
			c.Plot(x, y, col, a)
		}
	}
}
