package render

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed splash colors
var (
	RgbBackground = RGB{8, 8, 14}     // Near-black splash backdrop
	RgbNodeIdle   = RGB{255, 59, 59}  // Core of a hotspot not yet activated
	RgbNodeRing   = RGB{0, 0, 0}      // Ring of a hotspot not yet activated
	RgbAmbient    = RGB{255, 0, 0}    // Ambient dots
	RgbFlash      = RGB{255, 0, 0}    // Recombination flash overlay
	RgbFallback   = RGB{255, 174, 0}  // Used when a configured color fails to parse
	RgbStatusText = RGB{120, 120, 130} // Hint line
)

// ParseHex converts a CSS hex color ("#rgb" or "#rrggbb") to RGB
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}, nil
}

// Palette caches parsed hex colors, unparseable entries resolve to RgbFallback
type Palette struct {
	mu    sync.Mutex
	cache map[string]RGB
}

// NewPalette creates an empty color cache
func NewPalette() *Palette {
	return &Palette{cache: make(map[string]RGB)}
}

// Resolve returns the RGB of a hex string, parsing it once
func (p *Palette) Resolve(hex string) RGB {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.cache[hex]; ok {
		return c
	}
	c, err := ParseHex(hex)
	if err != nil {
		c = RgbFallback
	}
	p.cache[hex] = c
	return c
}

// Glow brightens c toward white in Luv space, t in [0,1]
func Glow(c RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	base := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := base.BlendLuv(white, min(t, 1)).Clamped().RGB255()
	return RGB{r, g, b}
}
