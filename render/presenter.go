package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Presenter copies a canvas and text layer onto a tcell screen
// Each cell shows two vertical pixels: foreground is the top, background the bottom
type Presenter struct {
	screen tcell.Screen

	zoomDuration time.Duration
	zoomStart    time.Time
	zooming      bool

	hint string
}

// NewPresenter creates a presenter for screen with the given zoom-out length
func NewPresenter(screen tcell.Screen, zoomDuration time.Duration) *Presenter {
	return &Presenter{
		screen:       screen,
		zoomDuration: zoomDuration,
	}
}

// SetHint sets the bottom-row hint text, empty disables it
func (p *Presenter) SetHint(s string) {
	p.hint = s
}

// StartZoom begins the zoom-out of the splash at now
func (p *Presenter) StartZoom(now time.Time) {
	if p.zooming {
		return
	}
	p.zooming = true
	p.zoomStart = now
}

// ResetZoom restores the splash to full size
func (p *Presenter) ResetZoom() {
	p.zooming = false
}

// ZoomProgress returns 0 before the zoom and 1 once it completed
func (p *Presenter) ZoomProgress(now time.Time) float64 {
	if !p.zooming {
		return 0
	}
	if p.zoomDuration <= 0 {
		return 1
	}
	t := float64(now.Sub(p.zoomStart)) / float64(p.zoomDuration)
	return min(max(t, 0), 1)
}

// Present draws one frame and flushes the screen
func (p *Presenter) Present(c *Canvas, text *TextLayer, now time.Time) {
	cols, rows := p.screen.Size()
	z := p.ZoomProgress(now)
	// Ease-in: slow start, fast finish
	ez := z * z
	scale := 1 - 0.7*ez
	fade := 1 - ez

	cx, cy := float64(c.Width)/2, float64(c.Height)/2
	sample := func(x, y int) RGB {
		if z == 0 {
			return c.At(x, y)
		}
		sx := int(math.Floor(cx + (float64(x)+0.5-cx)/scale))
		sy := int(math.Floor(cy + (float64(y)+0.5-cy)/scale))
		if !c.In(sx, sy) {
			return RgbBackground
		}
		return Lerp(RgbBackground, c.At(sx, sy), fade)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := RgbBackground
			bottom := RgbBackground
			if x < c.Width {
				if 2*y < c.Height {
					top = sample(x, 2*y)
				}
				if 2*y+1 < c.Height {
					bottom = sample(x, 2*y+1)
				}
			}

			// Text is hidden once the zoom starts
			if z == 0 {
				if tc, ok := text.Cell(x, y); ok {
					if tc.Rune == 0 {
						continue // Right half of a wide rune
					}
					bg := Lerp(top, bottom, 0.5)
					fg := Blend(bg, tc.Fg, tc.Alpha)
					style := tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(bg)).Bold(tc.Bold)
					p.screen.SetContent(x, y, tc.Rune, nil, style)
					continue
				}
			}

			if top == bottom {
				p.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(RGBToTcell(top)))
				continue
			}
			style := tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	if p.hint != "" && z == 0 && rows > 0 {
		p.drawHint(cols, rows-1)
	}
	p.screen.Show()
}

func (p *Presenter) drawHint(cols, row int) {
	style := tcell.StyleDefault.Foreground(RGBToTcell(RgbStatusText)).Background(RGBToTcell(RgbBackground))
	x := 0
	for _, r := range p.hint {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, row, r, nil, style)
		x++
	}
}

// Blank paints the whole screen with the background, used while the splash is hidden
func (p *Presenter) Blank() {
	cols, rows := p.screen.Size()
	style := tcell.StyleDefault.Background(RGBToTcell(RGBBlack))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	p.screen.Show()
}
