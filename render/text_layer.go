package render

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// TextCell is one terminal cell of text drawn over the pixel canvas
// Wide runes occupy two cells, the second holds Rune 0
type TextCell struct {
	Rune  rune
	Fg    RGB
	Alpha float64
	Bold  bool
	set   bool
}

// TextLayer holds labels in terminal cell coordinates
type TextLayer struct {
	Width  int
	Height int
	cells  []TextCell
}

// NewTextLayer allocates a w×h cell layer
func NewTextLayer(w, h int) *TextLayer {
	t := &TextLayer{}
	t.Resize(w, h)
	return t
}

// Resize reallocates only when the cell count grows, contents are cleared
func (t *TextLayer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	t.Width, t.Height = w, h
	if cap(t.cells) < w*h {
		t.cells = make([]TextCell, w*h)
	}
	t.cells = t.cells[:w*h]
	t.Clear()
}

// Clear removes all text
func (t *TextLayer) Clear() {
	clear(t.cells)
}

// Cell returns the text at (x, y) and whether any is set
func (t *TextLayer) Cell(x, y int) (TextCell, bool) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return TextCell{}, false
	}
	c := t.cells[y*t.Width+x]
	return c, c.set
}

// Put writes one rune, returns the number of cells used
func (t *TextLayer) Put(x, y int, r rune, fg RGB, alpha float64, bold bool) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if y < 0 || y >= t.Height || x < 0 || x+w > t.Width {
		return w
	}
	i := y*t.Width + x
	t.cells[i] = TextCell{Rune: r, Fg: fg, Alpha: alpha, Bold: bold, set: true}
	if w == 2 {
		t.cells[i+1] = TextCell{Fg: fg, Alpha: alpha, Bold: bold, set: true}
	}
	return w
}

// PutString writes s from (x, y), runes falling outside the layer are clipped
func (t *TextLayer) PutString(x, y int, s string, fg RGB, alpha float64, bold bool) {
	for _, r := range s {
		x += t.Put(x, y, r, fg, alpha, bold)
	}
}

// TextAnchor selects which part of a string sits at the anchor column
type TextAnchor int

const (
	AnchorLeft TextAnchor = iota
	AnchorCenter
	AnchorRight
)

// PutAnchored writes s on row y aligned to column ax by display width
func (t *TextLayer) PutAnchored(ax float64, y int, s string, anchor TextAnchor, fg RGB, alpha float64, bold bool) {
	w := float64(runewidth.StringWidth(s))
	var x float64
	switch anchor {
	case AnchorCenter:
		x = ax - w/2
	case AnchorRight:
		x = ax - w
	default:
		x = ax
	}
	t.PutString(int(math.Round(x)), y, s, fg, alpha, bold)
}
