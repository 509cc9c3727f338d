package engine

import "github.com/lixenwraith/brain-splash/vmath"

// LinkCursor tracks the curve currently being drawn between consecutive activations
// Index only increases within a cycle, Progress stays in [0,1)
type LinkCursor struct {
	Index    int
	Progress float64
}

// Advance moves the cursor by step, returns true when a link completes
func (l *LinkCursor) Advance(step float64) bool {
	l.Progress += step
	if l.Progress >= 1 {
		l.Progress = 0
		l.Index++
		return true
	}
	return false
}

// LinkPair returns the activation ordinals joined by link i, the last wraps to the first
func LinkPair(i, required int) (int, int) {
	if i == required-1 {
		return i, 0
	}
	return i, i + 1
}

// LinkSegment is one curve ready to stroke
type LinkSegment struct {
	From, Ctrl, To vmath.Vec2
	End            float64 // 1 for completed links, progress for the animating one
	Steps          int
	Head           bool // Draw the glowing head at End
}

// HeadPoint returns the curve point at End
func (s LinkSegment) HeadPoint() vmath.Vec2 {
	return vmath.QuadBezierPoint(s.End, s.From, s.Ctrl, s.To)
}

// Points samples the segment from t=0 to End
func (s LinkSegment) Points(dst []vmath.Vec2) []vmath.Vec2 {
	return vmath.SampleQuad(dst, s.From, s.Ctrl, s.To, s.End, s.Steps)
}
