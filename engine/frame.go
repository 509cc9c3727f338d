package engine

import (
	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/vmath"
)

// Frame is a read-only copy of the controller state consumed by renderers
type Frame struct {
	Phase       Phase
	Canvas      core.Size
	Reference   core.Rect
	ReferenceOK bool

	Hotspots []Hotspot
	Order    []int
	Required int
	Reveal   Reveal
	Links    LinkCursor
	Ambient  []AmbientPoint

	ShowLinks      bool
	LinkCurvature  float64
	LinkResolution int

	FlashAlpha   float64
	MergeAlpha   float64
	MergeVisible bool
	Theme        string
}

// Snapshot copies the state needed to draw one frame
func (c *Controller) Snapshot() Frame {
	f := Frame{
		Phase:       c.phase,
		Canvas:      c.canvas,
		Reference:   c.ref,
		ReferenceOK: c.refOK,

		Hotspots: append([]Hotspot(nil), c.hotspots...),
		Order:    append([]int(nil), c.order...),
		Required: c.settings.Required,
		Reveal:   c.reveal,
		Links:    c.links,

		ShowLinks:      c.linksArmed,
		LinkCurvature:  c.settings.LinkCurvature,
		LinkResolution: c.settings.LinkResolution,

		FlashAlpha:   c.flashAlpha,
		MergeAlpha:   c.mergeAlpha,
		MergeVisible: c.mergeVisible,
		Theme:        c.settings.Theme,
	}
	if c.ambient != nil {
		f.Ambient = append([]AmbientPoint(nil), c.ambient.Points...)
	}
	return f
}

// LinkSegments returns completed links followed by the animating one, in activation order
func (f *Frame) LinkSegments() []LinkSegment {
	if !f.ShowLinks || len(f.Order) < f.Required {
		return nil
	}

	nodes := make([]vmath.Vec2, f.Required)
	for i := 0; i < f.Required; i++ {
		nodes[i] = f.Hotspots[f.Order[i]].Pos
	}

	segs := make([]LinkSegment, 0, f.Required)
	for i := 0; i < f.Links.Index && i < f.Required; i++ {
		a, b := LinkPair(i, f.Required)
		segs = append(segs, LinkSegment{
			From:  nodes[a],
			Ctrl:  vmath.ControlPoint(nodes[a], nodes[b], f.LinkCurvature),
			To:    nodes[b],
			End:   1,
			Steps: f.LinkResolution,
		})
	}

	if f.Links.Index < f.Required {
		a, b := LinkPair(f.Links.Index, f.Required)
		segs = append(segs, LinkSegment{
			From:  nodes[a],
			Ctrl:  vmath.ControlPoint(nodes[a], nodes[b], f.LinkCurvature),
			To:    nodes[b],
			End:   f.Links.Progress,
			Steps: vmath.PartialSteps(f.Links.Progress, f.LinkResolution),
			Head:  true,
		})
	}
	return segs
}

// ActiveLabels reports whether activation labels are drawn this frame
func (f *Frame) ActiveLabels() bool {
	return !f.MergeVisible
}
