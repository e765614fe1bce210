// Package label projects 3D anchor points to overlay pixel coordinates and
// keeps an overlay sink in sync with them.
package label

import (
	"github.com/Faultbox/solidnet/internal/shape"
	"github.com/Faultbox/solidnet/pkg/math"
)

// HideAbove is the progress beyond which labels are never shown.
const HideAbove = 0.5

// Sink receives label elements. Implementations draw them over the 3D view.
type Sink interface {
	CreateLabel(id, text string)
	SetLabel(id string, pos math.Vec2, visible bool)
	RemoveLabel(id string)
}

// ScreenPosition is a projected anchor in pixels from the top-left corner.
type ScreenPosition struct {
	ID      string
	Pos     math.Vec2
	Visible bool
}

// Visible reports whether labels may be shown: info must be on, the solid
// must be folding (or folded), and progress must be below HideAbove.
func Visible(showInfo bool, target, progress float64) bool {
	return showInfo && target == 0 && progress < HideAbove
}

// Project maps anchors through viewProj to pixels. Anchors behind the camera
// or past the far plane are marked not visible.
func Project(anchors []shape.Anchor, p shape.Params, offset math.Vec3, viewProj math.Mat4, width, height int) []ScreenPosition {
	out := make([]ScreenPosition, len(anchors))
	for i, a := range anchors {
		ndc, w := viewProj.Project(a.At(p).Add(offset))
		out[i] = ScreenPosition{
			ID: a.ID,
			Pos: math.Vec2{
				X: (ndc.X*0.5+0.5)*float32(width) + a.Offset.X,
				Y: (-ndc.Y*0.5+0.5)*float32(height) + a.Offset.Y,
			},
			Visible: w > 0 && ndc.Z <= 1,
		}
	}
	return out
}

// Projector owns the overlay labels of one session.
type Projector struct {
	sink    Sink
	anchors []shape.Anchor
	created bool
}

// NewProjector binds anchors to a sink. A nil sink makes every call a no-op.
func NewProjector(sink Sink, anchors []shape.Anchor) *Projector {
	return &Projector{sink: sink, anchors: anchors}
}

// Attach creates one overlay label per anchor, initially hidden.
func (p *Projector) Attach() {
	if p.sink == nil || p.created {
		return
	}
	for _, a := range p.anchors {
		p.sink.CreateLabel(a.ID, a.Text)
		p.sink.SetLabel(a.ID, math.Vec2{}, false)
	}
	p.created = true
}

// Update pushes positions for the current frame. When visible is false the
// labels are hidden without projecting.
func (p *Projector) Update(visible bool, params shape.Params, offset math.Vec3, viewProj math.Mat4, width, height int) {
	if p.sink == nil || !p.created {
		return
	}
	if !visible {
		for _, a := range p.anchors {
			p.sink.SetLabel(a.ID, math.Vec2{}, false)
		}
		return
	}
	for _, sp := range Project(p.anchors, params, offset, viewProj, width, height) {
		p.sink.SetLabel(sp.ID, sp.Pos, sp.Visible)
	}
}

// Detach removes the labels from the sink. Calling it twice is harmless.
func (p *Projector) Detach() {
	if p.sink == nil || !p.created {
		return
	}
	for _, a := range p.anchors {
		p.sink.RemoveLabel(a.ID)
	}
	p.created = false
}
