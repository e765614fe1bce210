// Package overlay draws label text over a rendered frame. Canvas is the
// label sink used by both the window viewer and the snapshot tool.
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/solidnet/pkg/math"
)

const padding = 4

var (
	plateColor = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	textColor  = color.White
)

type entry struct {
	text    string
	pos     math.Vec2
	visible bool
}

// Canvas records labels and paints the visible ones. Labels are drawn in
// creation order.
type Canvas struct {
	face   font.Face
	labels map[string]*entry
	order  []string
	frame  *image.RGBA
}

// NewCanvas returns an empty canvas using the 7x13 bitmap font.
func NewCanvas() *Canvas {
	return &Canvas{face: basicfont.Face7x13, labels: make(map[string]*entry)}
}

// CreateLabel adds a hidden label. Creating an existing id replaces its text.
func (c *Canvas) CreateLabel(id, text string) {
	if e, ok := c.labels[id]; ok {
		e.text = text
		return
	}
	c.labels[id] = &entry{text: text}
	c.order = append(c.order, id)
}

// SetLabel moves a label and sets its visibility. Unknown ids are ignored.
func (c *Canvas) SetLabel(id string, pos math.Vec2, visible bool) {
	if e, ok := c.labels[id]; ok {
		e.pos, e.visible = pos, visible
	}
}

// RemoveLabel deletes a label.
func (c *Canvas) RemoveLabel(id string) {
	if _, ok := c.labels[id]; !ok {
		return
	}
	delete(c.labels, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of labels, visible or not.
func (c *Canvas) Len() int {
	return len(c.labels)
}

// Visible returns the ids of visible labels in creation order.
func (c *Canvas) Visible() []string {
	var ids []string
	for _, id := range c.order {
		if c.labels[id].visible {
			ids = append(ids, id)
		}
	}
	return ids
}

// Draw paints visible labels onto dst, each centred on its position over a
// translucent plate.
func (c *Canvas) Draw(dst *image.RGBA) {
	for _, id := range c.order {
		e := c.labels[id]
		if !e.visible {
			continue
		}
		c.drawLabel(dst, e)
	}
}

// Frame returns a transparent image of the given size holding only the
// labels. The image is reused between calls.
func (c *Canvas) Frame(width, height int) *image.RGBA {
	r := image.Rect(0, 0, max(width, 1), max(height, 1))
	if c.frame == nil || c.frame.Bounds() != r {
		c.frame = image.NewRGBA(r)
	} else {
		clear(c.frame.Pix)
	}
	c.Draw(c.frame)
	return c.frame
}

// Bounds returns the plate rectangle a label would occupy.
func (c *Canvas) Bounds(id string) (image.Rectangle, bool) {
	e, ok := c.labels[id]
	if !ok {
		return image.Rectangle{}, false
	}
	return c.plate(e), true
}

func (c *Canvas) plate(e *entry) image.Rectangle {
	w := font.MeasureString(c.face, e.text).Ceil()
	m := c.face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	x := int(e.pos.X) - w/2
	y := int(e.pos.Y) - h/2
	return image.Rect(x-padding, y-padding, x+w+padding, y+h+padding)
}

func (c *Canvas) drawLabel(dst *image.RGBA, e *entry) {
	plate := c.plate(e)
	if !plate.Overlaps(dst.Bounds()) {
		return
	}
	draw.Draw(dst, plate, image.NewUniform(plateColor), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: c.face,
		Dot:  fixed.P(plate.Min.X+padding, plate.Min.Y+padding+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(e.text)
}
