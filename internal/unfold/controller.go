// Package unfold drives the fold/unfold animation of a built solid: a damped
// progress value moving toward 0 or 1, and the per-face transforms derived
// from it.
package unfold

import (
	"math"

	"github.com/tanema/gween/ease"

	"github.com/Faultbox/solidnet/internal/shape"
)

// State is the controller's position in the fold/unfold cycle.
type State int

const (
	Folded State = iota
	Animating
	Unfolded
)

func (s State) String() string {
	switch s {
	case Folded:
		return "folded"
	case Animating:
		return "animating"
	case Unfolded:
		return "unfolded"
	}
	return "unknown"
}

// MaxStep caps the time step of a single Advance, in seconds.
const MaxStep = 0.05

// Controller owns the animation state of one session.
// Invariant: when not animating, progress equals target.
type Controller struct {
	motion    shape.Motion
	ease      ease.TweenFunc
	progress  float64
	target    float64
	animating bool
}

// New returns a folded controller.
func New(m shape.Motion) *Controller {
	return &Controller{motion: m, ease: curve(m.Curve)}
}

func curve(c shape.Curve) ease.TweenFunc {
	if c == shape.CurveQuint {
		return ease.InOutQuint
	}
	return ease.InOutCubic
}

// Unfold starts animating toward the net.
func (c *Controller) Unfold() {
	c.target = 1
	c.animating = true
}

// Fold starts animating back toward the solid.
func (c *Controller) Fold() {
	c.target = 0
	c.animating = true
}

// Reset jumps to the folded state without animating.
func (c *Controller) Reset() {
	c.progress = 0
	c.target = 0
	c.animating = false
}

// Advance moves progress toward the target by exponential damping,
// p += (t - p) * (1 - e^(-rate*dt)), and snaps once within epsilon.
// It reports whether progress changed.
func (c *Controller) Advance(dt float64) bool {
	if !c.animating {
		return false
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	dt = math.Min(dt, MaxStep)

	before := c.progress
	c.progress += (c.target - c.progress) * (1 - math.Exp(-c.motion.Rate*dt))
	if math.Abs(c.target-c.progress) < c.motion.Epsilon {
		c.progress = c.target
		c.animating = false
	}
	return c.progress != before
}

// Progress returns the raw progress in [0, 1].
func (c *Controller) Progress() float64 { return c.progress }

// Target returns 0 when folding and 1 when unfolding.
func (c *Controller) Target() float64 { return c.target }

// Animating reports whether progress is still moving.
func (c *Controller) Animating() bool { return c.animating }

// State classifies the current position.
func (c *Controller) State() State {
	switch {
	case c.animating:
		return Animating
	case c.progress == 1:
		return Unfolded
	default:
		return Folded
	}
}

// Eased applies the controller's easing curve to p.
func (c *Controller) Eased(p float64) float32 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return c.ease(float32(p), 0, 1, 1)
}
