package unfold

import (
	"github.com/Faultbox/solidnet/internal/shape"
	"github.com/Faultbox/solidnet/pkg/math"
)

// FaceTransform returns the model-space transform and opacity of folded
// face i at the given progress. Staggered faces ease their own local
// progress for motion but fade with the global curve.
func (c *Controller) FaceTransform(m *shape.Model, i int, progress float64) (math.Mat4, float32) {
	f := &m.Folded.Faces[i]
	fade := c.Eased(progress)
	motion := fade
	if f.Stagger.Window > 0 {
		motion = c.Eased(f.Stagger.Local(progress))
	}
	mat, opacity := f.Transform(motion, fade, m.HingeOf(i))
	return math.Translate(m.Offset).Mul(mat), opacity
}

// NetOpacity is the opacity of a cross-faded net at the given progress.
// It is zero for models that do not cross-fade.
func (c *Controller) NetOpacity(m *shape.Model, progress float64) float32 {
	if !m.CrossFade {
		return 0
	}
	return c.Eased(progress)
}
