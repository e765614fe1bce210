package model

import "github.com/Faultbox/solidnet/pkg/math"

// Normal returns the unit normal of a planar polygon using Newell's method.
// Degenerate polygons get +Y.
func Normal(vertices []math.Vec3) math.Vec3 {
	var n math.Vec3
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if n.Length() < 1e-8 {
		return math.Vec3{Y: 1}
	}
	return n.Normalize()
}

// Transform returns the model-space matrix and opacity of the face when its
// motion progress is m and its fade progress is f, both already eased.
// Position and rotation interpolate independently; the hinge rotation is
// applied before the pose.
func (f *Face) Transform(m, fade float32, hinge *Hinge) (math.Mat4, float32) {
	pos := f.Folded.Position.Lerp(f.Unfolded.Position, m)
	rot := f.Folded.Rotation.Lerp(f.Unfolded.Rotation, m)
	opacity := math.Lerp(f.Folded.Opacity, f.Unfolded.Opacity, fade)

	mat := math.Translate(pos).Mul(math.RotateEuler(rot))
	if hinge != nil {
		mat = mat.Mul(math.RotateAbout(hinge.Pivot, hinge.Axis, hinge.Angle*m))
	}
	return mat, opacity
}
