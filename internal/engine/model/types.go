// Package model holds the face-based mesh data shared by the shape builders,
// the unfold animation and the render backends.
package model

import "github.com/Faultbox/solidnet/pkg/math"

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB builds an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// Style controls how a face is drawn.
type Style struct {
	Fill Color
	Edge Color
}

// Pose is a face placement relative to the model origin.
// Rotation holds Euler angles in radians, applied in XYZ order.
type Pose struct {
	Position math.Vec3
	Rotation math.Vec3
	Opacity  float32
}

// Hinge rotates a face about the line through Pivot along Axis, from 0 at
// the folded pose to Angle at the unfolded pose.
type Hinge struct {
	Face  int
	Pivot math.Vec3
	Axis  math.Vec3
	Angle float32
}

// Stagger delays a face's motion: its local progress runs from 0 to 1 over
// Window, starting when the global progress passes Delay. A zero Window
// means the face follows the global progress.
type Stagger struct {
	Delay  float64
	Window float64
}

// Local maps global progress onto the face's own progress in [0, 1].
func (s Stagger) Local(progress float64) float64 {
	if s.Window <= 0 {
		return progress
	}
	t := (progress - s.Delay) / s.Window
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Face is a planar polygon in face-local coordinates together with its
// folded and unfolded placement.
type Face struct {
	Name     string
	Vertices []math.Vec3
	Normal   math.Vec3
	// Edges index pairs into Vertices drawn as outline segments.
	Edges    [][2]int
	Folded   Pose
	Unfolded Pose
	// Hinge indexes the owning model's hinge list, -1 when the face has none.
	Hinge   int
	Stagger Stagger
	Style   Style
}

// Mesh is an ordered list of faces.
type Mesh struct {
	Faces  []Face
	Bounds Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
