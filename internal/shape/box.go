package shape

import (
	gomath "math"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

// box lays out a rectangular solid of the given length (X), width (Z) and
// height (Y) as a plus-shaped net: front stays put, left/right/top/bottom
// swing out on the edge they share with front, back slides along +X.
func box(length, width, height float32, palette [6]model.Style) layout {
	hl, hw, hh := length/2, width/2, height/2
	const quarter = gomath.Pi / 2

	still := model.Pose{Opacity: 1}
	faces := []model.Face{
		{
			Name: "front",
			Vertices: []math.Vec3{
				{X: -hl, Y: -hh, Z: hw}, {X: hl, Y: -hh, Z: hw}, {X: hl, Y: hh, Z: hw}, {X: -hl, Y: hh, Z: hw},
			},
			Folded: still, Unfolded: still, Style: palette[0],
		},
		{
			Name: "right",
			Vertices: []math.Vec3{
				{X: hl, Y: -hh, Z: hw}, {X: hl, Y: -hh, Z: -hw}, {X: hl, Y: hh, Z: -hw}, {X: hl, Y: hh, Z: hw},
			},
			Folded: still, Unfolded: still, Style: palette[1],
		},
		{
			Name: "left",
			Vertices: []math.Vec3{
				{X: -hl, Y: -hh, Z: -hw}, {X: -hl, Y: -hh, Z: hw}, {X: -hl, Y: hh, Z: hw}, {X: -hl, Y: hh, Z: -hw},
			},
			Folded: still, Unfolded: still, Style: palette[2],
		},
		{
			Name: "top",
			Vertices: []math.Vec3{
				{X: -hl, Y: hh, Z: hw}, {X: hl, Y: hh, Z: hw}, {X: hl, Y: hh, Z: -hw}, {X: -hl, Y: hh, Z: -hw},
			},
			Folded: still, Unfolded: still, Style: palette[3],
		},
		{
			Name: "bottom",
			Vertices: []math.Vec3{
				{X: -hl, Y: -hh, Z: -hw}, {X: hl, Y: -hh, Z: -hw}, {X: hl, Y: -hh, Z: hw}, {X: -hl, Y: -hh, Z: hw},
			},
			Folded: still, Unfolded: still, Style: palette[4],
		},
		{
			Name: "back",
			Vertices: []math.Vec3{
				{X: hl, Y: -hh, Z: -hw}, {X: -hl, Y: -hh, Z: -hw}, {X: -hl, Y: hh, Z: -hw}, {X: hl, Y: hh, Z: -hw},
			},
			Folded:   still,
			Unfolded: model.Pose{Position: math.Vec3{X: length + width}, Opacity: 1},
			Style:    palette[5],
		},
	}

	hinges := []model.Hinge{
		{Face: 1, Pivot: math.Vec3{X: hl, Z: hw}, Axis: math.Vec3{Y: 1}, Angle: -quarter},
		{Face: 2, Pivot: math.Vec3{X: -hl, Z: hw}, Axis: math.Vec3{Y: 1}, Angle: quarter},
		{Face: 3, Pivot: math.Vec3{Y: hh, Z: hw}, Axis: math.Vec3{X: 1}, Angle: quarter},
		{Face: 4, Pivot: math.Vec3{Y: -hh, Z: hw}, Axis: math.Vec3{X: 1}, Angle: -quarter},
	}
	return layout{faces: faces, hinges: hinges}
}

var cubeAnchors = []Anchor{
	{
		ID: "vertices", Text: "Vertices (8 total)",
		At: func(p Params) math.Vec3 {
			h := float32(p.Value("a")) / 2
			return math.Vec3{X: h, Y: h, Z: h}
		},
		Offset: math.Vec2{X: 10, Y: -10},
	},
	{
		ID: "edges", Text: "Edges (12 total)",
		At: func(p Params) math.Vec3 {
			h := float32(p.Value("a")) / 2
			return math.Vec3{X: h, Y: h}
		},
		Offset: math.Vec2{X: 10},
	},
	{
		ID: "faces", Text: "Faces (6 total)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Z: float32(p.Value("a"))/2 + 0.01}
		},
		Offset: math.Vec2{X: 10, Y: 10},
	},
}

var cuboidAnchors = []Anchor{
	{
		ID: "length", Text: "Length (p)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{X: float32(p.Value("length")) / 2, Z: float32(p.Value("width")) / 2}
		},
		Offset: math.Vec2{X: 10},
	},
	{
		ID: "width", Text: "Width (l)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Z: float32(p.Value("width")) / 2}
		},
		Offset: math.Vec2{X: 10, Y: 10},
	},
	{
		ID: "height", Text: "Height (t)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{X: float32(p.Value("length")) / 2, Y: float32(p.Value("height")) / 2}
		},
		Offset: math.Vec2{X: 10, Y: -10},
	},
}
