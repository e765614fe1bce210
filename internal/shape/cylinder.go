package shape

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

// cylinderLayout wraps flat panels around the axis. Unfolding lays them side
// by side into a strip of width 2πr; the caps swing up from the centre panel
// to flank the strip.
func cylinderLayout(p Params) layout {
	r := float32(p.Value("radius"))
	h := float32(p.Value("height"))
	w := 2 * math32.Pi * r / cylinderSegments

	faces := make([]model.Face, 0, cylinderSegments+2)
	for i := 0; i < cylinderSegments; i++ {
		c := float32(i - cylinderSegments/2)
		angle := c * 2 * math32.Pi / cylinderSegments
		faces = append(faces, model.Face{
			Name: "panel",
			Vertices: []math.Vec3{
				{X: -w / 2, Y: -h / 2}, {X: w / 2, Y: -h / 2}, {X: w / 2, Y: h / 2}, {X: -w / 2, Y: h / 2},
			},
			// Top and bottom rims only; panel seams stay undrawn.
			Edges: [][2]int{{0, 1}, {2, 3}},
			Folded: model.Pose{
				Position: math.Vec3{X: math32.Sin(angle) * r, Z: math32.Cos(angle) * r},
				Rotation: math.Vec3{Y: angle},
				Opacity:  1,
			},
			Unfolded: model.Pose{Position: math.Vec3{X: c * w}, Opacity: 1},
			Style:    cylinderStyle,
		})
	}

	top := circle(r, cylinderCapSides, r)
	bottom := circle(r, cylinderCapSides, -r)
	faces = append(faces,
		model.Face{
			Name:     "top",
			Vertices: top,
			Folded: model.Pose{
				Position: math.Vec3{Y: h / 2, Z: r},
				Rotation: math.Vec3{X: -math32.Pi / 2},
				Opacity:  1,
			},
			Unfolded: model.Pose{Position: math.Vec3{Y: h / 2}, Opacity: 1},
			Style:    cylinderCap,
		},
		model.Face{
			Name:     "bottom",
			Vertices: bottom,
			Folded: model.Pose{
				Position: math.Vec3{Y: -h / 2, Z: r},
				Rotation: math.Vec3{X: math32.Pi / 2},
				Opacity:  1,
			},
			Unfolded: model.Pose{Position: math.Vec3{Y: -h / 2}, Opacity: 1},
			Style:    cylinderCap,
		},
	)
	return layout{faces: faces}
}

// circle returns an n-gon in the XY plane centred on (0, dy).
func circle(radius float32, n int, dy float32) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := range pts {
		a := float32(i) * 2 * math32.Pi / float32(n)
		pts[i] = math.Vec3{X: math32.Cos(a) * radius, Y: math32.Sin(a)*radius + dy}
	}
	return pts
}

var cylinderAnchors = []Anchor{
	{
		ID: "radius", Text: "Radius (r)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{X: float32(p.Value("radius")) / 2, Y: float32(p.Value("height")) / 2}
		},
		Offset: math.Vec2{X: 15, Y: -15},
	},
	{
		ID: "height", Text: "Height (h)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{X: float32(p.Value("radius"))}
		},
		Offset: math.Vec2{X: 15, Y: -15},
	},
	{
		ID: "top", Text: "Top face",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Y: float32(p.Value("height")) / 2}
		},
		Offset: math.Vec2{X: 15, Y: -15},
	},
}
