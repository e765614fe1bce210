package shape

import (
	gomath "math"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

// pyramidOpenAngle is how far each side swings out on its base edge.
const pyramidOpenAngle = gomath.Pi / 1.69

// pyramidLayout keeps the square base still and hinges the four triangular
// sides on the base edges.
func pyramidLayout(p Params) layout {
	s := float32(p.Value("half_side"))
	h := float32(p.Value("height"))

	corners := [4]math.Vec3{
		{X: s, Z: s},
		{X: s, Z: -s},
		{X: -s, Z: -s},
		{X: -s, Z: s},
	}
	apex := math.Vec3{Y: h}
	still := model.Pose{Opacity: 1}

	faces := []model.Face{{
		Name:     "base",
		Vertices: []math.Vec3{corners[3], corners[2], corners[1], corners[0]},
		Folded:   still, Unfolded: still,
		Style:    pyramidBase,
	}}
	hinges := make([]model.Hinge, 0, 4)
	for i := 0; i < 4; i++ {
		p1, p2 := corners[i], corners[(i+1)%4]
		faces = append(faces, model.Face{
			Name:     "side",
			Vertices: []math.Vec3{p1, p2, apex},
			Folded:   still, Unfolded: still,
			Style:    pyramidSide,
		})
		hinges = append(hinges, model.Hinge{
			Face:  len(faces) - 1,
			Pivot: p1.Add(p2).Scale(0.5),
			Axis:  p2.Sub(p1).Normalize(),
			Angle: pyramidOpenAngle,
		})
	}
	return layout{faces: faces, hinges: hinges}
}

var pyramidAnchors = []Anchor{
	{
		ID: "vertices", Text: "Vertices (5 total)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Y: float32(p.Value("height"))}
		},
		Offset: math.Vec2{X: 10, Y: -10},
	},
	{
		ID: "edges", Text: "Edges (8 total)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Z: float32(p.Value("half_side"))}
		},
		Offset: math.Vec2{X: 10},
	},
	{
		ID: "faces", Text: "Faces (5 total)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{X: 0.7 * float32(p.Value("half_side")), Y: float32(p.Value("height")) / 2}
		},
		Offset: math.Vec2{X: 10, Y: 10},
	},
}
