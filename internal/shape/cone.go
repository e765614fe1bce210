package shape

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

const (
	wedgeDelay  = 0.008
	wedgeWindow = 0.85
	// coneBaseShift is how far the base slides behind the apex, as a
	// fraction of the slant height.
	coneBaseShift = 0.55
)

// SlantHeight returns √(r² + h²).
func SlantHeight(radius, height float64) float64 {
	return gomath.Hypot(radius, height)
}

// SectorAngle returns the angle of the flattened lateral surface,
// 2πr / s.
func SectorAngle(radius, height float64) float64 {
	return 2 * gomath.Pi * radius / SlantHeight(radius, height)
}

func coneDims(p Params) (r, h, s, sector float32) {
	rr, hh := p.Value("radius"), p.Value("height")
	return float32(rr), float32(hh), float32(SlantHeight(rr, hh)), float32(SectorAngle(rr, hh))
}

// coneLayout splits the lateral surface into wedges pivoting at the apex and
// adds the base disc. Wedges and disc fade out while the net fades in.
func coneLayout(p Params) layout {
	r, h, s, sector := coneDims(p)
	step := 2 * math32.Pi / coneSegments

	faces := make([]model.Face, 0, coneSegments+1)
	for i := 0; i < coneSegments; i++ {
		a1 := float32(i) * step
		a2 := float32(i+1) * step
		b1 := math.Vec3{X: math32.Cos(a1) * r, Y: -h, Z: math32.Sin(a1) * r}
		b2 := math.Vec3{X: math32.Cos(a2) * r, Y: -h, Z: math32.Sin(a2) * r}

		apex := math.Vec3{Y: h / 2}
		spin := sector/2 - float32(i)/coneSegments*sector
		faces = append(faces, model.Face{
			Name:     "wedge",
			Vertices: []math.Vec3{{}, b2, b1},
			Folded:   model.Pose{Position: apex, Opacity: 1},
			Unfolded: model.Pose{
				Position: apex,
				Rotation: math.Vec3{X: -math32.Pi / 2, Y: spin},
				Opacity:  0,
			},
			Stagger: model.Stagger{Delay: float64(i) * wedgeDelay, Window: wedgeWindow},
			Style:   coneStyle,
		})
	}

	faces = append(faces, model.Face{
		Name:     "base",
		Vertices: disc(r, coneSegments, math.Vec3{}),
		Folded:   model.Pose{Position: math.Vec3{Y: -h / 2}, Opacity: 1},
		Unfolded: model.Pose{Position: math.Vec3{Z: -s * coneBaseShift}, Opacity: 0},
		Style:    coneBaseStyle,
	})
	return layout{faces: faces}
}

// coneNet is the flattened cone: a circular sector of radius s spanning the
// sector angle, plus the base disc beside it.
func coneNet(p Params) []model.Face {
	r, _, s, sector := coneDims(p)
	step := sector / coneSegments

	faces := make([]model.Face, 0, coneSegments+1)
	still := model.Pose{Opacity: 1}
	for i := 0; i < coneSegments; i++ {
		a1 := float32(i) * step
		a2 := float32(i+1) * step
		faces = append(faces, model.Face{
			Name: "sector",
			Vertices: []math.Vec3{
				{},
				{X: math32.Cos(a1) * s, Z: math32.Sin(a1) * s},
				{X: math32.Cos(a2) * s, Z: math32.Sin(a2) * s},
			},
			// Only the arc and the two straight radii are outlined.
			Edges:  sectorEdges(i),
			Folded: still, Unfolded: still,
			Style: coneStyle,
		})
	}
	faces = append(faces, model.Face{
		Name:     "base",
		Vertices: disc(r, coneSegments, math.Vec3{Z: -s * coneBaseShift}),
		Folded:   still, Unfolded: still,
		Style:    coneBaseStyle,
	})
	return faces
}

func sectorEdges(i int) [][2]int {
	edges := [][2]int{{1, 2}}
	if i == 0 {
		edges = append(edges, [2]int{0, 1})
	}
	if i == coneSegments-1 {
		edges = append(edges, [2]int{0, 2})
	}
	return edges
}

// disc returns a horizontal n-gon of the given radius centred on c, wound so
// its normal points down.
func disc(radius float32, n int, c math.Vec3) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := range pts {
		a := float32(i) * 2 * math32.Pi / float32(n)
		pts[i] = math.Vec3{X: c.X + math32.Cos(a)*radius, Y: c.Y, Z: c.Z + math32.Sin(a)*radius}
	}
	return pts
}

var coneAnchors = []Anchor{
	{
		ID: "apex", Text: "Apex",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Y: float32(p.Value("height")) / 2}
		},
		Offset: math.Vec2{X: 10, Y: -10},
	},
	{
		ID: "slant", Text: "Slant height (s)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{X: 0.6 * float32(p.Value("radius"))}
		},
		Offset: math.Vec2{X: 10},
	},
	{
		ID: "base", Text: "Base (circle)",
		At: func(p Params) math.Vec3 {
			return math.Vec3{Y: -float32(p.Value("height")) / 2}
		},
		Offset: math.Vec2{X: 10, Y: 10},
	},
}
