package shape

import (
	gomath "math"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

// Curve selects the easing applied to unfold progress.
type Curve int

const (
	CurveCubic Curve = iota
	CurveQuint
)

// Motion tunes the unfold animation of a variant.
type Motion struct {
	// Rate is the exponential damping rate per second.
	Rate float64
	// Epsilon is the distance at which progress snaps to its target.
	Epsilon float64
	Curve   Curve
}

// View is the initial camera setup of a variant.
type View struct {
	Eye      math.Vec3
	Target   math.Vec3
	FovY     float32 // radians
	Near     float32
	Far      float32
	ZoomStep float32
	MinPolar float32
	MaxPolar float32
	Damping  float32
}

// Anchor is a labelled point on the solid. At returns its model-space
// position for the given params.
type Anchor struct {
	ID     string
	Text   string
	At     func(Params) math.Vec3
	Offset math.Vec2
}

// layout is what a topology function declares; the build driver derives
// the rest.
type layout struct {
	faces  []model.Face
	hinges []model.Hinge
}

// Variant is one row of the topology table.
type Variant struct {
	Kind       Kind
	Dimensions []Dimension
	Motion     Motion
	View       View
	// GridY is the height of the ground grid.
	GridY float32
	// Offset translates the whole model.
	Offset  math.Vec3
	Anchors []Anchor

	faceCount int
	topology  func(Params) layout
	// net, when set, yields a static net mesh cross-faded with the solid.
	net func(Params) []model.Face
}

// FaceCount returns the number of faces in the folded mesh.
func (v *Variant) FaceCount() int { return v.faceCount }

const (
	coneSegments     = 25
	cylinderSegments = 72
	cylinderCapSides = 64
)

var defaultView = View{
	FovY:     45 * gomath.Pi / 180,
	Near:     0.1,
	Far:      1000,
	ZoomStep: 0.5,
	MinPolar: 0,
	MaxPolar: gomath.Pi,
	Damping:  0.05,
}

func view(eye math.Vec3, mod func(*View)) View {
	v := defaultView
	v.Eye = eye
	if mod != nil {
		mod(&v)
	}
	return v
}

var variants = map[Kind]*Variant{
	Cube: {
		Kind:       Cube,
		Dimensions: []Dimension{{Name: "a", Default: 1, Min: 0.3, Max: 2.5, Step: 0.1}},
		Motion:     Motion{Rate: 1.8, Epsilon: 0.001, Curve: CurveCubic},
		View: view(math.Vec3{X: 4, Y: 4, Z: 6}, func(v *View) {
			v.MaxPolar = gomath.Pi / 1.8
		}),
		GridY:     -2.2,
		Anchors:   cubeAnchors,
		faceCount: 6,
		topology: func(p Params) layout {
			a := float32(p.Value("a"))
			return box(a, a, a, cubePalette)
		},
	},
	Cuboid: {
		Kind: Cuboid,
		Dimensions: []Dimension{
			{Name: "length", Default: 3, Min: 1.2, Max: 5, Step: 0.2},
			{Name: "width", Default: 2, Min: 0.8, Max: 3.5, Step: 0.15},
			{Name: "height", Default: 1.5, Min: 0.6, Max: 2.5, Step: 0.1},
		},
		Motion:    Motion{Rate: 2, Epsilon: 0.0005, Curve: CurveCubic},
		View:      view(math.Vec3{X: 5, Y: 4, Z: 6}, nil),
		GridY:     -2,
		Anchors:   cuboidAnchors,
		faceCount: 6,
		topology: func(p Params) layout {
			return box(float32(p.Value("length")), float32(p.Value("width")), float32(p.Value("height")), cuboidPalette)
		},
	},
	Cone: {
		Kind: Cone,
		Dimensions: []Dimension{
			{Name: "radius", Default: 1, Min: 0.3, Max: 2.5, Step: 0.1},
			{Name: "height", Default: 2, Min: 0.6, Max: 5, Step: 0.2},
		},
		Motion:    Motion{Rate: 2, Epsilon: 0.0008, Curve: CurveQuint},
		View:      view(math.Vec3{X: 3, Y: 2.5, Z: 4}, nil),
		GridY:     -2,
		Anchors:   coneAnchors,
		faceCount: coneSegments + 1,
		topology:  coneLayout,
		net:       coneNet,
	},
	Cylinder: {
		Kind: Cylinder,
		Dimensions: []Dimension{
			{Name: "radius", Default: 1.5, Min: 0.5, Max: 2.5, Step: 0.2},
			{Name: "height", Default: 3, Min: 1, Max: 5, Step: 0.4},
		},
		Motion: Motion{Rate: 1.8, Epsilon: 0.001, Curve: CurveCubic},
		View: view(math.Vec3{X: 5, Y: 4, Z: 10}, func(v *View) {
			v.Far = 100
			v.ZoomStep = 1
		}),
		GridY:     -2.5,
		Offset:    math.Vec3{Y: 0.5},
		Anchors:   cylinderAnchors,
		faceCount: cylinderSegments + 2,
		topology:  cylinderLayout,
	},
	Pyramid: {
		Kind: Pyramid,
		Dimensions: []Dimension{
			{Name: "half_side", Default: 1, Min: 0.5, Max: 2, Step: 0.1},
			{Name: "height", Default: 2, Min: 0.6, Max: 4, Step: 0.2},
		},
		Motion: Motion{Rate: 2, Epsilon: 0.001, Curve: CurveCubic},
		View: view(math.Vec3{X: 6.5, Y: 5.5, Z: 6.5}, func(v *View) {
			v.MaxPolar = gomath.Pi / 1.8
		}),
		GridY:     -0.02,
		Anchors:   pyramidAnchors,
		faceCount: 5,
		topology:  pyramidLayout,
	},
}

// Lookup returns the table entry of a kind.
func Lookup(k Kind) (*Variant, bool) {
	v, ok := variants[k]
	return v, ok
}

func styled(fill, edge model.Color) model.Style {
	return model.Style{Fill: fill, Edge: edge}
}

var (
	edgeDark = model.RGB(0x1f, 0x29, 0x37)

	cubePalette = [6]model.Style{
		styled(model.RGB(0x60, 0xa5, 0xfa), edgeDark),
		styled(model.RGB(0x34, 0xd3, 0x99), edgeDark),
		styled(model.RGB(0xfb, 0xbf, 0x24), edgeDark),
		styled(model.RGB(0xf8, 0x71, 0x71), edgeDark),
		styled(model.RGB(0xa7, 0x8b, 0xfa), edgeDark),
		styled(model.RGB(0xf4, 0x72, 0xb6), edgeDark),
	}
	cuboidPalette = [6]model.Style{
		styled(model.RGB(0x38, 0xbd, 0xf8), edgeDark),
		styled(model.RGB(0x4a, 0xde, 0x80), edgeDark),
		styled(model.RGB(0xfa, 0xcc, 0x15), edgeDark),
		styled(model.RGB(0xfb, 0x92, 0x3c), edgeDark),
		styled(model.RGB(0xc0, 0x84, 0xfc), edgeDark),
		styled(model.RGB(0x2d, 0xd4, 0xbf), edgeDark),
	}
	coneStyle     = styled(model.RGB(0xf9, 0x73, 0x16), edgeDark)
	coneBaseStyle = styled(model.RGB(0xfd, 0xba, 0x74), edgeDark)
	cylinderStyle = styled(model.RGB(0x3b, 0x82, 0xf6), edgeDark)
	cylinderCap   = styled(model.RGB(0x93, 0xc5, 0xfd), edgeDark)
	pyramidBase   = styled(model.RGB(0xea, 0xb3, 0x08), edgeDark)
	pyramidSide   = styled(model.RGB(0xfd, 0xe0, 0x47), edgeDark)
)
