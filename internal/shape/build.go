package shape

import (
	"errors"
	"fmt"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

// ErrParams is returned when params do not belong to the requested kind.
var ErrParams = errors.New("params do not match shape")

// Model is a built solid: its animated folded mesh, the unfolded net and the
// hinges binding faces to rotation axes.
type Model struct {
	Kind   Kind
	Params Params
	// Folded holds the animated faces.
	Folded *model.Mesh
	// Unfolded is the net. When CrossFade is set it is a separate static
	// mesh drawn with eased opacity; otherwise it is Folded baked at
	// progress 1 and is not drawn.
	Unfolded  *model.Mesh
	Hinges    []model.Hinge
	CrossFade bool
	// Offset translates the whole model.
	Offset math.Vec3
}

// HingeOf returns the hinge bound to face i, or nil.
func (m *Model) HingeOf(i int) *model.Hinge {
	h := m.Folded.Faces[i].Hinge
	if h < 0 || h >= len(m.Hinges) {
		return nil
	}
	return &m.Hinges[h]
}

// Build is the generic driver over the topology table. It is pure: the same
// kind and params always yield identical vertex data.
func Build(kind Kind, p Params) (*Model, error) {
	v, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if !matches(v, p) {
		return nil, fmt.Errorf("%w: %v got %s", ErrParams, kind, p)
	}

	l := v.topology(p)
	if len(l.faces) != v.faceCount {
		return nil, fmt.Errorf("%v topology produced %d faces, want %d", kind, len(l.faces), v.faceCount)
	}
	if err := finish(l.faces); err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	for i, h := range l.hinges {
		if h.Face < 0 || h.Face >= len(l.faces) {
			return nil, fmt.Errorf("%v: hinge %d targets face %d", kind, i, h.Face)
		}
		if l.faces[h.Face].Hinge >= 0 {
			return nil, fmt.Errorf("%v: face %d has more than one hinge", kind, h.Face)
		}
		l.faces[h.Face].Hinge = i
	}

	m := &Model{
		Kind:   kind,
		Params: p,
		Folded: &model.Mesh{Faces: l.faces},
		Hinges: l.hinges,
		Offset: v.Offset,
	}
	m.Folded.UpdateBounds()

	if v.net != nil {
		net := v.net(p)
		if err := finish(net); err != nil {
			return nil, fmt.Errorf("%v net: %w", kind, err)
		}
		m.Unfolded = &model.Mesh{Faces: net}
		m.CrossFade = true
	} else {
		m.Unfolded = bake(m)
	}
	m.Unfolded.UpdateBounds()
	return m, nil
}

func matches(v *Variant, p Params) bool {
	if p.Len() != len(v.Dimensions) {
		return false
	}
	for i, d := range p.Dimensions() {
		if d.Name != v.Dimensions[i].Name {
			return false
		}
	}
	return true
}

// finish derives normals and default outlines and clears hinge links.
func finish(faces []model.Face) error {
	for i := range faces {
		f := &faces[i]
		if len(f.Vertices) < 3 {
			return fmt.Errorf("face %d (%s) has %d vertices", i, f.Name, len(f.Vertices))
		}
		f.Normal = model.Normal(f.Vertices)
		if f.Edges == nil {
			f.Edges = model.Ring(len(f.Vertices))
		}
		f.Hinge = -1
	}
	return nil
}

// bake freezes the folded faces at their unfolded pose.
func bake(m *Model) *model.Mesh {
	faces := make([]model.Face, len(m.Folded.Faces))
	for i := range m.Folded.Faces {
		src := &m.Folded.Faces[i]
		mat, opacity := src.Transform(1, 1, m.HingeOf(i))

		verts := make([]math.Vec3, len(src.Vertices))
		for j, v := range src.Vertices {
			verts[j] = mat.TransformVec3(v)
		}
		pose := model.Pose{Opacity: opacity}
		faces[i] = model.Face{
			Name:     src.Name,
			Vertices: verts,
			Normal:   model.Normal(verts),
			Edges:    src.Edges,
			Folded:   pose,
			Unfolded: pose,
			Hinge:    -1,
			Style:    src.Style,
		}
	}
	return &model.Mesh{Faces: faces}
}
