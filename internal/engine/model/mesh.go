package model

import "github.com/Faultbox/solidnet/pkg/math"

// Ring returns the closed outline edges of an n-gon.
func Ring(n int) [][2]int {
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return edges
}

// Triangles fan-triangulates the face and returns flat xyz positions
// transformed by m. Faces are convex, so a fan from the first vertex is exact.
func (f *Face) Triangles(m math.Mat4) []float32 {
	if len(f.Vertices) < 3 {
		return nil
	}
	out := make([]float32, 0, (len(f.Vertices)-2)*9)
	v0 := m.TransformVec3(f.Vertices[0])
	for i := 1; i+1 < len(f.Vertices); i++ {
		v1 := m.TransformVec3(f.Vertices[i])
		v2 := m.TransformVec3(f.Vertices[i+1])
		out = append(out, v0.X, v0.Y, v0.Z, v1.X, v1.Y, v1.Z, v2.X, v2.Y, v2.Z)
	}
	return out
}

// Lines returns flat xyz segment endpoints for the face edges transformed by m.
func (f *Face) Lines(m math.Mat4) []float32 {
	out := make([]float32, 0, len(f.Edges)*6)
	for _, e := range f.Edges {
		a := m.TransformVec3(f.Vertices[e[0]])
		b := m.TransformVec3(f.Vertices[e[1]])
		out = append(out, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return out
}

// UpdateBounds recomputes the mesh bounds from face vertices at their
// folded poses.
func (m *Mesh) UpdateBounds() {
	first := true
	for i := range m.Faces {
		f := &m.Faces[i]
		mat, _ := f.Transform(0, 0, nil)
		for _, v := range f.Vertices {
			p := mat.TransformVec3(v)
			if first {
				m.Bounds = Bounds{Min: p, Max: p}
				first = false
				continue
			}
			updateBounds(&m.Bounds, p)
		}
	}
}

func updateBounds(b *Bounds, p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
