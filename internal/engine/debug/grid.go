// Package debug provides helper geometry and capture utilities for the
// viewer: the ground grid, bounds wireframes and PNG screenshots.
package debug

// GridLines returns line endpoints for a square grid of the given size
// centred on the origin at height y, with divisions cells per side.
// Format: [x, y, z] per endpoint.
func GridLines(size float32, divisions int, y float32) []float32 {
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / float32(divisions)

	vertices := make([]float32, 0, (divisions+1)*12)
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		vertices = append(vertices,
			k, y, -half, k, y, half, // along Z
			-half, y, k, half, y, k, // along X
		)
	}
	return vertices
}
