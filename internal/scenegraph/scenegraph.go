// Package scenegraph is the per-session arena of renderable nodes. Every
// node owns one device buffer; releasing the graph frees them all.
package scenegraph

import (
	"fmt"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

// BufferID is a device-side geometry handle.
type BufferID uint32

// Geometry is flat xyz data for upload: filled triangles and line segments.
type Geometry struct {
	Triangles []float32
	Lines     []float32
}

// Device allocates and frees geometry buffers.
type Device interface {
	Upload(g Geometry) (BufferID, error)
	Free(id BufferID)
}

// Layer orders drawing: grid first, then the solid, then the net overlay.
type Layer int

const (
	LayerGrid Layer = iota
	LayerSolid
	LayerNet
	LayerDebug
)

// Node is one drawable.
type Node struct {
	Name      string
	Buffer    BufferID
	Layer     Layer
	Style     model.Style
	Transform math.Mat4
	Opacity   float32
	Visible   bool
}

// Graph owns nodes and their buffers.
type Graph struct {
	dev   Device
	nodes []*Node
}

// New returns an empty graph over dev.
func New(dev Device) *Graph {
	return &Graph{dev: dev}
}

// Add uploads geometry and records a visible node with identity transform.
func (g *Graph) Add(name string, layer Layer, geom Geometry, style model.Style) (*Node, error) {
	id, err := g.dev.Upload(geom)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", name, err)
	}
	n := &Node{
		Name:      name,
		Buffer:    id,
		Layer:     layer,
		Style:     style,
		Transform: math.Identity(),
		Opacity:   1,
		Visible:   true,
	}
	g.nodes = append(g.nodes, n)
	return n, nil
}

// AddFace uploads a face in its local coordinates.
func (g *Graph) AddFace(f *model.Face, layer Layer) (*Node, error) {
	id := math.Identity()
	return g.Add(f.Name, layer, Geometry{Triangles: f.Triangles(id), Lines: f.Lines(id)}, f.Style)
}

// Nodes returns nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// ReleaseAll frees every buffer exactly once and empties the graph.
func (g *Graph) ReleaseAll() {
	for _, n := range g.nodes {
		g.dev.Free(n.Buffer)
	}
	g.nodes = nil
}

// Remove frees one node. Nodes not in the graph are ignored.
func (g *Graph) Remove(n *Node) {
	for i, m := range g.nodes {
		if m == n {
			g.dev.Free(n.Buffer)
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}
