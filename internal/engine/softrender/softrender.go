// Package softrender rasterizes a scene graph on the CPU with fauxgl. It
// backs the headless snapshot tool and renderer tests.
package softrender

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/internal/scenegraph"
	"github.com/Faultbox/solidnet/pkg/math"
)

// edgeBias pulls outlines toward the camera so they win against the faces
// they border.
const edgeBias = -1e-4

// Config sizes the output image. Supersample renders at a multiple of the
// output size and scales down for anti-aliasing.
type Config struct {
	Width       int
	Height      int
	Supersample int
	Background  model.Color
}

// Renderer keeps uploaded geometry in memory and draws into a fauxgl
// context on Render.
type Renderer struct {
	config  Config
	ctx     *fauxgl.Context
	buffers map[scenegraph.BufferID]scenegraph.Geometry
	next    scenegraph.BufferID
	frames  int
}

// New returns a renderer with an allocated context.
func New(cfg Config) *Renderer {
	if cfg.Supersample < 1 {
		cfg.Supersample = 1
	}
	r := &Renderer{
		config:  cfg,
		buffers: make(map[scenegraph.BufferID]scenegraph.Geometry),
	}
	r.Resize(cfg.Width, cfg.Height)
	return r
}

// Resize reallocates the context when the size changes.
func (r *Renderer) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if r.ctx != nil && width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width, r.config.Height = width, height
	ss := r.config.Supersample
	r.ctx = fauxgl.NewContext(width*ss, height*ss)
	r.ctx.Cull = fauxgl.CullNone
	r.ctx.AlphaBlend = true
}

// Upload stores a copy of the geometry.
func (r *Renderer) Upload(g scenegraph.Geometry) (scenegraph.BufferID, error) {
	r.next++
	r.buffers[r.next] = scenegraph.Geometry{
		Triangles: append([]float32(nil), g.Triangles...),
		Lines:     append([]float32(nil), g.Lines...),
	}
	return r.next, nil
}

// Free drops stored geometry. Unknown IDs are ignored.
func (r *Renderer) Free(id scenegraph.BufferID) {
	delete(r.buffers, id)
}

// Live returns the number of stored buffers.
func (r *Renderer) Live() int {
	return len(r.buffers)
}

// Frames returns how many times Render ran.
func (r *Renderer) Frames() int {
	return r.frames
}

// Render clears the context and draws visible nodes layer by layer.
func (r *Renderer) Render(g *scenegraph.Graph, viewProj math.Mat4) {
	r.frames++
	r.ctx.ClearColorBufferWith(toColor(r.config.Background, 1))
	r.ctx.ClearDepthBuffer()

	for _, layer := range []scenegraph.Layer{scenegraph.LayerGrid, scenegraph.LayerSolid, scenegraph.LayerNet, scenegraph.LayerDebug} {
		for _, n := range g.Nodes() {
			if n.Layer != layer || !n.Visible || n.Opacity <= 0 {
				continue
			}
			geom, ok := r.buffers[n.Buffer]
			if !ok {
				continue
			}
			r.drawNode(n, geom, toMatrix(viewProj.Mul(n.Transform)))
		}
	}
}

func (r *Renderer) drawNode(n *scenegraph.Node, g scenegraph.Geometry, m fauxgl.Matrix) {
	// Translucent faces must not hide what is behind them.
	r.ctx.WriteDepth = n.Opacity >= 1

	if len(g.Triangles) >= 9 {
		r.ctx.Shader = fauxgl.NewSolidColorShader(m, toColor(n.Style.Fill, n.Opacity))
		r.ctx.DepthBias = 0
		r.ctx.DrawTriangles(triangles(g.Triangles))
	}
	if len(g.Lines) >= 6 && n.Style.Edge.A > 0 {
		r.ctx.Shader = fauxgl.NewSolidColorShader(m, toColor(n.Style.Edge, n.Opacity))
		r.ctx.DepthBias = edgeBias
		r.ctx.DrawLines(lines(g.Lines))
	}
	r.ctx.DepthBias = 0
	r.ctx.WriteDepth = true
}

// Image returns the last frame scaled to the output size.
func (r *Renderer) Image() *image.RGBA {
	src := r.ctx.Image()
	if r.config.Supersample > 1 {
		src = resize.Resize(uint(r.config.Width), uint(r.config.Height), src, resize.Bilinear)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func triangles(data []float32) []*fauxgl.Triangle {
	out := make([]*fauxgl.Triangle, 0, len(data)/9)
	for i := 0; i+9 <= len(data); i += 9 {
		out = append(out, fauxgl.NewTriangleForPoints(
			vec(data[i:]), vec(data[i+3:]), vec(data[i+6:]),
		))
	}
	return out
}

func lines(data []float32) []*fauxgl.Line {
	out := make([]*fauxgl.Line, 0, len(data)/6)
	for i := 0; i+6 <= len(data); i += 6 {
		out = append(out, fauxgl.NewLineForPoints(vec(data[i:]), vec(data[i+3:])))
	}
	return out
}

func vec(p []float32) fauxgl.Vector {
	return fauxgl.V(float64(p[0]), float64(p[1]), float64(p[2]))
}

func toColor(c model.Color, opacity float32) fauxgl.Color {
	return fauxgl.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A * opacity)}
}

// toMatrix converts a column-major Mat4 to fauxgl's row-major Matrix.
func toMatrix(m math.Mat4) fauxgl.Matrix {
	f := func(row, col int) float64 { return float64(m[col*4+row]) }
	return fauxgl.Matrix{
		X00: f(0, 0), X01: f(0, 1), X02: f(0, 2), X03: f(0, 3),
		X10: f(1, 0), X11: f(1, 1), X12: f(1, 2), X13: f(1, 3),
		X20: f(2, 0), X21: f(2, 1), X22: f(2, 2), X23: f(2, 3),
		X30: f(3, 0), X31: f(3, 1), X32: f(3, 2), X33: f(3, 3),
	}
}
