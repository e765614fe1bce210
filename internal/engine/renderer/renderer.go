// Package renderer draws a scene graph with OpenGL 4.1: flat-coloured faces
// with per-node opacity, their outlines, the ground grid and a composited
// 2D label overlay.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/internal/engine/shader"
	"github.com/Faultbox/solidnet/internal/logger"
	"github.com/Faultbox/solidnet/internal/scenegraph"
	"github.com/Faultbox/solidnet/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background model.Color
}

// buffer is the GPU side of one scene node.
type buffer struct {
	triVAO, triVBO   uint32
	triCount         int32
	lineVAO, lineVBO uint32
	lineCount        int32
}

// Renderer owns all GL objects. It must be created after the GL context
// and used from the thread that owns it.
type Renderer struct {
	config Config

	solid   *shader.Program
	overlay *shader.Program

	buffers map[scenegraph.BufferID]*buffer
	next    scenegraph.BufferID

	quadVAO, quadVBO uint32
	overlayTex       uint32
	overlayW         int
	overlayH         int
}

// New creates a new renderer.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		config:  cfg,
		buffers: make(map[scenegraph.BufferID]*buffer),
	}

	var err error
	if r.solid, err = shader.New(solidVertexShader, solidFragmentShader); err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}
	if r.overlay, err = shader.New(overlayVertexShader, overlayFragmentShader); err != nil {
		r.solid.Delete()
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	r.createQuad()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.LINE_SMOOTH)
	bg := cfg.Background
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close frees every GL object, including buffers still held by graphs.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("leaked_buffers", len(r.buffers)))
	for id := range r.buffers {
		r.Free(id)
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
		gl.DeleteBuffers(1, &r.quadVBO)
		r.quadVAO, r.quadVBO = 0, 0
	}
	if r.overlayTex != 0 {
		gl.DeleteTextures(1, &r.overlayTex)
		r.overlayTex = 0
	}
	r.solid.Delete()
	r.overlay.Delete()
}

// Resize sets the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width, r.config.Height = max(width, 1), max(height, 1)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	logger.Debug("renderer resized",
		zap.Int("width", r.config.Width),
		zap.Int("height", r.config.Height),
	)
}

// Upload creates vertex arrays for the geometry.
func (r *Renderer) Upload(g scenegraph.Geometry) (scenegraph.BufferID, error) {
	b := &buffer{}
	if len(g.Triangles) > 0 {
		b.triVAO, b.triVBO = uploadPositions(g.Triangles)
		b.triCount = int32(len(g.Triangles) / 3)
	}
	if len(g.Lines) > 0 {
		b.lineVAO, b.lineVBO = uploadPositions(g.Lines)
		b.lineCount = int32(len(g.Lines) / 3)
	}
	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		r.release(b)
		return 0, fmt.Errorf("uploading geometry: gl error 0x%x", errCode)
	}
	r.next++
	r.buffers[r.next] = b
	return r.next, nil
}

func uploadPositions(data []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return vao, vbo
}

// Free deletes a buffer. Unknown IDs are ignored.
func (r *Renderer) Free(id scenegraph.BufferID) {
	b, ok := r.buffers[id]
	if !ok {
		return
	}
	delete(r.buffers, id)
	r.release(b)
}

func (r *Renderer) release(b *buffer) {
	if b.triVAO != 0 {
		gl.DeleteVertexArrays(1, &b.triVAO)
		gl.DeleteBuffers(1, &b.triVBO)
	}
	if b.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &b.lineVAO)
		gl.DeleteBuffers(1, &b.lineVBO)
	}
}

// Render clears the frame and draws the graph layer by layer.
func (r *Renderer) Render(g *scenegraph.Graph, viewProj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.solid.Use()
	gl.UniformMatrix4fv(r.solid.Uniform("uViewProj"), 1, false, &viewProj[0])

	for _, layer := range []scenegraph.Layer{scenegraph.LayerGrid, scenegraph.LayerSolid, scenegraph.LayerNet, scenegraph.LayerDebug} {
		for _, n := range g.Nodes() {
			if n.Layer != layer || !n.Visible || n.Opacity <= 0 {
				continue
			}
			b, ok := r.buffers[n.Buffer]
			if !ok {
				continue
			}
			r.drawNode(n, b)
		}
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawNode(n *scenegraph.Node, b *buffer) {
	gl.UniformMatrix4fv(r.solid.Uniform("uModel"), 1, false, &n.Transform[0])
	gl.Uniform1f(r.solid.Uniform("uOpacity"), n.Opacity)

	// Translucent faces must not hide what is behind them.
	gl.DepthMask(n.Opacity >= 1)
	if b.triCount > 0 {
		setColor(r.solid, n.Style.Fill)
		gl.Enable(gl.POLYGON_OFFSET_FILL)
		gl.PolygonOffset(1, 1)
		gl.BindVertexArray(b.triVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, b.triCount)
		gl.Disable(gl.POLYGON_OFFSET_FILL)
	}
	if b.lineCount > 0 {
		setColor(r.solid, n.Style.Edge)
		gl.BindVertexArray(b.lineVAO)
		gl.DrawArrays(gl.LINES, 0, b.lineCount)
	}
	gl.DepthMask(true)
}

func setColor(p *shader.Program, c model.Color) {
	gl.Uniform4f(p.Uniform("uColor"), c.R, c.G, c.B, c.A)
}

func (r *Renderer) createQuad() {
	// Position (XY), TexCoord (UV). Image rows run top to bottom.
	vertices := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// DrawOverlay composites img over the frame. img must match the viewport
// size; it is re-uploaded on every call.
func (r *Renderer) DrawOverlay(img *image.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	if r.overlayTex == 0 {
		gl.GenTextures(1, &r.overlayTex)
		gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	if w != r.overlayW || h != r.overlayH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
		r.overlayW, r.overlayH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.Disable(gl.DEPTH_TEST)
	// The canvas holds premultiplied alpha.
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	r.overlay.Use()
	gl.Uniform1i(r.overlay.Uniform("uTexture"), 0)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
