// Package session runs one interactive solid: it builds the model into a
// scene graph, drives the unfold animation once per frame, renders, keeps
// the overlay labels in place and exposes the control surface used by the
// viewer and the snapshot tool.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/solidnet/internal/engine/camera"
	"github.com/Faultbox/solidnet/internal/engine/debug"
	"github.com/Faultbox/solidnet/internal/engine/frameloop"
	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/internal/example"
	"github.com/Faultbox/solidnet/internal/label"
	"github.com/Faultbox/solidnet/internal/logger"
	"github.com/Faultbox/solidnet/internal/scenegraph"
	"github.com/Faultbox/solidnet/internal/shape"
	"github.com/Faultbox/solidnet/internal/unfold"
	"github.com/Faultbox/solidnet/pkg/math"
)

const (
	gridSize      = 20
	gridDivisions = 20
	boundsPadding = 0.05
)

var (
	gridStyle   = model.Style{Edge: model.Color{R: 0.6, G: 0.6, B: 0.6, A: 0.5}}
	boundsStyle = model.Style{Edge: model.RGB(255, 80, 80)}
)

// Mount is the surface a session draws into.
type Mount interface {
	Size() (width, height int)
	// OnResize registers fn to run when the surface changes size and
	// returns a function that removes it.
	OnResize(fn func()) (remove func())
}

// Renderer is the render backend: it owns geometry buffers and draws a
// graph with a view-projection matrix.
type Renderer interface {
	scenegraph.Device
	Resize(width, height int)
	Render(g *scenegraph.Graph, viewProj math.Mat4)
}

// Scheduler delivers frame callbacks. *frameloop.Loop implements it.
type Scheduler interface {
	Request(cb frameloop.Callback) frameloop.ID
	Cancel(id frameloop.ID)
}

// Options configures New. Overlay and OnExampleChange are optional.
type Options struct {
	Mount           Mount
	Device          Renderer
	Overlay         label.Sink
	Loop            Scheduler
	OnExampleChange func(example.Example)
	// ShowBounds draws the model's bounding box.
	ShowBounds bool
}

// Session is one live solid. All methods must be called from the thread
// that steps the frame loop.
type Session struct {
	kind    shape.Kind
	variant *shape.Variant
	params  shape.Params
	opts    Options
	log     *zap.Logger

	model  *shape.Model
	graph  *scenegraph.Graph
	faces  []*scenegraph.Node
	net    []*scenegraph.Node
	bounds *scenegraph.Node

	ctrl   *unfold.Controller
	cam    *camera.OrbitCamera
	labels *label.Projector

	width, height int
	showInfo      bool
	labelsShown   bool
	example       example.Example

	frame        frameloop.ID
	removeResize func()
	destroyed    bool
}

// New builds a session for kind with its default params and starts its
// frame loop. Errors are *ConfigurationError.
func New(kind shape.Kind, opts Options) (*Session, error) {
	v, ok := shape.Lookup(kind)
	if !ok {
		return nil, &ConfigurationError{Kind: kind.String(), Err: shape.ErrUnknownKind}
	}
	if err := validate(opts); err != nil {
		return nil, &ConfigurationError{Kind: kind.String(), Err: err}
	}
	w, h := opts.Mount.Size()
	if w <= 0 || h <= 0 {
		return nil, &ConfigurationError{Kind: kind.String(), Err: ErrZeroSize}
	}

	s := &Session{
		kind:    kind,
		variant: v,
		params:  shape.DefaultParams(kind),
		opts:    opts,
		log:     logger.Named("session").With(zap.Stringer("shape", kind)),
		graph:   scenegraph.New(opts.Device),
		ctrl:    unfold.New(v.Motion),
		cam:     camera.NewOrbitCamera(camera.Setup(v.View)),
		labels:  label.NewProjector(opts.Overlay, v.Anchors),
		width:   w,
		height:  h,
	}
	s.cam.SetViewport(w, h)
	opts.Device.Resize(w, h)

	m, err := shape.Build(kind, s.params)
	if err != nil {
		return nil, &ConfigurationError{Kind: kind.String(), Err: err}
	}
	if err := s.upload(m); err != nil {
		s.graph.ReleaseAll()
		return nil, &ConfigurationError{Kind: kind.String(), Err: err}
	}

	s.labels.Attach()
	s.removeResize = opts.Mount.OnResize(s.Resize)
	s.emitExample()
	s.frame = opts.Loop.Request(s.onFrame)

	s.log.Info("session started",
		zap.Int("faces", len(m.Folded.Faces)),
		zap.Int("width", w), zap.Int("height", h))
	return s, nil
}

func validate(opts Options) error {
	switch {
	case opts.Mount == nil:
		return ErrNoMount
	case opts.Device == nil:
		return ErrNoDevice
	case opts.Loop == nil:
		return ErrNoLoop
	}
	return nil
}

// upload adds the grid, every folded face, the net when it cross-fades and
// the optional bounds box. On error the caller releases the graph.
func (s *Session) upload(m *shape.Model) error {
	grid := scenegraph.Geometry{Lines: debug.GridLines(gridSize, gridDivisions, s.variant.GridY)}
	if _, err := s.graph.Add("grid", scenegraph.LayerGrid, grid, gridStyle); err != nil {
		return err
	}

	faces := make([]*scenegraph.Node, len(m.Folded.Faces))
	for i := range m.Folded.Faces {
		n, err := s.graph.AddFace(&m.Folded.Faces[i], scenegraph.LayerSolid)
		if err != nil {
			return err
		}
		faces[i] = n
	}

	var net []*scenegraph.Node
	if m.CrossFade {
		for i := range m.Unfolded.Faces {
			n, err := s.graph.AddFace(&m.Unfolded.Faces[i], scenegraph.LayerNet)
			if err != nil {
				return err
			}
			net = append(net, n)
		}
	}

	var bounds *scenegraph.Node
	if s.opts.ShowBounds {
		geom := scenegraph.Geometry{Lines: debug.BoundsWireframe(m.Folded.Bounds, boundsPadding)}
		n, err := s.graph.Add("bounds", scenegraph.LayerDebug, geom, boundsStyle)
		if err != nil {
			return err
		}
		bounds = n
	}

	s.model, s.faces, s.net, s.bounds = m, faces, net, bounds
	s.applyTransforms()
	return nil
}

func (s *Session) onFrame(dt float64) {
	s.frame = 0
	if s.destroyed {
		return
	}
	s.Tick(dt)
	if !s.destroyed {
		s.frame = s.opts.Loop.Request(s.onFrame)
	}
}

// Tick runs one frame: advance the animation, pose the faces, update the
// camera, render, then place the labels.
func (s *Session) Tick(dt float64) {
	if s.destroyed {
		return
	}
	s.ctrl.Advance(dt)
	s.applyTransforms()
	s.cam.Update()
	viewProj := s.cam.ViewProj()
	s.opts.Device.Render(s.graph, viewProj)

	s.labelsShown = label.Visible(s.showInfo, s.ctrl.Target(), s.ctrl.Progress())
	s.labels.Update(s.labelsShown, s.params, s.model.Offset, viewProj, s.width, s.height)
}

func (s *Session) applyTransforms() {
	p := s.ctrl.Progress()
	for i, n := range s.faces {
		n.Transform, n.Opacity = s.ctrl.FaceTransform(s.model, i, p)
		n.Visible = n.Opacity > 0
	}
	if len(s.net) > 0 {
		op := s.ctrl.NetOpacity(s.model, p)
		offset := math.Translate(s.model.Offset)
		for _, n := range s.net {
			n.Transform, n.Opacity = offset, op
			n.Visible = op > 0
		}
	}
	if s.bounds != nil {
		s.bounds.Transform = math.Translate(s.model.Offset)
	}
}

// Resize re-reads the mount size. A zero dimension counts as 1.
func (s *Session) Resize() {
	if s.destroyed {
		return
	}
	w, h := s.opts.Mount.Size()
	s.width, s.height = max(w, 1), max(h, 1)
	s.cam.SetViewport(s.width, s.height)
	s.opts.Device.Resize(s.width, s.height)
}

// Unfold starts opening the solid into its net and hides the labels.
func (s *Session) Unfold() {
	if s.destroyed {
		return
	}
	s.showInfo = false
	s.ctrl.Unfold()
	s.log.Debug("unfold")
}

// Fold starts closing the net back into the solid.
func (s *Session) Fold() {
	if s.destroyed {
		return
	}
	s.ctrl.Fold()
	s.log.Debug("fold")
}

// ToggleInfo switches the labels on or off. It does nothing while the
// solid is unfolding or unfolded.
func (s *Session) ToggleInfo() {
	if s.destroyed || s.ctrl.Target() == 1 {
		return
	}
	s.showInfo = !s.showInfo
}

func (s *Session) ZoomIn() {
	if !s.destroyed {
		s.cam.ZoomIn()
	}
}

func (s *Session) ZoomOut() {
	if !s.destroyed {
		s.cam.ZoomOut()
	}
}

// Orbit feeds a drag delta in pixels to the camera.
func (s *Session) Orbit(dx, dy float32) {
	if !s.destroyed {
		s.cam.HandleDrag(dx, dy)
	}
}

// Dolly zooms by a scroll wheel delta.
func (s *Session) Dolly(delta float32) {
	if !s.destroyed {
		s.cam.HandleZoom(delta)
	}
}

// ResetView restores the initial camera pose.
func (s *Session) ResetView() {
	if !s.destroyed {
		s.cam.Reset()
	}
}

// AddSize grows the solid by one step.
func (s *Session) AddSize() {
	if s.destroyed {
		return
	}
	p, ok := s.params.Grow()
	s.resize(p, ok)
}

// ReduceSize shrinks the solid by one step.
func (s *Session) ReduceSize() {
	if s.destroyed {
		return
	}
	p, ok := s.params.Shrink()
	s.resize(p, ok)
}

func (s *Session) resize(p shape.Params, ok bool) {
	if !ok {
		s.log.Debug("size at bound", zap.Stringer("params", s.params))
		return
	}
	m, err := shape.Build(s.kind, p)
	if err != nil {
		s.log.Error("rebuild failed", zap.Stringer("params", p), zap.Error(err))
		return
	}

	s.ctrl.Reset()
	s.showInfo = false
	s.graph.ReleaseAll()
	s.faces, s.net, s.bounds = nil, nil, nil
	s.params = p
	if err := s.upload(m); err != nil {
		s.log.Error("upload failed", zap.Error(err))
		s.graph.ReleaseAll()
		s.faces, s.net, s.bounds = nil, nil, nil
		return
	}
	s.emitExample()
	s.log.Debug("rebuilt", zap.Stringer("params", p))
}

func (s *Session) emitExample() {
	s.example = example.For(s.kind, s.params)
	if s.opts.OnExampleChange != nil {
		s.opts.OnExampleChange(s.example)
	}
}

// Destroy stops the frame loop and releases every resource the session
// holds. Later calls, and every control method afterwards, do nothing.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.frame != 0 {
		s.opts.Loop.Cancel(s.frame)
		s.frame = 0
	}
	if s.removeResize != nil {
		s.removeResize()
		s.removeResize = nil
	}
	s.labels.Detach()
	s.labelsShown = false
	s.graph.ReleaseAll()
	s.faces, s.net, s.bounds = nil, nil, nil
	s.log.Info("session destroyed")
}

func (s *Session) Kind() shape.Kind         { return s.kind }
func (s *Session) Params() shape.Params     { return s.params }
func (s *Session) State() unfold.State      { return s.ctrl.State() }
func (s *Session) Progress() float64        { return s.ctrl.Progress() }
func (s *Session) Target() float64          { return s.ctrl.Target() }
func (s *Session) ShowInfo() bool           { return s.showInfo }
func (s *Session) Example() example.Example { return s.example }
func (s *Session) Model() *shape.Model      { return s.model }
func (s *Session) Destroyed() bool          { return s.destroyed }

// Camera returns the session camera.
func (s *Session) Camera() *camera.OrbitCamera { return s.cam }

// LabelsVisible reports whether labels were shown on the last frame.
func (s *Session) LabelsVisible() bool { return s.labelsShown }

// Graph exposes the scene graph for backends that draw outside Tick.
func (s *Session) Graph() *scenegraph.Graph { return s.graph }
