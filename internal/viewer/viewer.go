// Package viewer runs the interactive window: one session at a time,
// keyboard and mouse control, and the label overlay.
package viewer

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/solidnet/internal/catalog"
	"github.com/Faultbox/solidnet/internal/config"
	"github.com/Faultbox/solidnet/internal/engine/debug"
	"github.com/Faultbox/solidnet/internal/engine/frameloop"
	"github.com/Faultbox/solidnet/internal/engine/input"
	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/internal/engine/renderer"
	"github.com/Faultbox/solidnet/internal/engine/window"
	"github.com/Faultbox/solidnet/internal/example"
	"github.com/Faultbox/solidnet/internal/logger"
	"github.com/Faultbox/solidnet/internal/overlay"
	"github.com/Faultbox/solidnet/internal/session"
)

const title = "SolidNet"

// maxFrameTime caps the delta fed to the frame loop after a stall.
const maxFrameTime = 0.25

var background = model.Color{R: 0.96, G: 0.96, B: 0.94, A: 1}

// Viewer is the interactive application.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings
	loop     *frameloop.Loop
	canvas   *overlay.Canvas
	shots    *debug.ScreenshotCapture

	session *session.Session
	entry   catalog.Entry
	running bool
	capture bool
}

// New opens the window and the first shape from cfg.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		log:      logger.Named("viewer"),
		input:    input.New(),
		bindings: input.DefaultBindings(),
		loop:     frameloop.New(),
		canvas:   overlay.NewCanvas(),
		shots:    debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, "solidnet"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w, h := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{Width: w, Height: h, Background: background})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.open(cfg.Kind().String()); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

// open replaces the current session with the shape named key.
func (v *Viewer) open(key string) error {
	entry, ok := catalog.Lookup(key)
	if !ok {
		return fmt.Errorf("unknown shape %q", key)
	}
	if v.session != nil {
		v.session.Destroy()
		v.session = nil
	}

	v.entry = entry
	s, err := session.New(entry.Kind, session.Options{
		Mount:           v.window,
		Device:          v.renderer,
		Overlay:         v.canvas,
		Loop:            v.loop,
		OnExampleChange: v.showExample,
		ShowBounds:      v.cfg.Viewer.ShowBounds,
	})
	if err != nil {
		return fmt.Errorf("opening %s: %w", key, err)
	}
	v.session = s
	if v.cfg.Viewer.ShowInfo {
		s.ToggleInfo()
	}
	v.log.Info("shape opened", zap.String("shape", entry.Key), zap.String("title", entry.Title))
	return nil
}

func (v *Viewer) showExample(e example.Example) {
	v.window.SetTitle(fmt.Sprintf("%s - %s | %s", title, v.entry.Title, strings.Join(e.Lines, "   ")))
	for _, line := range e.Lines {
		v.log.Info("example", zap.String("shape", v.entry.Key), zap.String("line", line))
	}
}

// Run drives the event loop until the window closes.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")
	for v.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, e := range v.input.Events() {
			if err := v.handle(e); err != nil {
				return err
			}
		}
		if !v.running {
			break
		}

		// Steps the session: advance, pose, camera, render, labels.
		v.loop.Step(dt)

		w, h := v.window.Size()
		v.renderer.DrawOverlay(v.canvas.Frame(w, h))
		if v.capture {
			v.capture = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (v *Viewer) handle(e input.Event) error {
	s := v.session
	switch e.Type {
	case input.EventWindowResize:
		v.window.NotifyResize()
	case input.EventDrag:
		scale := v.window.Scale()
		s.Orbit(e.DX*scale, e.DY*scale)
	case input.EventWheel:
		s.Dolly(e.Wheel)
	case input.EventKeyDown:
		return v.perform(v.bindings.Action(e))
	}
	return nil
}

func (v *Viewer) perform(a input.Action) error {
	s := v.session
	switch a {
	case input.ActionUnfold:
		s.Unfold()
	case input.ActionFold:
		s.Fold()
	case input.ActionToggleInfo:
		s.ToggleInfo()
	case input.ActionZoomIn:
		s.ZoomIn()
	case input.ActionZoomOut:
		s.ZoomOut()
	case input.ActionGrow:
		s.AddSize()
	case input.ActionShrink:
		s.ReduceSize()
	case input.ActionResetView:
		s.ResetView()
	case input.ActionNextShape, input.ActionPrevShape:
		prev, next, _ := catalog.Nav(v.entry.Key)
		key := next
		if a == input.ActionPrevShape {
			key = prev
		}
		return v.open(key)
	case input.ActionScreenshot:
		v.capture = true
	case input.ActionQuit:
		v.running = false
	}
	if a != input.ActionNone {
		v.log.Debug("action", zap.Stringer("action", a), zap.Stringer("state", s.State()))
	}
	return nil
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	name, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", name))
}

// Close destroys the session and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.session != nil {
		v.session.Destroy()
		v.session = nil
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
