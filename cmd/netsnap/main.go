// Command netsnap renders one solid headlessly to a PNG, folded or part way
// through its unfold animation, and prints its worked example.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/solidnet/internal/config"
	"github.com/Faultbox/solidnet/internal/engine/debug"
	"github.com/Faultbox/solidnet/internal/engine/frameloop"
	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/internal/engine/softrender"
	"github.com/Faultbox/solidnet/internal/example"
	"github.com/Faultbox/solidnet/internal/logger"
	"github.com/Faultbox/solidnet/internal/overlay"
	"github.com/Faultbox/solidnet/internal/session"
	"github.com/Faultbox/solidnet/internal/unfold"
)

const frame = 1.0 / 60

// settleFrames bounds how long an unfold may run when -frames is 0.
const settleFrames = 1200

var background = model.Color{R: 0.96, G: 0.96, B: 0.94, A: 1}

// fixedMount is a mount of constant size.
type fixedMount struct{ w, h int }

func (m fixedMount) Size() (int, int)       { return m.w, m.h }
func (m fixedMount) OnResize(func()) func() { return func() {} }

type options struct {
	state       string
	frames      int
	grow        int
	out         string
	supersample int
}

func main() {
	var flags config.Flags
	var opts options
	flags.Register(flag.CommandLine)
	flag.StringVar(&opts.state, "state", "folded", "folded or unfolded")
	flag.IntVar(&opts.frames, "frames", 0, "Frames of 1/60 s to advance after unfolding; 0 runs to the end")
	flag.IntVar(&opts.grow, "grow", 0, "Grow (positive) or shrink (negative) steps before rendering")
	flag.StringVar(&opts.out, "out", "", "Output PNG path")
	flag.IntVar(&opts.supersample, "supersample", 0, "Supersampling factor")
	flag.Parse()

	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Options{Level: cfg.Logging.Level, Console: os.Stderr}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, opts); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts options) error {
	if opts.state != "folded" && opts.state != "unfolded" {
		return fmt.Errorf("invalid -state %q", opts.state)
	}
	if opts.supersample > 0 {
		cfg.Snapshot.Supersample = opts.supersample
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	kind := cfg.Kind()
	w, h := cfg.Snapshot.Width, cfg.Snapshot.Height

	dev := softrender.New(softrender.Config{
		Width:       w,
		Height:      h,
		Supersample: cfg.Snapshot.Supersample,
		Background:  background,
	})
	canvas := overlay.NewCanvas()
	loop := frameloop.New()

	var ex example.Example
	s, err := session.New(kind, session.Options{
		Mount:           fixedMount{w, h},
		Device:          dev,
		Overlay:         canvas,
		Loop:            loop,
		OnExampleChange: func(e example.Example) { ex = e },
		ShowBounds:      cfg.Viewer.ShowBounds,
	})
	if err != nil {
		return err
	}
	defer s.Destroy()

	for i := 0; i < opts.grow; i++ {
		s.AddSize()
	}
	for i := 0; i > opts.grow; i-- {
		s.ReduceSize()
	}
	if cfg.Viewer.ShowInfo {
		s.ToggleInfo()
	}

	if opts.state == "unfolded" {
		s.Unfold()
		n := opts.frames
		if n <= 0 {
			n = settleFrames
		}
		for i := 0; i < n && (opts.frames > 0 || s.State() != unfold.Unfolded); i++ {
			loop.Step(frame)
		}
	}
	// One more frame renders the final pose and places the labels.
	loop.Step(frame)

	img := dev.Image()
	canvas.Draw(img)

	path := opts.out
	if path == "" {
		path = filepath.Join(cfg.Snapshot.OutputDir, fmt.Sprintf("%s_%s.png", kind, opts.state))
	}
	if err := debug.WritePNG(path, img); err != nil {
		return err
	}

	for _, line := range ex.Lines {
		fmt.Println(line)
	}
	logger.Info("snapshot written",
		zap.String("path", path),
		zap.Stringer("shape", kind),
		zap.Stringer("state", s.State()),
		zap.Float64("progress", s.Progress()),
		zap.Bool("labels", s.LabelsVisible()),
	)
	return nil
}
