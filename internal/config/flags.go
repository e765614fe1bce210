package config

import "flag"

// Flags are the command-line overrides shared by the viewer and the
// snapshot tool. Zero values leave the config untouched.
type Flags struct {
	Config     string
	Debug      bool
	Shape      string
	Info       bool
	Bounds     bool
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Shape, "shape", "", "Shape to show: cube, cuboid, cone, cylinder, pyramid")
	fs.BoolVar(&f.Info, "info", false, "Show labels on start")
	fs.BoolVar(&f.Bounds, "bounds", false, "Draw the bounding box")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Output width")
	fs.IntVar(&f.Height, "height", 0, "Output height")
}

// apply copies set flags over cfg. Width and height override both the
// window and the snapshot size.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Shape != "" {
		cfg.Viewer.Shape = f.Shape
	}
	if f.Info {
		cfg.Viewer.ShowInfo = true
	}
	if f.Bounds {
		cfg.Viewer.ShowBounds = true
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
		cfg.Snapshot.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
		cfg.Snapshot.Height = f.Height
	}
}
