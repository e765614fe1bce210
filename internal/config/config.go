// Package config handles viewer and snapshot configuration.
package config

import (
	"fmt"

	"github.com/Faultbox/solidnet/internal/logger"
	"github.com/Faultbox/solidnet/internal/shape"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// ViewerConfig holds what the interactive viewer opens with.
type ViewerConfig struct {
	Shape      string `yaml:"shape"`
	ShowInfo   bool   `yaml:"show_info"`
	ShowBounds bool   `yaml:"show_bounds"`
}

// SnapshotConfig holds headless rendering settings.
type SnapshotConfig struct {
	OutputDir   string `yaml:"output_dir"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			Shape: shape.Cube.String(),
		},
		Snapshot: SnapshotConfig{
			OutputDir:   "snapshots",
			Width:       800,
			Height:      600,
			Supersample: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if _, err := shape.ParseKind(c.Viewer.Shape); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		return fmt.Errorf("snapshot: invalid size %dx%d", c.Snapshot.Width, c.Snapshot.Height)
	}
	if c.Snapshot.Supersample < 1 || c.Snapshot.Supersample > 8 {
		return fmt.Errorf("snapshot: supersample %d out of range 1..8", c.Snapshot.Supersample)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Kind returns the configured initial shape. Validate guarantees it parses.
func (c *Config) Kind() shape.Kind {
	k, err := shape.ParseKind(c.Viewer.Shape)
	if err != nil {
		return shape.Cube
	}
	return k
}
