package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/solidnet/internal/config"
)

func snapshotConfig(shape string) *config.Config {
	cfg := config.Default()
	cfg.Viewer.Shape = shape
	cfg.Snapshot.Width = 80
	cfg.Snapshot.Height = 60
	cfg.Snapshot.Supersample = 1
	return cfg
}

func TestRunWritesPNG(t *testing.T) {
	tests := []struct {
		shape string
		opts  options
	}{
		{"cube", options{state: "folded"}},
		{"cone", options{state: "unfolded"}},
		{"cylinder", options{state: "unfolded", frames: 10}},
		{"pyramid", options{state: "folded", grow: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.shape+"_"+tt.opts.state, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.png")
			tt.opts.out = path
			if err := run(snapshotConfig(tt.shape), tt.opts); err != nil {
				t.Fatalf("run: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
				t.Errorf("size %v, want 80x60", b)
			}
		})
	}
}

func TestRunRejectsBadState(t *testing.T) {
	err := run(snapshotConfig("cube"), options{state: "half", out: filepath.Join(t.TempDir(), "x.png")})
	if err == nil {
		t.Error("expected error for invalid state")
	}
}

func TestRunRejectsBadSupersample(t *testing.T) {
	err := run(snapshotConfig("cube"), options{state: "folded", supersample: 99, out: filepath.Join(t.TempDir(), "x.png")})
	if err == nil {
		t.Error("expected error for supersample 99")
	}
}
