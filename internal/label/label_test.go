package label

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/solidnet/internal/shape"
	"github.com/Faultbox/solidnet/pkg/math"
)

type sinkCall struct {
	op      string
	id      string
	pos     math.Vec2
	visible bool
}

type recordingSink struct {
	calls  []sinkCall
	labels map[string]bool
}

func newRecordingSink() *recordingSink {
	return &recordingSink{labels: map[string]bool{}}
}

func (s *recordingSink) CreateLabel(id, text string) {
	s.calls = append(s.calls, sinkCall{op: "create", id: id})
	s.labels[id] = false
}

func (s *recordingSink) SetLabel(id string, pos math.Vec2, visible bool) {
	s.calls = append(s.calls, sinkCall{op: "set", id: id, pos: pos, visible: visible})
	s.labels[id] = visible
}

func (s *recordingSink) RemoveLabel(id string) {
	s.calls = append(s.calls, sinkCall{op: "remove", id: id})
	delete(s.labels, id)
}

func camera() math.Mat4 {
	view := math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.Vec3{Y: 1})
	return math.Perspective(gomath.Pi/4, 1, 0.1, 100).Mul(view)
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		show     bool
		target   float64
		progress float64
		want     bool
	}{
		{"folded with info", true, 0, 0, true},
		{"info off", false, 0, 0, false},
		{"unfolding", true, 1, 0.1, false},
		{"folding back early", true, 0, 0.7, false},
		{"folding back late", true, 0, 0.2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.show, tt.target, tt.progress); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectCentre(t *testing.T) {
	anchors := []shape.Anchor{{
		ID:     "origin",
		At:     func(shape.Params) math.Vec3 { return math.Vec3{} },
		Offset: math.Vec2{X: 10, Y: -10},
	}}
	got := Project(anchors, shape.Params{}, math.Vec3{}, camera(), 800, 600)

	if !got[0].Visible {
		t.Fatal("origin should be visible")
	}
	if gomath.Abs(float64(got[0].Pos.X-410)) > 1e-3 || gomath.Abs(float64(got[0].Pos.Y-290)) > 1e-3 {
		t.Errorf("Pos = %v, want (410, 290)", got[0].Pos)
	}
}

func TestProjectAxes(t *testing.T) {
	anchors := []shape.Anchor{
		{ID: "up", At: func(shape.Params) math.Vec3 { return math.Vec3{Y: 1} }},
		{ID: "behind", At: func(shape.Params) math.Vec3 { return math.Vec3{Z: 10} }},
	}
	got := Project(anchors, shape.Params{}, math.Vec3{}, camera(), 100, 100)

	if got[0].Pos.Y >= 50 {
		t.Errorf("+Y should project above centre, got y=%v", got[0].Pos.Y)
	}
	if got[1].Visible {
		t.Error("point behind the camera should not be visible")
	}
}

func TestProjectorLifecycle(t *testing.T) {
	v, _ := shape.Lookup(shape.Cube)
	sink := newRecordingSink()
	p := NewProjector(sink, v.Anchors)

	p.Attach()
	if len(sink.labels) != 3 {
		t.Fatalf("labels after Attach = %d, want 3", len(sink.labels))
	}
	for id, vis := range sink.labels {
		if vis {
			t.Errorf("label %s should start hidden", id)
		}
	}

	p.Update(true, shape.DefaultParams(shape.Cube), math.Vec3{}, camera(), 800, 600)
	for id, vis := range sink.labels {
		if !vis {
			t.Errorf("label %s should be visible", id)
		}
	}

	p.Update(false, shape.DefaultParams(shape.Cube), math.Vec3{}, camera(), 800, 600)
	for id, vis := range sink.labels {
		if vis {
			t.Errorf("label %s should be hidden", id)
		}
	}

	p.Detach()
	p.Detach()
	if len(sink.labels) != 0 {
		t.Errorf("labels after Detach = %d", len(sink.labels))
	}
	removes := 0
	for _, c := range sink.calls {
		if c.op == "remove" {
			removes++
		}
	}
	if removes != 3 {
		t.Errorf("remove calls = %d, want 3", removes)
	}
}

func TestNilSink(t *testing.T) {
	p := NewProjector(nil, nil)
	p.Attach()
	p.Update(true, shape.Params{}, math.Vec3{}, camera(), 1, 1)
	p.Detach()
}
