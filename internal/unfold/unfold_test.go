package unfold

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/solidnet/internal/shape"
	"github.com/Faultbox/solidnet/pkg/math"
)

const frame = 1.0 / 60

func build(t *testing.T, k shape.Kind) (*shape.Model, *Controller) {
	t.Helper()
	m, err := shape.Build(k, shape.DefaultParams(k))
	if err != nil {
		t.Fatalf("Build(%v) error = %v", k, err)
	}
	v, _ := shape.Lookup(k)
	return m, New(v.Motion)
}

func TestUnfoldConverges(t *testing.T) {
	for _, k := range shape.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			_, c := build(t, k)
			c.Unfold()
			if c.State() != Animating {
				t.Fatalf("state after Unfold = %v", c.State())
			}

			prev := gomath.Abs(c.Progress() - 1)
			for i := 0; i < 10000 && c.Animating(); i++ {
				c.Advance(frame)
				d := gomath.Abs(c.Progress() - 1)
				if d >= prev {
					t.Fatalf("step %d: distance %v did not decrease from %v", i, d, prev)
				}
				prev = d
			}
			if c.Animating() {
				t.Fatal("unfold did not settle")
			}
			if c.Progress() != 1 || c.State() != Unfolded {
				t.Errorf("settled at %v (%v), want exactly 1", c.Progress(), c.State())
			}
		})
	}
}

func TestFoldReturnsToZero(t *testing.T) {
	_, c := build(t, shape.Cone)
	c.Unfold()
	for c.Animating() {
		c.Advance(frame)
	}
	c.Fold()
	for i := 0; i < 10000 && c.Animating(); i++ {
		c.Advance(frame)
	}
	if c.Progress() != 0 || c.State() != Folded {
		t.Errorf("after fold: progress %v, state %v", c.Progress(), c.State())
	}
}

func TestIdempotentTarget(t *testing.T) {
	_, c := build(t, shape.Cube)
	c.Unfold()
	c.Advance(frame)
	p := c.Progress()
	c.Unfold()
	if c.Progress() != p || c.Target() != 1 {
		t.Errorf("second Unfold changed progress %v -> %v", p, c.Progress())
	}
}

func TestAdvanceClampsStep(t *testing.T) {
	_, a := build(t, shape.Cuboid)
	_, b := build(t, shape.Cuboid)
	a.Unfold()
	b.Unfold()
	a.Advance(10)
	b.Advance(MaxStep)
	if a.Progress() != b.Progress() {
		t.Errorf("large dt not clamped: %v vs %v", a.Progress(), b.Progress())
	}
	if b.Advance(-1) {
		t.Error("negative dt should not move progress")
	}
}

func TestAdvanceIdle(t *testing.T) {
	_, c := build(t, shape.Pyramid)
	if c.Advance(frame) {
		t.Error("Advance should be a no-op while not animating")
	}
	if c.State() != Folded {
		t.Errorf("state = %v, want folded", c.State())
	}
}

func TestReset(t *testing.T) {
	_, c := build(t, shape.Cylinder)
	c.Unfold()
	c.Advance(frame)
	c.Reset()
	if c.Progress() != 0 || c.Target() != 0 || c.Animating() {
		t.Errorf("after Reset: %v %v %v", c.Progress(), c.Target(), c.Animating())
	}
}

func TestEasedEndpoints(t *testing.T) {
	for _, k := range []shape.Kind{shape.Cube, shape.Cone} {
		_, c := build(t, k)
		if c.Eased(0) != 0 || c.Eased(1) != 1 {
			t.Errorf("%v: eased endpoints %v %v", k, c.Eased(0), c.Eased(1))
		}
		if got := c.Eased(0.5); gomath.Abs(float64(got)-0.5) > 1e-6 {
			t.Errorf("%v: eased midpoint %v, want 0.5", k, got)
		}
	}
}

func TestFaceTransformEndpoints(t *testing.T) {
	for _, k := range shape.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			m, c := build(t, k)
			offset := math.Translate(m.Offset)
			for i := range m.Folded.Faces {
				f := &m.Folded.Faces[i]

				got, op := c.FaceTransform(m, i, 0)
				want := offset.Mul(math.Translate(f.Folded.Position).Mul(math.RotateEuler(f.Folded.Rotation)))
				if got != want || op != f.Folded.Opacity {
					t.Fatalf("face %d at progress 0 is not the folded pose", i)
				}

				if f.Stagger.Window > 0 {
					continue
				}
				got, op = c.FaceTransform(m, i, 1)
				want = offset.Mul(math.Translate(f.Unfolded.Position).Mul(math.RotateEuler(f.Unfolded.Rotation)))
				if h := m.HingeOf(i); h != nil {
					want = want.Mul(math.RotateAbout(h.Pivot, h.Axis, h.Angle))
				}
				if got != want || op != f.Unfolded.Opacity {
					t.Fatalf("face %d at progress 1 is not the unfolded pose", i)
				}
			}
		})
	}
}

func TestConeCrossFade(t *testing.T) {
	m, c := build(t, shape.Cone)
	if c.NetOpacity(m, 0) != 0 || c.NetOpacity(m, 1) != 1 {
		t.Error("net should fade from 0 to 1")
	}
	for i := range m.Folded.Faces {
		if _, op := c.FaceTransform(m, i, 1); op != 0 {
			t.Errorf("face %d opacity at progress 1 = %v, want 0", i, op)
		}
	}

	// Later wedges start later.
	_, first := c.FaceTransform(m, 0, 0.3)
	m0, _ := c.FaceTransform(m, 0, 0.05)
	m24, _ := c.FaceTransform(m, 24, 0.05)
	if first <= 0 || first >= 1 {
		t.Errorf("mid-fade opacity %v", first)
	}
	if m0 == m24 {
		t.Error("staggered wedges should differ early in the animation")
	}

	cube, cc := build(t, shape.Cube)
	if cc.NetOpacity(cube, 1) != 0 {
		t.Error("cube does not cross-fade")
	}
}
