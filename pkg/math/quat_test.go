package math

import (
	"math"
	"testing"
)

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	got := q.ToMat4().TransformVec3(Vec3{1, 0, 0})

	if !near(got, Vec3{0, 0, -1}) {
		t.Errorf("Y rotation 90: got %v, want (0, 0, -1)", got)
	}
}

func TestQuatMatchesRotateX(t *testing.T) {
	angle := float32(0.8)
	q := QuatFromAxisAngle(Vec3{1, 0, 0}, angle).ToMat4()
	m := RotateX(angle)

	for i := range q {
		if abs(q[i]-m[i]) > 1e-5 {
			t.Errorf("element %d: quat %f, RotateX %f", i, q[i], m[i])
		}
	}
}

func TestQuatMul(t *testing.T) {
	axis := Vec3{0, 0, 1}
	a := QuatFromAxisAngle(axis, 0.25)
	b := QuatFromAxisAngle(axis, 0.5)
	c := a.Mul(b)
	want := QuatFromAxisAngle(axis, 0.75)

	if abs(c.Z-want.Z) > 1e-5 || abs(c.W-want.W) > 1e-5 {
		t.Errorf("Mul: got %v, want %v", c, want)
	}
}

func TestRotateAbout(t *testing.T) {
	if RotateAbout(Vec3{1, 2, 3}, Vec3{0, 1, 0}, 0) != Identity() {
		t.Error("RotateAbout with zero angle should be exactly the identity")
	}

	pivot := Vec3{1, 0, 1}
	m := RotateAbout(pivot, Vec3{0, 1, 0}, math.Pi/2)

	// Points on the axis stay put.
	if got := m.TransformVec3(Vec3{1, 5, 1}); !near(got, Vec3{1, 5, 1}) {
		t.Errorf("point on axis moved to %v", got)
	}
	// (1,0,-1) is two units behind the pivot; a quarter turn puts it on -X.
	if got := m.TransformVec3(Vec3{1, 0, -1}); !near(got, Vec3{-1, 0, 1}) {
		t.Errorf("RotateAbout: got %v, want (-1, 0, 1)", got)
	}
}
