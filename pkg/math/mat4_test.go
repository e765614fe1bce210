package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !near(result, Vec3{0, 0, -1}) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateEuler(t *testing.T) {
	if RotateEuler(Vec3{}) != Identity() {
		t.Error("RotateEuler(0) should be exactly the identity")
	}

	r := Vec3{0.3, -0.7, 1.1}
	want := RotateX(r.X).Mul(RotateY(r.Y)).Mul(RotateZ(r.Z))
	if RotateEuler(r) != want {
		t.Error("RotateEuler should compose X, then Y, then Z")
	}

	// A quarter turn of -90 degrees about X takes +Z to +Y.
	p := RotateEuler(Vec3{X: -math.Pi / 2}).TransformVec3(Vec3{0, 0, 1})
	if !near(p, Vec3{0, 1, 0}) {
		t.Errorf("Rx(-90) * +Z: got %v, want (0, 1, 0)", p)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(math.Pi/4, 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestProject(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	vp := Perspective(math.Pi/4, 1, 0.1, 100).Mul(view)

	ndc, w := vp.Project(Vec3{})
	if w <= 0 {
		t.Fatalf("origin should be in front of the camera, w = %f", w)
	}
	if abs(ndc.X) > 1e-5 || abs(ndc.Y) > 1e-5 {
		t.Errorf("origin should project to the centre, got %v", ndc)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("origin depth should be inside the clip range, got %f", ndc.Z)
	}

	ndc, _ = vp.Project(Vec3{1, 0, 0})
	if ndc.X <= 0 {
		t.Errorf("+X should project right of centre, got %v", ndc)
	}

	_, w = vp.Project(Vec3{0, 0, 10})
	if w > 0 {
		t.Errorf("point behind the camera should have w <= 0, got %f", w)
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(Vec3{0, 0, 5})
	if !near(got, Vec3{}) {
		t.Errorf("LookAt should move the eye to the origin, got %v", got)
	}
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func near(a, b Vec3) bool {
	const eps = 1e-5
	return abs(a.X-b.X) < eps && abs(a.Y-b.Y) < eps && abs(a.Z-b.Z) < eps
}
