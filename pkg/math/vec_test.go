package math

import (
	"testing"
)

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add() = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot() = %v, want 32", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross() = %v, want (0, 0, 1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
	if got := (Vec3{0, 3, 4}).Normalize(); !near(got, Vec3{0, 0.6, 0.8}) {
		t.Errorf("Normalize() = %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Vec3{1.1, -2.3, 0.7}
	b := Vec3{-4, 9.25, 3}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := Lerp(0.3, 0.9, 1); got != 0.9 {
		t.Errorf("Lerp(1) = %v, want 0.9", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp() = %v, want 1", got)
	}
}
