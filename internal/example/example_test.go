package example

import (
	"reflect"
	"testing"

	"github.com/Faultbox/solidnet/internal/shape"
)

func TestDefaultLines(t *testing.T) {
	tests := []struct {
		kind shape.Kind
		want []string
	}{
		{shape.Cube, []string{
			"a = 10 cm",
			"V = 10³ = 1000 cm³",
			"A = 6 × 10² = 600 cm²",
		}},
		{shape.Cuboid, []string{
			"p = 30 cm, l = 20 cm, t = 15 cm",
			"V = 30 × 20 × 15 = 9000 cm³",
			"A = 2(pl + pt + lt) = 2700 cm²",
		}},
		{shape.Cone, []string{
			"r = 10 cm, h = 20 cm",
			"s = √(10² + 20²) = 22.36 cm",
			"V = (1/3)πr²h = 2094.40 cm³",
			"A = πr(r + s) = 1016.64 cm²",
		}},
		{shape.Cylinder, []string{
			"r = 15 cm, h = 30 cm",
			"V = πr²h = 21206 cm³",
			"A = 2πr(r + h) = 4241 cm²",
		}},
		{shape.Pyramid, []string{
			"s = 10 cm, t = 10 cm",
			"V = (1/3) × 10² × 10 = 333 cm³",
			"A = 10² + 4 × (1/2 × 10 × 10) = 300 cm²",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := Lines(tt.kind, shape.DefaultParams(tt.kind))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestLinesFollowParams(t *testing.T) {
	p, ok := shape.DefaultParams(shape.Cube).Grow()
	if !ok {
		t.Fatal("Grow failed")
	}
	got := For(shape.Cube, p).Lines
	want := []string{"a = 11 cm", "V = 11³ = 1331 cm³", "A = 6 × 11² = 726 cm²"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestUnknownKind(t *testing.T) {
	if got := Lines(shape.Kind(99), shape.Params{}); got != nil {
		t.Errorf("Lines(unknown) = %q, want nil", got)
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		v    float64
		n    int
		want string
	}{
		{22.5, 0, "23"},
		{2094.3951, 2, "2094.40"},
		{-0.0001, 2, "0.00"},
	}
	for _, tt := range tests {
		if got := fixed(tt.v, tt.n); got != tt.want {
			t.Errorf("fixed(%v, %d) = %q, want %q", tt.v, tt.n, got, tt.want)
		}
	}
}
