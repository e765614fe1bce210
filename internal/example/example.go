// Package example formats the worked numeric example shown beside a solid:
// its dimensions in centimetres, volume and surface area.
package example

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Faultbox/solidnet/internal/shape"
)

// Scale factors from model units to centimetres.
const (
	CentimetresPerUnit        = 10
	PyramidCentimetresPerUnit = 5
)

// Example is the payload delivered to the host on build and rebuild.
type Example struct {
	Lines []string
}

// For returns the example for a kind at the given params.
func For(kind shape.Kind, p shape.Params) Example {
	return Example{Lines: Lines(kind, p)}
}

// Lines returns the formula lines, or nil for an unknown kind.
func Lines(kind shape.Kind, p shape.Params) []string {
	switch kind {
	case shape.Cube:
		a := p.Value("a") * CentimetresPerUnit
		return []string{
			fmt.Sprintf("a = %s cm", fixed(a, 0)),
			fmt.Sprintf("V = %s³ = %s cm³", fixed(a, 0), fixed(a*a*a, 0)),
			fmt.Sprintf("A = 6 × %s² = %s cm²", fixed(a, 0), fixed(6*a*a, 0)),
		}

	case shape.Cuboid:
		l := p.Value("length") * CentimetresPerUnit
		w := p.Value("width") * CentimetresPerUnit
		h := p.Value("height") * CentimetresPerUnit
		return []string{
			fmt.Sprintf("p = %s cm, l = %s cm, t = %s cm", fixed(l, 0), fixed(w, 0), fixed(h, 0)),
			fmt.Sprintf("V = %s × %s × %s = %s cm³", fixed(l, 0), fixed(w, 0), fixed(h, 0), fixed(l*w*h, 0)),
			fmt.Sprintf("A = 2(pl + pt + lt) = %s cm²", fixed(2*(l*w+l*h+w*h), 0)),
		}

	case shape.Cone:
		r := p.Value("radius") * CentimetresPerUnit
		h := p.Value("height") * CentimetresPerUnit
		s := shape.SlantHeight(r, h)
		return []string{
			fmt.Sprintf("r = %s cm, h = %s cm", fixed(r, 0), fixed(h, 0)),
			fmt.Sprintf("s = √(%s² + %s²) = %s cm", fixed(r, 0), fixed(h, 0), fixed(s, 2)),
			fmt.Sprintf("V = (1/3)πr²h = %s cm³", fixed(math.Pi*r*r*h/3, 2)),
			fmt.Sprintf("A = πr(r + s) = %s cm²", fixed(math.Pi*r*(r+s), 2)),
		}

	case shape.Cylinder:
		r := p.Value("radius") * CentimetresPerUnit
		h := p.Value("height") * CentimetresPerUnit
		return []string{
			fmt.Sprintf("r = %s cm, h = %s cm", fixed(r, 0), fixed(h, 0)),
			fmt.Sprintf("V = πr²h = %s cm³", fixed(math.Pi*r*r*h, 0)),
			fmt.Sprintf("A = 2πr(r + h) = %s cm²", fixed(2*math.Pi*r*(r+h), 0)),
		}

	case shape.Pyramid:
		// The lateral faces use the body height as triangle height.
		a := p.Value("half_side") * 2 * PyramidCentimetresPerUnit
		t := p.Value("height") * PyramidCentimetresPerUnit
		return []string{
			fmt.Sprintf("s = %s cm, t = %s cm", fixed(a, 0), fixed(t, 0)),
			fmt.Sprintf("V = (1/3) × %s² × %s = %s cm³", fixed(a, 0), fixed(t, 0), fixed(a*a*t/3, 0)),
			fmt.Sprintf("A = %s² + 4 × (1/2 × %s × %s) = %s cm²",
				fixed(a, 0), fixed(a, 0), fixed(t, 0), fixed(a*a+4*(a*t/2), 0)),
		}
	}
	return nil
}

// fixed formats v with n decimals, rounding halves away from zero.
func fixed(v float64, n int) string {
	scale := math.Pow(10, float64(n))
	r := math.Round(v*scale) / scale
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', n, 64)
}
