package shape

import (
	"fmt"
	"math"
	"strings"
)

// Dimension describes one scalar parameter of a solid.
type Dimension struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
	Step    float64
}

// Params is an immutable set of dimension values. The first dimension is
// the primary one: growing or shrinking is refused once it sits at its bound.
type Params struct {
	dims   []Dimension
	values []float64
}

// NewParams returns params at their defaults.
func NewParams(dims []Dimension) Params {
	values := make([]float64, len(dims))
	for i, d := range dims {
		values[i] = d.Default
	}
	return Params{dims: dims, values: values}
}

// DefaultParams returns the default params of a kind, or empty params for
// an unknown kind.
func DefaultParams(k Kind) Params {
	v, ok := Lookup(k)
	if !ok {
		return Params{}
	}
	return NewParams(v.Dimensions)
}

// Len returns the number of dimensions.
func (p Params) Len() int { return len(p.values) }

// At returns the i-th value.
func (p Params) At(i int) float64 { return p.values[i] }

// Dimensions returns the dimension descriptors.
func (p Params) Dimensions() []Dimension { return p.dims }

// Value returns the value of the named dimension, or 0 if absent.
func (p Params) Value(name string) float64 {
	for i, d := range p.dims {
		if d.Name == name {
			return p.values[i]
		}
	}
	return 0
}

// With returns a copy with the named dimension set, clamped to its range.
func (p Params) With(name string, v float64) Params {
	out := p.clone()
	for i, d := range out.dims {
		if d.Name == name {
			out.values[i] = snap(clamp(v, d.Min, d.Max))
		}
	}
	return out
}

// Grow steps every dimension up. It reports false and returns p unchanged
// when the primary dimension is already at its maximum.
func (p Params) Grow() (Params, bool) {
	return p.step(+1)
}

// Shrink steps every dimension down. It reports false and returns p
// unchanged when the primary dimension is already at its minimum.
func (p Params) Shrink() (Params, bool) {
	return p.step(-1)
}

func (p Params) step(dir float64) (Params, bool) {
	if len(p.values) == 0 {
		return p, false
	}
	primary := p.dims[0]
	if dir > 0 && p.values[0] >= primary.Max-1e-9 {
		return p, false
	}
	if dir < 0 && p.values[0] <= primary.Min+1e-9 {
		return p, false
	}

	out := p.clone()
	changed := false
	for i, d := range out.dims {
		v := snap(clamp(out.values[i]+dir*d.Step, d.Min, d.Max))
		if v != out.values[i] {
			changed = true
		}
		out.values[i] = v
	}
	if !changed {
		return p, false
	}
	return out, true
}

// Equal reports whether both params hold the same values.
func (p Params) Equal(other Params) bool {
	if len(p.values) != len(other.values) {
		return false
	}
	for i := range p.values {
		if p.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (p Params) String() string {
	parts := make([]string, len(p.values))
	for i, d := range p.dims {
		parts[i] = fmt.Sprintf("%s=%g", d.Name, p.values[i])
	}
	return strings.Join(parts, " ")
}

func (p Params) clone() Params {
	values := make([]float64, len(p.values))
	copy(values, p.values)
	return Params{dims: p.dims, values: values}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// snap rounds to a 1e-6 grid so repeated steps do not drift.
func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
