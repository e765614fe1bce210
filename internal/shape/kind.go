// Package shape builds the folded solids and their flattened nets from a
// declarative per-variant topology table.
package shape

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a solid variant.
type Kind int

// Supported solids.
const (
	Cube Kind = iota
	Cuboid
	Cone
	Cylinder
	Pyramid
)

// ErrUnknownKind is returned for kinds outside the variant table.
var ErrUnknownKind = errors.New("unknown shape kind")

var kindNames = [...]string{
	Cube:     "cube",
	Cuboid:   "cuboid",
	Cone:     "cone",
	Cylinder: "cylinder",
	Pyramid:  "pyramid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a name such as "cube" to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every supported kind in catalog order.
func Kinds() []Kind {
	return []Kind{Cube, Cuboid, Cone, Cylinder, Pyramid}
}
