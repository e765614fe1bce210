// Package catalog is the ordered registry of solids shown by the viewer:
// titles, descriptions and formula strings, plus navigation between them.
package catalog

import (
	"github.com/Faultbox/solidnet/internal/example"
	"github.com/Faultbox/solidnet/internal/shape"
)

// Formula is one labelled formula line.
type Formula struct {
	Label string
	Value string
}

// Entry describes one solid.
type Entry struct {
	Key         string
	Title       string
	LocalTitle  string
	Description string
	Formulas    []Formula
	Kind        shape.Kind
}

// DefaultExample is the worked example at the solid's default size.
func (e Entry) DefaultExample() example.Example {
	return example.For(e.Kind, shape.DefaultParams(e.Kind))
}

var entries = []Entry{
	{
		Key:         "cube",
		Title:       "Cube",
		LocalTitle:  "Kubus",
		Description: "A flat-faced solid with six congruent square faces and twelve equal edges.",
		Formulas: []Formula{
			{"Volume", "V = a³"},
			{"Surface area", "A = 6 × a²"},
		},
		Kind: shape.Cube,
	},
	{
		Key:         "cuboid",
		Title:       "Cuboid",
		LocalTitle:  "Balok",
		Description: "A flat-faced solid with three pairs of opposite, congruent rectangular faces.",
		Formulas: []Formula{
			{"Volume", "V = p × l × t"},
			{"Surface area", "A = 2(pl + pt + lt)"},
		},
		Kind: shape.Cuboid,
	},
	{
		Key:         "cone",
		Title:       "Cone",
		LocalTitle:  "Kerucut",
		Description: "A curved solid with a circular base and a lateral surface that meets at a single apex.",
		Formulas: []Formula{
			{"Volume", "V = (1/3)πr²h"},
			{"Surface area", "A = πr(r + s)"},
			{"Slant height", "s = √(r² + h²)"},
		},
		Kind: shape.Cone,
	},
	{
		Key:         "cylinder",
		Title:       "Cylinder",
		LocalTitle:  "Tabung",
		Description: "A curved solid with two parallel circles as base and lid, and a lateral surface that unrolls into a rectangle.",
		Formulas: []Formula{
			{"Volume", "V = πr²h"},
			{"Lateral area", "L = 2πrh"},
			{"Surface area", "A = 2πr(r + h)"},
		},
		Kind: shape.Cylinder,
	},
	{
		Key:         "pyramid",
		Title:       "Pyramid",
		LocalTitle:  "Limas",
		Description: "A flat-faced solid with a polygon base and triangular sides that meet at a single apex.",
		Formulas: []Formula{
			{"Volume", "V = (1/3) × base area × height"},
			{"Surface area", "A = s² + 4 × (1/2 × s × triangle height)"},
		},
		Kind: shape.Pyramid,
	},
}

// Entries returns every entry in display order.
func Entries() []Entry {
	return entries
}

// Keys returns the entry keys in display order.
func Keys() []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Lookup finds an entry by key.
func Lookup(key string) (Entry, bool) {
	i := index(key)
	if i < 0 {
		return Entry{}, false
	}
	return entries[i], true
}

// Nav returns the keys before and after key, wrapping at both ends. ok is
// false for an unknown key.
func Nav(key string) (prev, next string, ok bool) {
	i := index(key)
	if i < 0 {
		return "", "", false
	}
	n := len(entries)
	return entries[(i-1+n)%n].Key, entries[(i+1)%n].Key, true
}

func index(key string) int {
	for i, e := range entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}
