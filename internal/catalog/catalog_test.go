package catalog

import (
	"testing"

	"github.com/Faultbox/solidnet/internal/shape"
)

func TestEntriesMatchShapes(t *testing.T) {
	kinds := shape.Kinds()
	if len(Entries()) != len(kinds) {
		t.Fatalf("%d entries for %d kinds", len(Entries()), len(kinds))
	}
	for i, e := range Entries() {
		if e.Kind != kinds[i] {
			t.Errorf("entry %d kind %v, want %v", i, e.Kind, kinds[i])
		}
		if e.Key != e.Kind.String() {
			t.Errorf("entry key %q does not name kind %v", e.Key, e.Kind)
		}
		if len(e.Formulas) < 2 {
			t.Errorf("%s has %d formulas", e.Key, len(e.Formulas))
		}
		if len(e.DefaultExample().Lines) == 0 {
			t.Errorf("%s has no default example", e.Key)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("cylinder")
	if !ok || e.Title != "Cylinder" || e.LocalTitle != "Tabung" {
		t.Errorf("Lookup(cylinder) = %+v, %v", e, ok)
	}
	if _, ok := Lookup("sphere"); ok {
		t.Error("Lookup(sphere) should fail")
	}
}

func TestNavWraps(t *testing.T) {
	tests := []struct {
		key, prev, next string
	}{
		{"cube", "pyramid", "cuboid"},
		{"cone", "cuboid", "cylinder"},
		{"pyramid", "cylinder", "cube"},
	}
	for _, tt := range tests {
		prev, next, ok := Nav(tt.key)
		if !ok || prev != tt.prev || next != tt.next {
			t.Errorf("Nav(%s) = %s, %s, %v; want %s, %s", tt.key, prev, next, ok, tt.prev, tt.next)
		}
	}
	if _, _, ok := Nav("torus"); ok {
		t.Error("Nav(torus) should fail")
	}
}

func TestKeysOrder(t *testing.T) {
	want := []string{"cube", "cuboid", "cone", "cylinder", "pyramid"}
	got := Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v", got)
		}
	}
}
