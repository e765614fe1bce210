package scenegraph

import (
	"errors"
	"testing"

	"github.com/Faultbox/solidnet/internal/engine/model"
	"github.com/Faultbox/solidnet/pkg/math"
)

type fakeDevice struct {
	next  BufferID
	live  map[BufferID]bool
	frees map[BufferID]int
	fail  bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{live: map[BufferID]bool{}, frees: map[BufferID]int{}}
}

func (d *fakeDevice) Upload(Geometry) (BufferID, error) {
	if d.fail {
		return 0, errors.New("out of memory")
	}
	d.next++
	d.live[d.next] = true
	return d.next, nil
}

func (d *fakeDevice) Free(id BufferID) {
	d.frees[id]++
	delete(d.live, id)
}

func TestReleaseAllFreesOnce(t *testing.T) {
	dev := newFakeDevice()
	g := New(dev)
	for i := 0; i < 3; i++ {
		if _, err := g.Add("n", LayerSolid, Geometry{}, model.Style{}); err != nil {
			t.Fatal(err)
		}
	}

	g.ReleaseAll()
	g.ReleaseAll()
	if len(dev.live) != 0 {
		t.Errorf("live buffers = %d", len(dev.live))
	}
	for id, n := range dev.frees {
		if n != 1 {
			t.Errorf("buffer %d freed %d times", id, n)
		}
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d", g.Len())
	}
}

func TestAddFace(t *testing.T) {
	dev := newFakeDevice()
	g := New(dev)
	f := &model.Face{
		Name:     "quad",
		Vertices: []math.Vec3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Edges:    model.Ring(4),
	}
	n, err := g.AddFace(f, LayerSolid)
	if err != nil {
		t.Fatal(err)
	}
	if n.Name != "quad" || !n.Visible || n.Opacity != 1 || n.Transform != math.Identity() {
		t.Errorf("node = %+v", n)
	}
}

func TestAddError(t *testing.T) {
	dev := newFakeDevice()
	dev.fail = true
	g := New(dev)
	if _, err := g.Add("n", LayerGrid, Geometry{}, model.Style{}); err == nil {
		t.Error("Add should report upload failures")
	}
	if g.Len() != 0 {
		t.Errorf("failed Add left %d nodes", g.Len())
	}
}

func TestRemove(t *testing.T) {
	dev := newFakeDevice()
	g := New(dev)
	a, _ := g.Add("a", LayerSolid, Geometry{}, model.Style{})
	b, _ := g.Add("b", LayerSolid, Geometry{}, model.Style{})

	g.Remove(a)
	g.Remove(a)
	if g.Len() != 1 || g.Nodes()[0] != b {
		t.Errorf("nodes after Remove = %v", g.Nodes())
	}
	if dev.frees[a.Buffer] != 1 {
		t.Errorf("a freed %d times", dev.frees[a.Buffer])
	}
}
