package lifecycle

import (
	"testing"

	"github.com/webbview/adaptive/scenegraph"
)

// countingResource records how many times the underlying release ran.
type countingResource struct {
	label    string
	releases int
}

func (r *countingResource) Release() { r.releases++ }

func (r *countingResource) VertexCount() int { return 0 }

func (r *countingResource) Label() string { return r.label }

func TestDisposeIdempotent(t *testing.T) {
	m := NewManager()
	r := &countingResource{}

	if !m.Dispose(r) {
		t.Error("first dispose should release")
	}
	if m.Dispose(r) {
		t.Error("second dispose should be absorbed")
	}
	if r.releases != 1 {
		t.Errorf("underlying release ran %d times, expected 1", r.releases)
	}

	stats := m.Stats()
	if stats.Released != 1 || stats.Absorbed != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestDisposeNil(t *testing.T) {
	m := NewManager()
	if m.Dispose(nil) {
		t.Error("disposing nil should be a no-op")
	}
}

// TestDisposeAllSharedMaterial builds two mesh nodes referencing the same
// material and checks it is released exactly once.
func TestDisposeAllSharedMaterial(t *testing.T) {
	m := NewManager()

	shared := &countingResource{label: "gold-coating"}
	root := scenegraph.NewNode("telescope")
	mirrorA := root.AddChild(scenegraph.NewNode("segment-a"))
	mirrorA.Geometry = &countingResource{label: "segment-a-mesh"}
	mirrorA.Material = shared
	mirrorB := root.AddChild(scenegraph.NewNode("segment-b"))
	mirrorB.Geometry = &countingResource{label: "segment-b-mesh"}
	mirrorB.Material = shared

	m.DisposeAll(root)

	if shared.releases != 1 {
		t.Errorf("shared material released %d times, expected 1", shared.releases)
	}
	if got := m.Stats().Released; got != 3 {
		t.Errorf("expected 3 releases (2 geometries + 1 material), got %d", got)
	}
}

// TestDisposeAllSkipsBareNodes: group nodes without geometry or material
// are traversed but not disposed.
func TestDisposeAllSkipsBareNodes(t *testing.T) {
	m := NewManager()

	root := scenegraph.NewNode("root")
	group := root.AddChild(scenegraph.NewNode("sunshield-group"))
	leaf := group.AddChild(scenegraph.NewNode("layer-1"))
	geo := &countingResource{}
	leaf.Geometry = geo

	m.DisposeAll(root)

	if geo.releases != 1 {
		t.Errorf("leaf geometry released %d times, expected 1", geo.releases)
	}
	if got := m.Stats().Released; got != 1 {
		t.Errorf("expected exactly 1 release, got %d", got)
	}
}

func TestDisposeAllNilRoot(t *testing.T) {
	m := NewManager()
	tracked := &countingResource{}
	m.Track(tracked)

	m.DisposeAll(nil)

	if tracked.releases != 1 {
		t.Errorf("tracked resource released %d times, expected 1", tracked.releases)
	}
}

// TestTrackedUnreachableResources: resources handed to Track are released
// by DisposeAll even when the scene graph does not reference them.
func TestTrackedUnreachableResources(t *testing.T) {
	m := NewManager()

	offscreen := &countingResource{label: "staging-buffer"}
	m.Track(offscreen)

	root := scenegraph.NewNode("root")
	geo := &countingResource{}
	root.Geometry = geo
	m.Track(geo) // tracked and reachable: still one release

	m.DisposeAll(root)

	if offscreen.releases != 1 {
		t.Errorf("tracked resource released %d times, expected 1", offscreen.releases)
	}
	if geo.releases != 1 {
		t.Errorf("tracked+reachable resource released %d times, expected 1", geo.releases)
	}
	if got := m.Stats().Tracked; got != 0 {
		t.Errorf("expected no tracked resources after DisposeAll, got %d", got)
	}
}

func TestTrackAfterDispose(t *testing.T) {
	m := NewManager()
	r := &countingResource{}

	m.Dispose(r)
	m.Track(r) // late track of a released resource is ignored
	m.DisposeAll(nil)

	if r.releases != 1 {
		t.Errorf("released %d times, expected 1", r.releases)
	}
}

// TestResetAllowsRebuild: after Reset, a rebuilt scene reusing a handle
// is disposed again.
func TestResetAllowsRebuild(t *testing.T) {
	m := NewManager()
	r := &countingResource{}

	m.Dispose(r)
	m.Reset()

	if !m.Dispose(r) {
		t.Error("dispose after reset should release again")
	}
	if r.releases != 2 {
		t.Errorf("released %d times across two scenes, expected 2", r.releases)
	}
}

func TestManagerStatsString(t *testing.T) {
	m := NewManager()
	m.Track(&countingResource{})

	got := m.Stats().String()
	want := "Lifecycle[1 tracked, 0 released, 0 absorbed]"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
