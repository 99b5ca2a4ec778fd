package lod

import (
	"errors"
	"testing"

	"github.com/webbview/adaptive"
	"github.com/webbview/adaptive/lifecycle"
	"github.com/webbview/adaptive/scenegraph"
)

func lodConfig(maxDistance float64) adaptive.QualityConfig {
	return adaptive.QualityConfig{LODEnabled: true, MaxLODDistance: maxDistance}
}

func TestTierForBands(t *testing.T) {
	cfg := lodConfig(25)

	tests := []struct {
		name     string
		distance float64
		want     Tier
	}{
		{"close up", 1, TierHigh},
		{"just inside high band", cfg.MaxLODDistance/3 - 0.001, TierHigh},
		{"exactly one third", cfg.MaxLODDistance / 3, TierMedium},
		{"mid band", 20, TierMedium},
		{"exactly max distance", cfg.MaxLODDistance, TierLow},
		{"beyond max distance", 100, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFor(tt.distance, cfg); got != tt.want {
				t.Errorf("TierFor(%v) = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestTierForLODDisabled(t *testing.T) {
	cfg := adaptive.QualityConfig{LODEnabled: false, MaxLODDistance: 25}

	for _, distance := range []float64{0, 10, 25, 1000} {
		if got := TierFor(distance, cfg); got != TierHigh {
			t.Errorf("TierFor(%v) with LOD disabled = %v, want high", distance, got)
		}
	}
}

func testTierSet(name string) TierSet {
	bundle := func(tier string) Bundle {
		return Bundle{
			Geometry: scenegraph.NewMeshGeometry(name+"-"+tier, 100, nil),
			Material: scenegraph.NewBasicMaterial(name+"-"+tier+"-mat", nil),
		}
	}
	return TierSet{High: bundle("high"), Medium: bundle("medium"), Low: bundle("low")}
}

func TestSelect(t *testing.T) {
	s := NewSelector()
	s.Register("primary-mirror", testTierSet("primary-mirror"))
	cfg := lodConfig(25)

	b, err := s.Select("primary-mirror", 2, cfg)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if b.Material.Label() != "primary-mirror-high-mat" {
		t.Errorf("expected high tier bundle, got %s", b.Material.Label())
	}

	b, err = s.Select("primary-mirror", 30, cfg)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if b.Material.Label() != "primary-mirror-low-mat" {
		t.Errorf("expected low tier bundle, got %s", b.Material.Label())
	}
}

func TestSelectUnknownComponent(t *testing.T) {
	s := NewSelector()
	_, err := s.Select("secondary-mirror", 2, lodConfig(25))
	if !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("expected ErrComponentNotFound, got %v", err)
	}
}

type countingMaterial struct {
	label    string
	releases int
}

func (m *countingMaterial) Release()      { m.releases++ }
func (m *countingMaterial) Label() string { return m.label }

// TestTeardown transfers ownership to the lifecycle manager, with a
// material shared across tiers released exactly once.
func TestTeardown(t *testing.T) {
	s := NewSelector()
	mgr := lifecycle.NewManager()

	shared := &countingMaterial{label: "beryllium"}
	set := TierSet{
		High:   Bundle{Geometry: scenegraph.NewMeshGeometry("high", 5000, nil), Material: shared},
		Medium: Bundle{Geometry: scenegraph.NewMeshGeometry("medium", 800, nil), Material: shared},
		Low:    Bundle{Geometry: scenegraph.NewMeshGeometry("low", 120, nil), Material: shared},
	}
	s.Register("primary-mirror", set)

	s.Teardown(mgr)

	if shared.releases != 1 {
		t.Errorf("shared material released %d times, expected 1", shared.releases)
	}
	if s.Components() != 0 {
		t.Errorf("expected empty registry after teardown, got %d components", s.Components())
	}
	// 3 geometries + 1 shared material.
	if got := mgr.Stats().Released; got != 4 {
		t.Errorf("expected 4 releases, got %d", got)
	}
}

func TestTierString(t *testing.T) {
	if TierHigh.String() != "high" || TierMedium.String() != "medium" || TierLow.String() != "low" {
		t.Error("unexpected tier names")
	}
}
