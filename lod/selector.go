// Package lod maps named telescope components and viewer distance to one
// of three precomputed detail tiers.
package lod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/webbview/adaptive"
	"github.com/webbview/adaptive/lifecycle"
	"github.com/webbview/adaptive/scenegraph"
)

// ErrComponentNotFound is returned when a component name was never
// registered. This is a scene-authoring bug, not a runtime condition, so
// the selector fails loudly instead of fabricating a tier.
var ErrComponentNotFound = errors.New("lod: component not found")

// Tier identifies one of the three detail levels.
type Tier uint8

const (
	// TierHigh is full detail, used close up.
	TierHigh Tier = iota

	// TierMedium is reduced detail for the mid band.
	TierMedium

	// TierLow is minimum detail, forced beyond MaxLODDistance.
	TierLow
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	default:
		return "unknown"
	}
}

// Bundle is one detail tier's geometry and material for a component.
type Bundle struct {
	Geometry scenegraph.Geometry
	Material scenegraph.Material
}

// TierSet holds the three bundles for a named component. Bundles are
// constructed once at scene build time by geometry collaborators and
// shared read-only across frames; ownership passes to the lifecycle
// manager at teardown via Selector.Teardown.
type TierSet struct {
	High   Bundle
	Medium Bundle
	Low    Bundle
}

// bundle returns the tier's bundle.
func (s TierSet) bundle(t Tier) Bundle {
	switch t {
	case TierMedium:
		return s.Medium
	case TierLow:
		return s.Low
	default:
		return s.High
	}
}

// TierFor computes the detail tier for a viewer distance under the given
// config. With LOD disabled the highest tier is always used. Otherwise
// two breakpoints partition distance into three bands: below a third of
// MaxLODDistance is high, below MaxLODDistance is medium, and at or
// beyond MaxLODDistance low is forced.
func TierFor(distance float64, cfg adaptive.QualityConfig) Tier {
	if !cfg.LODEnabled {
		return TierHigh
	}
	switch {
	case distance < cfg.MaxLODDistance/3:
		return TierHigh
	case distance < cfg.MaxLODDistance:
		return TierMedium
	default:
		return TierLow
	}
}

// Selector is the registry of per-component tier sets.
//
// Registration happens at scene build time; Select runs on the render
// loop. The mutex keeps the rare build-time writes safe against reads.
type Selector struct {
	mu         sync.RWMutex
	components map[string]TierSet
}

// NewSelector creates an empty selector.
func NewSelector() *Selector {
	return &Selector{components: make(map[string]TierSet)}
}

// Register adds or replaces the tier set for a component.
func (s *Selector) Register(name string, set TierSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components[name] = set
}

// Select returns the bundle to render for a component at the given viewer
// distance. An unknown component name is a caller contract violation and
// returns ErrComponentNotFound.
func (s *Selector) Select(name string, distance float64, cfg adaptive.QualityConfig) (Bundle, error) {
	s.mu.RLock()
	set, ok := s.components[name]
	s.mu.RUnlock()
	if !ok {
		return Bundle{}, fmt.Errorf("%w: %q", ErrComponentNotFound, name)
	}
	return set.bundle(TierFor(distance, cfg)), nil
}

// Components returns the number of registered components.
func (s *Selector) Components() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.components)
}

// Teardown transfers ownership of every registered bundle to the
// lifecycle manager and clears the registry. The manager deduplicates, so
// tier sets sharing a material across tiers or components release it
// once.
func (s *Selector) Teardown(m *lifecycle.Manager) {
	s.mu.Lock()
	components := s.components
	s.components = make(map[string]TierSet)
	s.mu.Unlock()

	for _, set := range components {
		for _, b := range []Bundle{set.High, set.Medium, set.Low} {
			if b.Geometry != nil {
				m.Dispose(b.Geometry)
			}
			if b.Material != nil {
				m.Dispose(b.Material)
			}
		}
	}
}
