// Package lifecycle releases GPU-resident scene resources exactly once.
//
// A telescope scene graph shares materials across mesh nodes, so a naive
// teardown walk would release the same material several times. Manager
// keeps an identity-based set of already-released resources: Dispose is
// idempotent, and DisposeAll deduplicates shared references while walking
// the tree.
package lifecycle

import (
	"sync"
	"sync/atomic"

	"github.com/webbview/adaptive/scenegraph"
)

// Manager tracks geometry and material handles and guarantees each is
// released at most once across repeated scene teardowns and rebuilds.
//
// Manager is safe for concurrent use, though in the intended usage all
// calls come from the render-loop goroutine during setup and teardown.
type Manager struct {
	mu sync.Mutex

	// tracked holds resources whose ownership was transferred to the
	// manager and that have not been released yet.
	tracked map[scenegraph.Resource]struct{}

	// disposed holds every resource released so far. Keys compare by
	// pointer identity, which is what makes shared-reference dedup
	// correct: two mesh nodes pointing at the same material map to a
	// single entry.
	disposed map[scenegraph.Resource]struct{}

	released atomic.Uint64
	absorbed atomic.Uint64 // repeat dispose attempts swallowed
}

// NewManager creates an empty lifecycle manager.
func NewManager() *Manager {
	return &Manager{
		tracked:  make(map[scenegraph.Resource]struct{}),
		disposed: make(map[scenegraph.Resource]struct{}),
	}
}

// Track transfers ownership of a resource to the manager. Tracked
// resources are released by the next DisposeAll even if they are not
// reachable from the scene root. Tracking nil or an already-released
// resource is a no-op.
func (m *Manager) Track(r scenegraph.Resource) {
	if r == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, done := m.disposed[r]; done {
		return
	}
	m.tracked[r] = struct{}{}
}

// Dispose releases a resource, once. Repeat calls for the same resource
// are absorbed silently: shared references in a scene graph make double
// teardown attempts routine, not exceptional. Returns true if the
// underlying release ran on this call.
func (m *Manager) Dispose(r scenegraph.Resource) bool {
	if r == nil {
		return false
	}

	m.mu.Lock()
	if _, done := m.disposed[r]; done {
		m.mu.Unlock()
		m.absorbed.Add(1)
		return false
	}
	m.disposed[r] = struct{}{}
	delete(m.tracked, r)
	m.mu.Unlock()

	r.Release()
	m.released.Add(1)
	return true
}

// DisposeAll walks the scene graph rooted at root and releases every
// geometry and material reachable from it, then releases any remaining
// tracked resources. Nodes without geometry or a material are skipped; a
// resource referenced from several nodes is released exactly once.
//
// root may be nil, in which case only tracked resources are released.
func (m *Manager) DisposeAll(root *scenegraph.Node) {
	root.Walk(func(n *scenegraph.Node) {
		if n.Geometry != nil {
			m.Dispose(n.Geometry)
		}
		if n.Material != nil {
			m.Dispose(n.Material)
		}
	})

	m.mu.Lock()
	remaining := make([]scenegraph.Resource, 0, len(m.tracked))
	for r := range m.tracked {
		remaining = append(remaining, r)
	}
	m.mu.Unlock()

	for _, r := range remaining {
		m.Dispose(r)
	}
}

// Reset forgets all disposal history and tracked resources. Call it after
// a full teardown, before the next scene build, so handles reused by the
// allocator are not mistaken for already-released ones.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tracked = make(map[scenegraph.Resource]struct{})
	m.disposed = make(map[scenegraph.Resource]struct{})
}
