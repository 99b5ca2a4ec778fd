package lifecycle

import "fmt"

// ManagerStats contains resource lifecycle statistics.
type ManagerStats struct {
	// Tracked is the number of resources currently awaiting release.
	Tracked int

	// Released is the total number of underlying releases performed.
	Released uint64

	// Absorbed is the number of repeat dispose attempts swallowed by
	// the idempotency guard.
	Absorbed uint64
}

// String returns a human-readable string of lifecycle stats.
func (s ManagerStats) String() string {
	return fmt.Sprintf("Lifecycle[%d tracked, %d released, %d absorbed]",
		s.Tracked, s.Released, s.Absorbed)
}

// Stats returns current lifecycle statistics.
func (m *Manager) Stats() ManagerStats {
	m.mu.Lock()
	tracked := len(m.tracked)
	m.mu.Unlock()

	return ManagerStats{
		Tracked:  tracked,
		Released: m.released.Load(),
		Absorbed: m.absorbed.Load(),
	}
}
