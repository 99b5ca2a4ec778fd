//go:build nogpu

package probe

import "errors"

// ErrNoAdapter is returned when no graphics adapter can be created.
var ErrNoAdapter = errors.New("probe: no graphics adapter available")

// nogpuQuerier always fails, driving the probe to its low-end fallback.
type nogpuQuerier struct{}

// defaultQuerier returns the stub querier for nogpu builds.
func defaultQuerier() AdapterQuerier {
	return nogpuQuerier{}
}

func (nogpuQuerier) QueryAdapter() (AdapterInfo, error) {
	return AdapterInfo{}, ErrNoAdapter
}
