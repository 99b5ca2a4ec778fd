//go:build !nogpu

package probe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/webbview/adaptive"
)

// ErrNoAdapter is returned when no graphics adapter can be created.
var ErrNoAdapter = errors.New("probe: no graphics adapter available")

// wgpuQuerier queries the adapter through gogpu/wgpu. It allocates a
// throwaway instance, adapter, and device, and releases them all before
// returning; the probe leaves no GPU state behind.
type wgpuQuerier struct{}

// defaultQuerier returns the wgpu-backed querier.
func defaultQuerier() AdapterQuerier {
	return wgpuQuerier{}
}

// QueryAdapter requests a high-performance adapter and reads its
// identification and limits.
func (wgpuQuerier) QueryAdapter() (AdapterInfo, error) {
	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	instance := core.NewInstance(desc)

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return AdapterInfo{}, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	defer func() {
		if err := core.AdapterDrop(adapterID); err != nil {
			adaptive.Logger().Warn("probe: error releasing adapter",
				slog.Any("error", err))
		}
	}()

	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return AdapterInfo{}, fmt.Errorf("failed to get adapter info: %w", err)
	}

	ai := AdapterInfo{
		Name:   info.Name,
		Vendor: info.Vendor,
		Driver: info.Driver,
	}

	// Device limits need a device. The probe config survives without
	// them, so limit-query failures only cost the antialiasing check.
	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:            "adaptive-probe",
		RequiredFeatures: nil,
		RequiredLimits:   gputypes.DefaultLimits(),
	})
	if err == nil {
		if limits, lerr := core.GetDeviceLimits(deviceID); lerr == nil {
			ai.MaxTextureDimension2D = limits.MaxTextureDimension2D
		}
		if derr := core.DeviceDrop(deviceID); derr != nil {
			adaptive.Logger().Warn("probe: error releasing device",
				slog.Any("error", derr))
		}
	}

	return ai, nil
}
