// Copyright 2026 The webbview Authors
// SPDX-License-Identifier: MIT

package scenegraph

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (the viewer shell that owns the window and WebGPU device)
// implements DeviceHandle and passes it down; this module RECEIVES the
// device, it does not create one. The exception is the capability probe,
// which allocates a throwaway adapter of its own and releases it before
// returning.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// module-local name for the interface while staying compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used in tests and for headless runs where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
