// Package adaptive provides closed-loop rendering quality control for the
// 3D telescope model view.
//
// # Overview
//
// adaptive decides what level of rendering quality a device can sustain and
// adjusts it at runtime. A one-shot capability probe (see the probe
// subpackage) seeds an initial QualityConfig; a per-frame FrameMonitor
// estimates FPS over a rolling window; and a Controller steps individual
// quality axes (antialiasing, shadows, texture resolution, pixel ratio) up
// or down, one step per evaluation, with a hysteresis band that prevents
// oscillation.
//
// # Quick Start
//
//	result := probe.New().Probe()
//	ctrl := adaptive.NewController(result.Config,
//	    adaptive.WithTier(result.Tier),
//	    adaptive.WithConsumer(applyToRenderer))
//
//	// In the render loop, once per frame:
//	stats := ctrl.Frame(nowMillis)
//
// Consumers registered with WithConsumer (or OnChange) receive a snapshot of
// the new QualityConfig whenever the controller changes it, never every
// frame.
//
// # Architecture
//
// The module is organized into:
//   - adaptive (this package): QualityConfig, FrameMonitor, Controller
//   - probe: device/GPU capability detection via gogpu/wgpu
//   - lod: distance-banded detail tier selection
//   - lifecycle: exactly-once disposal of GPU-resident resources
//   - scenegraph: the owned node tree the lifecycle manager traverses
//   - frameloop: GLFW-paced render loop host with ordered teardown
//
// All per-frame state (the FPS window, the current config) is owned by the
// Controller and mutated only from the render-loop goroutine.
package adaptive
