// Copyright 2026 The webbview Authors
// SPDX-License-Identifier: MIT

// Package probe performs one-shot device and GPU capability detection to
// seed the initial rendering quality configuration.
//
// Detection is a best-effort heuristic: platform identifiers and a
// logical-core threshold classify low-end devices, and the adapter's
// vendor string classifies the GpuTier by substring match. The heuristic
// lives entirely behind Prober so it can be swapped without touching the
// quality controller. Probing never fails the caller; when no graphics
// adapter can be created the probe falls back to the low-end
// configuration.
package probe

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/webbview/adaptive"
)

// Distance thresholds seeded into the initial config.
const (
	// LowEndMaxLODDistance forces aggressive tier switching on
	// constrained devices.
	LowEndMaxLODDistance = 15

	// DesktopMaxLODDistance is the default for capable devices.
	DesktopMaxLODDistance = 25
)

const lowEndCoreThreshold = 4

// mobileMarkers are platform identifiers that classify a device as
// mobile, matched case-insensitively against the user agent.
var mobileMarkers = []string{
	"android", "iphone", "ipad", "ipod", "mobile", "webos", "blackberry",
}

// Environment describes the host the viewer is running on.
type Environment struct {
	// UserAgent is the embedding shell's user-agent string, empty for
	// native runs.
	UserAgent string

	// LogicalCores is the logical CPU count.
	LogicalCores int

	// DevicePixelRatio is the display's native scale factor.
	DevicePixelRatio float64

	// OS is the operating system identifier (runtime.GOOS for native
	// runs).
	OS string
}

// DetectEnvironment captures the local environment. The user agent is
// left empty; embedding shells that know theirs should fill it in.
func DetectEnvironment() Environment {
	return Environment{
		LogicalCores:     runtime.NumCPU(),
		DevicePixelRatio: 1.0,
		OS:               runtime.GOOS,
	}
}

// AdapterInfo is what the probe learned about the graphics adapter.
type AdapterInfo struct {
	// Name is the adapter name (e.g. "NVIDIA GeForce RTX 3080").
	Name string

	// Vendor is the adapter vendor string.
	Vendor string

	// Driver is the driver version string, possibly empty.
	Driver string

	// MaxTextureDimension2D is the largest supported 2D texture edge.
	MaxTextureDimension2D uint32
}

// extendedSupport reports whether the adapter has the extended context
// support required for antialiasing (large render targets for MSAA
// resolve).
func (a AdapterInfo) extendedSupport() bool {
	return a.MaxTextureDimension2D >= 8192
}

// AdapterQuerier obtains adapter information, typically by allocating a
// throwaway graphics context that is released before returning.
type AdapterQuerier interface {
	QueryAdapter() (AdapterInfo, error)
}

// Result is the outcome of a probe.
type Result struct {
	// Config is the initial quality configuration.
	Config adaptive.QualityConfig

	// Tier is the GPU classification, which also bounds later quality
	// upgrades.
	Tier adaptive.GpuTier

	// Adapter is the raw adapter information for the telemetry UI.
	// Zero-valued when probing fell back.
	Adapter AdapterInfo

	// Fallback is true when no adapter could be created and the safe
	// low-end configuration was used.
	Fallback bool
}

// Prober performs capability detection. The zero configuration probes the
// local environment through the default wgpu-backed querier.
type Prober struct {
	env     Environment
	querier AdapterQuerier
}

// ProbeOption configures a Prober during creation.
type ProbeOption func(*Prober)

// WithEnvironment overrides the detected environment.
func WithEnvironment(env Environment) ProbeOption {
	return func(p *Prober) {
		p.env = env
	}
}

// WithQuerier overrides the adapter querier. Tests use this to inject
// fake adapters.
func WithQuerier(q AdapterQuerier) ProbeOption {
	return func(p *Prober) {
		p.querier = q
	}
}

// New creates a Prober.
func New(opts ...ProbeOption) *Prober {
	p := &Prober{
		env:     DetectEnvironment(),
		querier: defaultQuerier(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe classifies the device and returns the initial quality
// configuration. It runs once, synchronously, before the render loop
// starts; it never fails, degrading to the low-end configuration when the
// adapter query does.
func (p *Prober) Probe() Result {
	info, err := p.querier.QueryAdapter()
	if err != nil {
		adaptive.Logger().Info("adapter query failed, using low-end fallback",
			slog.Any("error", err))
		return Result{
			Config:   lowEndConfig(p.env),
			Tier:     adaptive.GpuTierLow,
			Fallback: true,
		}
	}

	tier := classifyTier(info)
	lowEnd := isMobile(p.env) || p.env.LogicalCores < lowEndCoreThreshold

	var cfg adaptive.QualityConfig
	if lowEnd {
		cfg = lowEndConfig(p.env)
		tier = adaptive.GpuTierLow
	} else {
		cfg = desktopConfig(p.env, tier, info)
	}

	adaptive.Logger().Info("capability probe complete",
		slog.String("adapter", info.Name),
		slog.String("vendor", info.Vendor),
		slog.String("tier", tier.String()),
		slog.Bool("low_end", lowEnd))

	return Result{Config: cfg, Tier: tier, Adapter: info}
}

// classifyTier maps the adapter identifier to a coarse tier by substring
// match: intel parts are integrated, nvidia and amd parts discrete,
// anything else middle of the road.
func classifyTier(info AdapterInfo) adaptive.GpuTier {
	id := strings.ToLower(info.Vendor + " " + info.Name)
	switch {
	case strings.Contains(id, "intel"):
		return adaptive.GpuTierLow
	case strings.Contains(id, "nvidia"), strings.Contains(id, "amd"):
		return adaptive.GpuTierHigh
	default:
		return adaptive.GpuTierMedium
	}
}

// isMobile pattern-matches the user agent and OS against mobile platform
// identifiers.
func isMobile(env Environment) bool {
	if env.OS == "android" || env.OS == "ios" {
		return true
	}
	ua := strings.ToLower(env.UserAgent)
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

// lowEndConfig is the safe configuration for mobile and low-end devices,
// also used as the fallback when no adapter exists.
func lowEndConfig(env Environment) adaptive.QualityConfig {
	return adaptive.QualityConfig{
		LODEnabled:         true,
		MaxLODDistance:     LowEndMaxLODDistance,
		FrustumCulling:     true,
		InstancedRendering: true,
		TextureResolution:  adaptive.TextureLow,
		ShadowQuality:      adaptive.ShadowOff,
		Antialiasing:       false,
		DevicePixelRatio:   clampRatio(env.DevicePixelRatio, 1.0),
	}
}

// desktopConfig seeds the configuration for capable devices from the GPU
// tier.
func desktopConfig(env Environment, tier adaptive.GpuTier, info AdapterInfo) adaptive.QualityConfig {
	texture := adaptive.TextureMedium
	shadow := adaptive.ShadowLow
	if tier == adaptive.GpuTierHigh {
		texture = adaptive.TextureHigh
		shadow = adaptive.ShadowMedium
	}

	return adaptive.QualityConfig{
		LODEnabled:         true,
		MaxLODDistance:     DesktopMaxLODDistance,
		FrustumCulling:     true,
		InstancedRendering: true,
		TextureResolution:  texture,
		ShadowQuality:      shadow,
		Antialiasing:       info.extendedSupport() && tier != adaptive.GpuTierLow,
		DevicePixelRatio:   clampRatio(env.DevicePixelRatio, 2.0),
	}
}

// clampRatio bounds a device pixel ratio to (0, max], defaulting to 1.0
// for unset or nonsensical values.
func clampRatio(ratio, max float64) float64 {
	if ratio <= 0 {
		return 1.0
	}
	if ratio > max {
		return max
	}
	return ratio
}
