package adaptive

// TextureResolution selects the texture detail level applied to materials.
type TextureResolution uint8

const (
	// TextureLow is quarter-resolution textures for constrained devices.
	TextureLow TextureResolution = iota

	// TextureMedium is half-resolution textures.
	TextureMedium

	// TextureHigh is full-resolution textures.
	TextureHigh
)

// String returns the resolution name.
func (r TextureResolution) String() string {
	switch r {
	case TextureLow:
		return "low"
	case TextureMedium:
		return "medium"
	case TextureHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ShadowQuality selects the shadow map mode applied to the renderer.
type ShadowQuality uint8

const (
	// ShadowOff disables shadow rendering entirely.
	ShadowOff ShadowQuality = iota

	// ShadowLow is a small shadow map with hard edges.
	ShadowLow

	// ShadowMedium is the default shadow map size with PCF filtering.
	ShadowMedium

	// ShadowHigh is a large shadow map with soft filtering.
	ShadowHigh
)

// String returns the shadow quality name.
func (q ShadowQuality) String() string {
	switch q {
	case ShadowOff:
		return "off"
	case ShadowLow:
		return "low"
	case ShadowMedium:
		return "medium"
	case ShadowHigh:
		return "high"
	default:
		return "unknown"
	}
}

// GpuTier is the coarse capability classification produced by the probe.
// It is immutable after detection and only seeds the initial QualityConfig
// and the upgrade ceiling.
type GpuTier uint8

const (
	// GpuTierLow covers integrated and mobile GPUs.
	GpuTierLow GpuTier = iota

	// GpuTierMedium covers unclassified GPUs.
	GpuTierMedium

	// GpuTierHigh covers discrete desktop GPUs.
	GpuTierHigh
)

// String returns the tier name.
func (t GpuTier) String() string {
	switch t {
	case GpuTierLow:
		return "low"
	case GpuTierMedium:
		return "medium"
	case GpuTierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// QualityConfig is the atomic bundle of rendering-quality settings.
//
// Configs are value types: the Controller replaces its current config
// wholesale on every change and hands copies to consumers, so a consumer
// never observes a partially updated config.
type QualityConfig struct {
	// LODEnabled enables distance-based detail tier swapping.
	LODEnabled bool

	// MaxLODDistance is the viewer distance beyond which the lowest
	// detail tier is forced.
	MaxLODDistance float64

	// FrustumCulling enables culling of off-screen components.
	FrustumCulling bool

	// InstancedRendering enables instanced draws for repeated parts.
	InstancedRendering bool

	// TextureResolution is the texture detail level.
	TextureResolution TextureResolution

	// ShadowQuality is the shadow map mode.
	ShadowQuality ShadowQuality

	// Antialiasing enables MSAA.
	Antialiasing bool

	// DevicePixelRatio is the backing-store scale factor, always > 0 and
	// clamped to the device maximum by the probe.
	DevicePixelRatio float64
}

// Ceiling bounds the quality the Controller may reach through upgrades.
// It is derived from the GpuTier the device was classified into, so a
// device that degraded under load cannot later be upgraded past what its
// hardware was judged capable of.
type Ceiling struct {
	TextureResolution TextureResolution
	ShadowQuality     ShadowQuality
	Antialiasing      bool
}

// Ceiling returns the upgrade ceiling for the tier.
func (t GpuTier) Ceiling() Ceiling {
	switch t {
	case GpuTierHigh:
		return Ceiling{
			TextureResolution: TextureHigh,
			ShadowQuality:     ShadowHigh,
			Antialiasing:      true,
		}
	case GpuTierMedium:
		return Ceiling{
			TextureResolution: TextureHigh,
			ShadowQuality:     ShadowMedium,
			Antialiasing:      true,
		}
	default:
		return Ceiling{
			TextureResolution: TextureMedium,
			ShadowQuality:     ShadowLow,
			Antialiasing:      false,
		}
	}
}

// atCeiling reports whether no quality axis can be raised further.
func (c QualityConfig) atCeiling(ceil Ceiling) bool {
	if c.TextureResolution < ceil.TextureResolution {
		return false
	}
	if c.ShadowQuality < ceil.ShadowQuality {
		return false
	}
	if ceil.Antialiasing && !c.Antialiasing {
		return false
	}
	return true
}
