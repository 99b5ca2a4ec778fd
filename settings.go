package adaptive

import "github.com/gogpu/gputypes"

// Shadow map dimensions per quality level, in texels.
const (
	shadowMapLow    = 512
	shadowMapMedium = 1024
	shadowMapHigh   = 2048
)

// RenderSettings is the renderer-facing projection of a QualityConfig:
// the concrete pipeline parameters a wgpu-based renderer applies when the
// controller emits a new config. It is applied once per change, not every
// frame.
type RenderSettings struct {
	// PixelRatio is the backing-store scale factor.
	PixelRatio float64

	// Multisample is the MSAA state for render pipelines: 4x when
	// antialiasing is enabled, 1x otherwise.
	Multisample gputypes.MultisampleState

	// ShadowMapSize is the shadow map dimension in texels, 0 when
	// shadows are off.
	ShadowMapSize uint32

	// TextureLODBias shifts mip selection toward lower-resolution mips
	// as texture quality decreases: 0 at High, 1 at Medium, 2 at Low.
	TextureLODBias float32
}

// RenderSettings derives the pipeline parameters for the config.
func (c QualityConfig) RenderSettings() RenderSettings {
	samples := uint32(1)
	if c.Antialiasing {
		samples = 4
	}

	var shadowMap uint32
	switch c.ShadowQuality {
	case ShadowLow:
		shadowMap = shadowMapLow
	case ShadowMedium:
		shadowMap = shadowMapMedium
	case ShadowHigh:
		shadowMap = shadowMapHigh
	}

	var lodBias float32
	switch c.TextureResolution {
	case TextureMedium:
		lodBias = 1
	case TextureLow:
		lodBias = 2
	}

	return RenderSettings{
		PixelRatio: c.DevicePixelRatio,
		Multisample: gputypes.MultisampleState{
			Count: samples,
			Mask:  0xFFFFFFFF,
		},
		ShadowMapSize:  shadowMap,
		TextureLODBias: lodBias,
	}
}
