package adaptive

import "log/slog"

// Tuning constants for the quality feedback loop.
const (
	// TargetFPS is the frame rate the controller steers toward.
	TargetFPS = 30.0

	// DegradeBelowFPS is the lower edge of the hysteresis band (0.8x
	// target). Below it the controller steps quality down.
	DegradeBelowFPS = 24.0

	// UpgradeAboveFPS is the upper edge of the hysteresis band (1.5x
	// target). Above it the controller steps quality up. Average FPS
	// between the two edges never changes the config, which keeps the
	// loop from oscillating around a single threshold.
	UpgradeAboveFPS = 45.0

	// MinSamplesForAdjust is how many window samples must exist before
	// the controller acts on an average, guarding against a noisy or
	// cold-start estimate.
	MinSamplesForAdjust = 30

	// pixelRatioStep is the multiplier applied when degrading the device
	// pixel ratio, floored at 1.0.
	pixelRatioStep = 0.75
)

// Controller is the closed-loop quality decision unit.
//
// It owns the current QualityConfig and the FPS window, consumes per-frame
// timestamps, and emits a replacement config to registered consumers when
// the measured average FPS leaves the hysteresis band. At most one quality
// axis moves one step per evaluation, so a struggling device degrades in
// bounded, perceptible increments instead of jumping straight to the floor.
//
// Controller state is owned by the render-loop goroutine; none of its
// methods are safe for concurrent use.
type Controller struct {
	cfg     QualityConfig
	ceiling Ceiling
	monitor *FrameMonitor

	consumers []func(QualityConfig)
	changes   uint64
}

// NewController creates a controller starting from the given config.
//
// The upgrade ceiling defaults to the ceiling of GpuTierMedium; pass
// WithTier with the probe's classification so upgrades stop at what the
// device was judged capable of.
func NewController(initial QualityConfig, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		cfg:       initial,
		ceiling:   o.tier.Ceiling(),
		monitor:   NewFrameMonitor(),
		consumers: o.consumers,
	}
	return c
}

// Config returns a snapshot of the current quality configuration.
func (c *Controller) Config() QualityConfig {
	return c.cfg
}

// Monitor returns the controller's frame monitor, for callers that want
// raw FPS readings without going through Frame.
func (c *Controller) Monitor() *FrameMonitor {
	return c.monitor
}

// OnChange registers a consumer that receives a snapshot of every new
// QualityConfig. Consumers are invoked synchronously from Tick, in
// registration order, only when the config actually changed.
func (c *Controller) OnChange(fn func(QualityConfig)) {
	if fn == nil {
		return
	}
	c.consumers = append(c.consumers, fn)
}

// Frame records a frame timestamp (milliseconds) and runs one evaluation
// of the quality loop. This is the per-frame entry point for the render
// loop.
func (c *Controller) Frame(now float64) FrameStats {
	stats := c.monitor.RecordFrame(now)
	c.Tick(stats.AverageFPS)
	return stats
}

// Tick evaluates the transition rule against an average FPS estimate and
// returns true if the config changed. It is a no-op until the FPS window
// holds at least MinSamplesForAdjust samples.
func (c *Controller) Tick(averageFPS float64) bool {
	if c.monitor.SampleCount() < MinSamplesForAdjust {
		return false
	}

	var (
		next    QualityConfig
		stepped bool
	)
	switch {
	case averageFPS < DegradeBelowFPS:
		next, stepped = stepDown(c.cfg)
	case averageFPS > UpgradeAboveFPS:
		next, stepped = stepUp(c.cfg, c.ceiling)
	default:
		return false
	}
	if !stepped {
		return false
	}

	c.cfg = next
	c.changes++
	Logger().Debug("quality config changed",
		slog.Float64("avg_fps", averageFPS),
		slog.String("texture", next.TextureResolution.String()),
		slog.String("shadow", next.ShadowQuality.String()),
		slog.Bool("antialiasing", next.Antialiasing),
		slog.Float64("pixel_ratio", next.DevicePixelRatio))

	for _, fn := range c.consumers {
		fn(next)
	}
	return true
}

// Stats is a read-only snapshot for the telemetry and debug UI.
type Stats struct {
	// FPS is the current rolling-window average, 0 if no samples exist.
	FPS float64

	// FrameCount is the total number of frames recorded.
	FrameCount uint64

	// Changes is the number of config replacements emitted so far.
	Changes uint64

	// Config is the current quality configuration.
	Config QualityConfig
}

// Stats returns a snapshot of the controller state. It has no side
// effects and does not advance the quality loop.
func (c *Controller) Stats() Stats {
	avg, _ := c.monitor.AverageFPS()
	return Stats{
		FPS:        avg,
		FrameCount: c.monitor.FrameCount(),
		Changes:    c.changes,
		Config:     c.cfg,
	}
}

// stepDown applies at most one downgrade in strict priority order:
// antialiasing first (cheapest visual loss), then shadows, then texture
// resolution, then pixel ratio. Returns the unchanged config and false at
// the floor.
func stepDown(cfg QualityConfig) (QualityConfig, bool) {
	switch {
	case cfg.Antialiasing:
		cfg.Antialiasing = false
	case cfg.ShadowQuality != ShadowOff:
		cfg.ShadowQuality--
	case cfg.TextureResolution != TextureLow:
		cfg.TextureResolution--
	case cfg.DevicePixelRatio > 1.0:
		cfg.DevicePixelRatio *= pixelRatioStep
		if cfg.DevicePixelRatio < 1.0 {
			cfg.DevicePixelRatio = 1.0
		}
	default:
		return cfg, false
	}
	return cfg, true
}

// stepUp applies at most one upgrade in strict priority order, the mirror
// of stepDown: antialiasing is restored only after textures are back to
// High, shadows recover before textures. No step may exceed the ceiling.
// The pixel ratio is never upgraded; a device that needed the resolution
// cut keeps it for the rest of the session.
func stepUp(cfg QualityConfig, ceil Ceiling) (QualityConfig, bool) {
	if cfg.atCeiling(ceil) {
		return cfg, false
	}
	switch {
	case !cfg.Antialiasing && ceil.Antialiasing && cfg.TextureResolution == TextureHigh:
		cfg.Antialiasing = true
	case cfg.ShadowQuality == ShadowOff && ceil.ShadowQuality > ShadowOff:
		cfg.ShadowQuality = ShadowLow
	case cfg.ShadowQuality == ShadowLow && ceil.ShadowQuality > ShadowLow:
		cfg.ShadowQuality = ShadowMedium
	case cfg.ShadowQuality == ShadowMedium && ceil.ShadowQuality > ShadowMedium:
		cfg.ShadowQuality = ShadowHigh
	case cfg.TextureResolution == TextureLow && ceil.TextureResolution > TextureLow:
		cfg.TextureResolution = TextureMedium
	case cfg.TextureResolution == TextureMedium && ceil.TextureResolution > TextureMedium:
		cfg.TextureResolution = TextureHigh
	default:
		return cfg, false
	}
	return cfg, true
}
