package adaptive

// Option configures a Controller during creation.
// Use functional options to customize Controller behavior.
//
// Example:
//
//	// Probe-seeded controller with a renderer consumer
//	ctrl := adaptive.NewController(cfg,
//	    adaptive.WithTier(tier),
//	    adaptive.WithConsumer(applySettings))
type Option func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	tier      GpuTier
	consumers []func(QualityConfig)
}

// defaultOptions returns the default controller options.
func defaultOptions() controllerOptions {
	return controllerOptions{
		tier: GpuTierMedium,
	}
}

// WithTier sets the GpuTier whose ceiling bounds quality upgrades.
// Pass the tier produced by the capability probe. The default is
// GpuTierMedium.
func WithTier(tier GpuTier) Option {
	return func(o *controllerOptions) {
		o.tier = tier
	}
}

// WithConsumer registers a consumer for config changes at construction
// time, equivalent to calling OnChange after NewController.
func WithConsumer(fn func(QualityConfig)) Option {
	return func(o *controllerOptions) {
		if fn != nil {
			o.consumers = append(o.consumers, fn)
		}
	}
}
