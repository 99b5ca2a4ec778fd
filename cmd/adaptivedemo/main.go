// Command adaptivedemo exercises the quality controller against a
// synthetic frame-time profile: a healthy phase, a load spike, and a
// recovery phase. It prints every config change the controller emits,
// which makes the hysteresis and one-step-per-tick behavior visible
// without a GPU.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/webbview/adaptive"
	"github.com/webbview/adaptive/probe"
)

func main() {
	var (
		healthyFPS = flag.Float64("healthy-fps", 60, "frame rate during healthy phases")
		spikeFPS   = flag.Float64("spike-fps", 12, "frame rate during the load spike")
		phase      = flag.Int("phase-frames", 180, "frames per phase")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	adaptive.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	result := probe.New().Probe()
	fmt.Printf("probe: tier=%s fallback=%v adapter=%q\n",
		result.Tier, result.Fallback, result.Adapter.Name)
	printConfig("initial", result.Config)

	ctrl := adaptive.NewController(result.Config,
		adaptive.WithTier(result.Tier),
		adaptive.WithConsumer(func(cfg adaptive.QualityConfig) {
			printConfig("changed", cfg)
		}))

	// Synthetic playback: constant frame deltas per phase make the
	// window average converge to the phase's frame rate.
	now := 0.0
	for _, fps := range []float64{*healthyFPS, *spikeFPS, *healthyFPS} {
		delta := 1000.0 / fps
		fmt.Printf("--- phase at %.0f FPS ---\n", fps)
		for i := 0; i < *phase; i++ {
			now += delta
			ctrl.Frame(now)
		}
	}

	stats := ctrl.Stats()
	fmt.Printf("done: frames=%d changes=%d avg=%.1f FPS\n",
		stats.FrameCount, stats.Changes, stats.FPS)
	printConfig("final", stats.Config)
}

func printConfig(label string, cfg adaptive.QualityConfig) {
	fmt.Printf("%s: texture=%s shadow=%s aa=%v dpr=%.2f lod=%v maxLOD=%.0f\n",
		label, cfg.TextureResolution, cfg.ShadowQuality, cfg.Antialiasing,
		cfg.DevicePixelRatio, cfg.LODEnabled, cfg.MaxLODDistance)
}
