package adaptive

// FPSWindowSize is the capacity of the rolling FPS window.
const FPSWindowSize = 60

// FrameStats is the per-frame output of the FrameMonitor.
type FrameStats struct {
	// InstantFPS is the FPS implied by the last frame delta alone.
	// Zero on the first call and for discarded samples.
	InstantFPS float64

	// AverageFPS is the arithmetic mean of the rolling window.
	// Zero until at least one sample exists.
	AverageFPS float64
}

// FrameMonitor estimates FPS from per-frame timestamps over a rolling
// window of the most recent FPSWindowSize frames.
//
// FrameMonitor is not safe for concurrent use. It is designed to be called
// once per rendered frame from the render-loop goroutine, which is the only
// owner of its state.
type FrameMonitor struct {
	window [FPSWindowSize]float64
	head   int // next write position
	size   int // samples currently in the window

	last    float64 // last accepted timestamp, milliseconds
	started bool

	frameCount uint64 // total RecordFrame calls
}

// NewFrameMonitor creates an empty frame monitor.
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{}
}

// RecordFrame ingests a frame timestamp in milliseconds and returns the
// updated instantaneous and average FPS.
//
// A non-positive delta from the previous timestamp (timer resolution, tab
// throttling) discards the sample and leaves the window and the stored
// timestamp untouched, so a clock anomaly can neither divide by zero nor
// poison the average with an infinite FPS value.
func (m *FrameMonitor) RecordFrame(now float64) FrameStats {
	m.frameCount++

	if !m.started {
		m.started = true
		m.last = now
		return FrameStats{AverageFPS: m.average()}
	}

	delta := now - m.last
	if delta <= 0 {
		return FrameStats{AverageFPS: m.average()}
	}
	m.last = now

	instant := 1000.0 / delta
	m.push(instant)

	return FrameStats{InstantFPS: instant, AverageFPS: m.average()}
}

// push inserts an FPS sample, evicting the oldest on overflow.
func (m *FrameMonitor) push(fps float64) {
	m.window[m.head] = fps
	m.head = (m.head + 1) % FPSWindowSize
	if m.size < FPSWindowSize {
		m.size++
	}
}

// average returns the mean of the window, or 0 while the window is empty.
func (m *FrameMonitor) average() float64 {
	if m.size == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < m.size; i++ {
		sum += m.window[i]
	}
	return sum / float64(m.size)
}

// AverageFPS returns the current window mean. The boolean is false while
// the window is empty and the average is undefined.
func (m *FrameMonitor) AverageFPS() (float64, bool) {
	if m.size == 0 {
		return 0, false
	}
	return m.average(), true
}

// SampleCount returns the number of samples currently in the window.
func (m *FrameMonitor) SampleCount() int {
	return m.size
}

// FrameCount returns the total number of RecordFrame calls, including
// discarded samples.
func (m *FrameMonitor) FrameCount() uint64 {
	return m.frameCount
}

// Reset clears the window and the stored timestamp. The next RecordFrame
// call starts a fresh measurement, which avoids a huge delta after the
// render loop was suspended.
func (m *FrameMonitor) Reset() {
	m.head = 0
	m.size = 0
	m.started = false
	m.last = 0
}
