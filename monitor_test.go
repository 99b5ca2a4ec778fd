package adaptive

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance*math.Max(1, math.Abs(b))
}

func TestNewFrameMonitor(t *testing.T) {
	m := NewFrameMonitor()
	if m.SampleCount() != 0 {
		t.Errorf("expected empty window, got %d samples", m.SampleCount())
	}
	if _, ok := m.AverageFPS(); ok {
		t.Error("expected undefined average on empty window")
	}
}

func TestRecordFrameFirstCall(t *testing.T) {
	m := NewFrameMonitor()

	stats := m.RecordFrame(100)
	if stats.InstantFPS != 0 || stats.AverageFPS != 0 {
		t.Errorf("expected zero stats on first call, got %+v", stats)
	}
	if m.SampleCount() != 0 {
		t.Errorf("first call must not produce a sample, got %d", m.SampleCount())
	}
	if m.FrameCount() != 1 {
		t.Errorf("expected frame count 1, got %d", m.FrameCount())
	}
}

func TestRecordFrameInstantFPS(t *testing.T) {
	m := NewFrameMonitor()
	m.RecordFrame(0)

	stats := m.RecordFrame(1000.0 / 60.0)
	if !almostEqual(stats.InstantFPS, 60) {
		t.Errorf("expected instant 60 FPS, got %f", stats.InstantFPS)
	}
	if !almostEqual(stats.AverageFPS, 60) {
		t.Errorf("expected average 60 FPS, got %f", stats.AverageFPS)
	}
}

// TestRecordFrameAverage checks that the average equals the arithmetic
// mean of the instantaneous FPS values, in arrival order.
func TestRecordFrameAverage(t *testing.T) {
	m := NewFrameMonitor()

	deltas := []float64{16, 20, 33, 10, 40, 16.7, 25}
	now := 0.0
	m.RecordFrame(now)

	sum := 0.0
	var last FrameStats
	for _, d := range deltas {
		now += d
		last = m.RecordFrame(now)
		sum += 1000.0 / d
	}

	want := sum / float64(len(deltas))
	if !almostEqual(last.AverageFPS, want) {
		t.Errorf("expected average %f, got %f", want, last.AverageFPS)
	}
}

// TestRecordFrameWindowEviction feeds more samples than the window holds
// and checks that only the most recent FPSWindowSize contribute.
func TestRecordFrameWindowEviction(t *testing.T) {
	m := NewFrameMonitor()

	now := 0.0
	m.RecordFrame(now)

	// 40 slow frames that should all be evicted, then 60 fast ones.
	for i := 0; i < 40; i++ {
		now += 100 // 10 FPS
		m.RecordFrame(now)
	}
	var last FrameStats
	for i := 0; i < FPSWindowSize; i++ {
		now += 10 // 100 FPS
		last = m.RecordFrame(now)
	}

	if m.SampleCount() != FPSWindowSize {
		t.Fatalf("expected full window of %d, got %d", FPSWindowSize, m.SampleCount())
	}
	if !almostEqual(last.AverageFPS, 100) {
		t.Errorf("expected average 100 after eviction, got %f", last.AverageFPS)
	}
}

func TestRecordFrameNonPositiveDelta(t *testing.T) {
	m := NewFrameMonitor()
	m.RecordFrame(0)
	m.RecordFrame(20) // 50 FPS

	before, _ := m.AverageFPS()

	// Repeated timestamp: zero delta.
	stats := m.RecordFrame(20)
	if stats.InstantFPS != 0 {
		t.Errorf("discarded sample must report zero instant FPS, got %f", stats.InstantFPS)
	}
	if !almostEqual(stats.AverageFPS, before) {
		t.Errorf("average changed on discarded sample: %f != %f", stats.AverageFPS, before)
	}

	// Clock going backwards.
	stats = m.RecordFrame(5)
	if !almostEqual(stats.AverageFPS, before) {
		t.Errorf("average changed on backwards clock: %f != %f", stats.AverageFPS, before)
	}
	if m.SampleCount() != 1 {
		t.Errorf("discarded samples leaked into the window: %d", m.SampleCount())
	}

	// The stored timestamp was not advanced by the discarded samples,
	// so the next valid frame is measured against t=20.
	stats = m.RecordFrame(40)
	if !almostEqual(stats.InstantFPS, 50) {
		t.Errorf("expected delta from last accepted timestamp, got %f FPS", stats.InstantFPS)
	}
}

func TestFrameMonitorReset(t *testing.T) {
	m := NewFrameMonitor()
	m.RecordFrame(0)
	m.RecordFrame(16)
	m.RecordFrame(32)

	m.Reset()
	if m.SampleCount() != 0 {
		t.Errorf("expected empty window after reset, got %d", m.SampleCount())
	}

	// The first frame after Reset only re-establishes the timestamp;
	// a stale epoch must not produce a giant delta.
	stats := m.RecordFrame(100000)
	if stats.InstantFPS != 0 {
		t.Errorf("expected no sample right after reset, got %f", stats.InstantFPS)
	}
	stats = m.RecordFrame(100016)
	if !almostEqual(stats.InstantFPS, 62.5) {
		t.Errorf("expected 62.5 FPS, got %f", stats.InstantFPS)
	}
}

func BenchmarkRecordFrame(b *testing.B) {
	m := NewFrameMonitor()
	now := 0.0
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		now += 16.7
		m.RecordFrame(now)
	}
}
