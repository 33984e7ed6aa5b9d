package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, frame time and heap statistics for the render loop.
// It writes one summary line per interval to its logger.
type Profiler struct {
	logger   *log.Logger
	now      func() time.Time
	interval time.Duration

	frameCount     int
	worstFrame     time.Duration
	lastFrame      time.Time
	lastReport     time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// Report is the summary computed at the end of each interval.
type Report struct {
	FPS         float64
	MeanFrameMs float64
	WorstMs     float64
	HeapMB      float64
	AllocRateMB float64
	NumGC       uint32
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often a report is logged. Non-positive values are ignored.
//
// Parameters:
//   - d: reporting interval
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithLogger sets the logger reports are written to. Defaults to the standard logger.
//
// Parameters:
//   - l: destination logger
//
// Returns:
//   - ProfilerOption: functional option to set the logger
func WithLogger(l *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		p.logger = l
	}
}

// WithClock replaces time.Now, mainly for tests.
//
// Parameters:
//   - now: time source
//
// Returns:
//   - ProfilerOption: functional option to set the clock
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler. The interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:   log.Default(),
		now:      time.Now,
		interval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastReport = p.now()
	p.lastFrame = p.lastReport
	return p
}

// Tick should be called once per frame.
// When the interval has elapsed it logs FPS, mean and worst frame time, heap usage,
// allocation rate and GC count, then starts a new interval.
//
// Returns:
//   - *Report: the report logged this tick, or nil
func (p *Profiler) Tick() *Report {
	current := p.now()
	if frame := current.Sub(p.lastFrame); frame > p.worstFrame {
		p.worstFrame = frame
	}
	p.lastFrame = current
	p.frameCount++

	elapsed := current.Sub(p.lastReport)
	if elapsed < p.interval {
		return nil
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	r := &Report{
		FPS:         float64(p.frameCount) / elapsed.Seconds(),
		MeanFrameMs: float64(elapsed.Milliseconds()) / float64(p.frameCount),
		WorstMs:     float64(p.worstFrame.Microseconds()) / 1000,
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		NumGC:       p.memStats.NumGC - p.lastGCCount,
	}

	p.logger.Printf("[Profiler] FPS: %.2f | Frame: %.2f ms (worst %.2f ms) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		r.FPS, r.MeanFrameMs, r.WorstMs, r.HeapMB, r.AllocRateMB, r.NumGC)

	p.frameCount = 0
	p.worstFrame = 0
	p.lastReport = current
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return r
}
