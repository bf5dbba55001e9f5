package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval, optionally followed by a
// caller-supplied status line (e.g. the camera controller state).
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	status         func() string
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are logged.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithStatus appends the result of status to every log line.
//
// Parameters:
//   - status: function returning a short status string; called only when a line is logged
//
// Returns:
//   - ProfilerOption: option function to apply
func WithStatus(status func() string) ProfilerOption {
	return func(p *Profiler) {
		p.status = status
	}
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per engine tick to track tick timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: ticks/sec, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	var tps float64
	if seconds := elapsed.Seconds(); seconds > 0 {
		tps = float64(p.tickCount) / seconds
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	var allocRateMB float64
	if seconds := elapsed.Seconds(); seconds > 0 {
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB = float64(allocDelta) / 1024 / 1024 / seconds
	}

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	line := ""
	if p.status != nil {
		line = " | " + p.status()
	}
	log.Printf("[Profiler] TPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB%s",
		tps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB, line)

	p.tickCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
