package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"github.com/Carmen-Shannon/orbitrig/engine/input"
	"go.uber.org/zap"
)

// Profiler tracks tick rate, gesture activity and memory statistics of a running rig.
// Outputs stats to the logger at a configurable interval.
type Profiler struct {
	logger         *zap.Logger
	now            func() time.Time
	updateInterval time.Duration

	frameCount      int
	suppressedCount int
	gestureCounts   map[input.Gesture]int
	lastTime        time.Time

	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger stats are written to.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *zap.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: time between reports (defaults to 1 second if <= 0)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithClock replaces the time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         zap.NewNop(),
		now:            time.Now,
		updateInterval: time.Second,
		gestureCounts:  make(map[input.Gesture]int),
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per rig update with the frame it produced.
// Logs statistics when the update interval has elapsed: tick rate, suppressed frames,
// per-gesture frame counts, heap usage and allocation rate.
//
// Parameters:
//   - frame: the frame returned by the rig
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(frame camera.Frame) bool {
	p.frameCount++
	if frame.Suppressed {
		p.suppressedCount++
	}
	if frame.Touch != input.GestureNone {
		p.gestureCounts[frame.Touch]++
	}
	if frame.Pointer != input.GestureNone {
		p.gestureCounts[frame.Pointer]++
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	gestures := make(map[string]int, len(p.gestureCounts))
	for g, n := range p.gestureCounts {
		gestures[g.String()] = n
	}

	p.logger.Info("rig stats",
		zap.Float64("tps", float64(p.frameCount)/elapsed.Seconds()),
		zap.Int("frames", p.frameCount),
		zap.Int("suppressed", p.suppressedCount),
		zap.Any("gestures", gestures),
		zap.Float32("yaw", frame.Yaw),
		zap.Float32("pitch", frame.Pitch),
		zap.Float64("heap_mb", allocMB),
		zap.Float64("alloc_rate_mb_s", allocRateMB),
		zap.Uint32("gc", p.memStats.NumGC),
	)

	p.frameCount = 0
	p.suppressedCount = 0
	clear(p.gestureCounts)
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
