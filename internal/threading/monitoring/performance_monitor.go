package monitoring

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame and raycast timings and keeps the FPS
// figure shown on screen. Counters are atomics so render workers may report
// while the game loop reads.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Rendering metrics
	raycastTime    atomic.Uint64 // nanoseconds, last pass
	raycastColumns atomic.Uint64 // columns in the last pass

	// FPS smoothing
	mutex         sync.RWMutex
	refreshPeriod time.Duration
	window        time.Duration // time accumulated since the last refresh
	windowFrames  int
	fps           float64
	startTime     time.Time
}

// NewPerformanceMonitor creates a monitor whose FPS figure is averaged over
// refreshPeriod
func NewPerformanceMonitor(refreshPeriod time.Duration) *PerformanceMonitor {
	if refreshPeriod <= 0 {
		refreshPeriod = 50 * time.Millisecond
	}
	return &PerformanceMonitor{
		refreshPeriod: refreshPeriod,
		startTime:     time.Now(),
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := time.Since(ft.startTime)
	ft.monitor.frameTime.Store(uint64(frameTime.Nanoseconds()))
	ft.monitor.frameCount.Add(1)
}

// Tick records dt of wall time for one displayed frame. Once more than the
// refresh period has built up, the FPS figure becomes frames/time over that
// window and the window restarts.
func (pm *PerformanceMonitor) Tick(dt time.Duration) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	if pm.window >= pm.refreshPeriod && pm.windowFrames > 0 {
		pm.fps = float64(pm.windowFrames) / pm.window.Seconds()
		pm.window = 0
		pm.windowFrames = 0
	}
	pm.window += dt
	pm.windowFrames++
}

// FPS returns the smoothed frame rate
func (pm *PerformanceMonitor) FPS() float64 {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return pm.fps
}

// FPSText formats the frame rate for the on-screen counter
func (pm *PerformanceMonitor) FPSText() string {
	return fmt.Sprintf("FPS: %3.1f", pm.FPS())
}

// RecordRaycast stores the duration of one full render pass
func (pm *PerformanceMonitor) RecordRaycast(d time.Duration, columns int) {
	pm.raycastTime.Store(uint64(d.Nanoseconds()))
	pm.raycastColumns.Store(uint64(columns))
}

// RaycastTime returns the duration of the last render pass
func (pm *PerformanceMonitor) RaycastTime() time.Duration {
	return time.Duration(pm.raycastTime.Load())
}

// GetDetailedStats returns detailed performance statistics
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"uptime_seconds":  time.Since(pm.startTime).Seconds(),
		"frame_count":     pm.frameCount.Load(),
		"frame_time_ms":   float64(pm.frameTime.Load()) / 1e6,
		"raycast_time_ms": float64(pm.raycastTime.Load()) / 1e6,
		"raycast_columns": pm.raycastColumns.Load(),
		"fps":             pm.FPS(),
		"memory_alloc_mb": memStats.Alloc / 1024 / 1024,
		"gc_cycles":       memStats.NumGC,
		"goroutines":      runtime.NumGoroutine(),
	}
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.raycastColumns.Store(0)

	pm.mutex.Lock()
	pm.window = 0
	pm.windowFrames = 0
	pm.fps = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
