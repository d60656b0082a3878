package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	perfLowFpsThreshold = 30.0
	perfLowFpsDuration  = 3 * time.Second
	perfLogInterval     = 3 * time.Second
)

// perfWatch reports sustained frame rate drops. It only logs once the rate
// has stayed below the threshold for perfLowFpsDuration, and then at most
// every perfLogInterval.
type perfWatch struct {
	lowSince time.Time
	lastLog  time.Time
}

// observe returns true when a drop should be reported at now
func (w *perfWatch) observe(fps float64, now time.Time) bool {
	if fps <= 0 || fps >= perfLowFpsThreshold {
		w.lowSince = time.Time{}
		w.lastLog = time.Time{}
		return false
	}

	if w.lowSince.IsZero() {
		w.lowSince = now
		return false
	}
	if now.Sub(w.lowSince) < perfLowFpsDuration {
		return false
	}
	if !w.lastLog.IsZero() && now.Sub(w.lastLog) < perfLogInterval {
		return false
	}

	w.lastLog = now
	return true
}

func (g *Game) maybeLogPerfDrop(now time.Time) {
	fps := g.monitor.FPS()
	if !g.perf.observe(fps, now) {
		return
	}

	stats := g.monitor.GetDetailedStats()
	fields := logrus.Fields{
		"component": "perf",
		"fps":       fps,
		"workers":   g.config.Render.Workers,
		"columns":   g.config.Display.ScreenWidth,
	}
	for _, key := range []string{"frame_time_ms", "raycast_time_ms", "memory_alloc_mb", "gc_cycles", "goroutines"} {
		fields[key] = stats[key]
	}
	logrus.WithFields(fields).Warnf("frame rate below %.0f for at least %s", perfLowFpsThreshold, perfLowFpsDuration)
}
