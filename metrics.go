package lloyd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    iterations prometheus.Counter
//	    changed    prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordIteration(iteration, changed, empty int, d time.Duration) {
//	    p.iterations.Inc()
//	    p.changed.Observe(float64(changed))
//	}
type MetricsCollector interface {
	// RecordInit is called after centroid initialization.
	RecordInit(points, k int, duration time.Duration, err error)

	// RecordIteration is called after every completed pass.
	// changed is the number of points that moved, empty the number of
	// clusters that ended the pass without points.
	RecordIteration(iteration, changed, empty int, duration time.Duration)

	// RecordRun is called once when Run returns.
	RecordRun(iterations int, state State, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInit(int, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordIteration(int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordRun(int, State, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InitCount      atomic.Int64
	InitErrors     atomic.Int64
	InitTotalNanos atomic.Int64
	IterationCount atomic.Int64
	IterationNanos atomic.Int64
	PointsChanged  atomic.Int64
	EmptyClusters  atomic.Int64
	LastChanged    atomic.Int64
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	RunsConverged  atomic.Int64
	RunTotalNanos  atomic.Int64
}

// RecordInit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInit(points, k int, duration time.Duration, err error) {
	b.InitCount.Add(1)
	b.InitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InitErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration, changed, empty int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationNanos.Add(duration.Nanoseconds())
	b.PointsChanged.Add(int64(changed))
	b.EmptyClusters.Add(int64(empty))
	b.LastChanged.Store(int64(changed))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, state State, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	if state == StateConverged {
		b.RunsConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InitCount:         b.InitCount.Load(),
		InitErrors:        b.InitErrors.Load(),
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: b.getAvgIterationNanos(),
		PointsChanged:     b.PointsChanged.Load(),
		EmptyClusters:     b.EmptyClusters.Load(),
		LastChanged:       b.LastChanged.Load(),
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunsConverged:     b.RunsConverged.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgIterationNanos() int64 {
	count := b.IterationCount.Load()
	if count == 0 {
		return 0
	}
	return b.IterationNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InitCount         int64
	InitErrors        int64
	IterationCount    int64
	IterationAvgNanos int64
	PointsChanged     int64
	EmptyClusters     int64
	LastChanged       int64
	RunCount          int64
	RunErrors         int64
	RunsConverged     int64
}
