package main

import (
	"time"

	"github.com/hupe1980/lloyd"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver implements lloyd.MetricsCollector on a private registry.
type PrometheusObserver struct {
	registry *prometheus.Registry

	initLatency      *prometheus.HistogramVec
	iterationLatency prometheus.Histogram
	iterations       prometheus.Counter
	pointsChanged    prometheus.Counter
	lastChanged      prometheus.Gauge
	emptyClusters    prometheus.Counter
	runs             *prometheus.CounterVec
	runLatency       prometheus.Histogram
}

var _ lloyd.MetricsCollector = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates an observer with all collectors registered.
func NewPrometheusObserver() *PrometheusObserver {
	o := &PrometheusObserver{
		registry: prometheus.NewRegistry(),
		initLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lloyd_init_duration_seconds",
			Help:    "Latency of validation and centroid initialization",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		iterationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lloyd_iteration_duration_seconds",
			Help:    "Latency of a single assign/sort/group/update pass",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lloyd_iterations_total",
			Help: "Total passes completed",
		}),
		pointsChanged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lloyd_points_changed_total",
			Help: "Total points that moved to a different cluster",
		}),
		lastChanged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lloyd_last_points_changed",
			Help: "Points that moved in the most recent pass",
		}),
		emptyClusters: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lloyd_empty_clusters_total",
			Help: "Total clusters that ended a pass without points",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lloyd_runs_total",
			Help: "Total runs by final state",
		}, []string{"state", "status"}),
		runLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lloyd_run_duration_seconds",
			Help:    "Latency of a full run",
			Buckets: prometheus.DefBuckets,
		}),
	}

	o.registry.MustRegister(
		o.initLatency,
		o.iterationLatency,
		o.iterations,
		o.pointsChanged,
		o.lastChanged,
		o.emptyClusters,
		o.runs,
		o.runLatency,
	)
	return o
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordInit implements lloyd.MetricsCollector.
func (o *PrometheusObserver) RecordInit(points, k int, duration time.Duration, err error) {
	o.initLatency.WithLabelValues(status(err)).Observe(duration.Seconds())
}

// RecordIteration implements lloyd.MetricsCollector.
func (o *PrometheusObserver) RecordIteration(iteration, changed, empty int, duration time.Duration) {
	o.iterationLatency.Observe(duration.Seconds())
	o.iterations.Inc()
	o.pointsChanged.Add(float64(changed))
	o.lastChanged.Set(float64(changed))
	o.emptyClusters.Add(float64(empty))
}

// RecordRun implements lloyd.MetricsCollector.
func (o *PrometheusObserver) RecordRun(iterations int, state lloyd.State, duration time.Duration, err error) {
	o.runs.WithLabelValues(state.String(), status(err)).Inc()
	o.runLatency.Observe(duration.Seconds())
}

// WriteTextfile writes all metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (o *PrometheusObserver) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, o.registry)
}
