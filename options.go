package lloyd

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/lloyd/internal/parallel"
)

// Mode selects how each phase of a pass is executed.
// Both modes produce identical results; the choice only affects speed.
type Mode int

const (
	// ModeSequential runs every phase on the calling goroutine.
	ModeSequential Mode = iota
	// ModeParallel fans each phase out across worker goroutines.
	ModeParallel
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMode parses the String form of a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential", "seq":
		return ModeSequential, nil
	case "parallel", "par":
		return ModeParallel, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// EmptyClusterPolicy decides what happens to a centroid that ends a pass
// with no assigned points.
type EmptyClusterPolicy int

const (
	// EmptyClusterKeep leaves the centroid where it was for that pass.
	EmptyClusterKeep EmptyClusterPolicy = iota
	// EmptyClusterFail aborts the run with ErrDegenerateCluster.
	EmptyClusterFail
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case EmptyClusterKeep:
		return "keep"
	case EmptyClusterFail:
		return "fail"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseEmptyClusterPolicy parses the String form of an EmptyClusterPolicy.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch s {
	case "keep":
		return EmptyClusterKeep, nil
	case "fail":
		return EmptyClusterFail, nil
	default:
		return 0, fmt.Errorf("unknown empty cluster policy %q", s)
	}
}

// minParallelChunk keeps tiny ranges from being split across goroutines.
const minParallelChunk = 256

type options struct {
	mode             Mode
	workers          int
	emptyPolicy      EmptyClusterPolicy
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		mode:             ModeSequential,
		emptyPolicy:      EmptyClusterKeep,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

func (o options) strategy() parallel.Strategy {
	if o.mode != ModeParallel {
		return parallel.Sequential()
	}
	return parallel.New(o.workers).WithMinChunk(minParallelChunk)
}

// Option configures a Runner.
type Option func(*options)

// WithMode selects sequential or parallel execution.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithWorkers sets the number of goroutines used in ModeParallel.
// If workers <= 0, runtime.GOMAXPROCS(0) is used. Implies ModeParallel when
// workers > 1.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
		if workers > 1 {
			o.mode = ModeParallel
		}
	}
}

// WithEmptyClusterPolicy configures how centroids without points are handled.
//
// The default is EmptyClusterKeep.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	r, _ := lloyd.New(cfg, points, rng, lloyd.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Iterations: %d, moved: %d\n", stats.IterationCount, stats.PointsChanged)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := lloyd.NewJSONLogger(slog.LevelInfo)
//	r, _ := lloyd.New(cfg, points, rng, lloyd.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
