package lloyd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with k-means specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	// progress samples Info-level iteration logs; every iteration is still
	// logged at Debug.
	progress *rate.Sometimes
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger:   l,
		progress: &rate.Sometimes{First: 3, Interval: time.Second},
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return newLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})))
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		Logger:   l.Logger.With(args...),
		progress: l.progress,
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return l.with("k", k)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return l.with("dimension", dim)
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return l.with("count", count)
}

// WithMode adds the execution mode to the logger.
func (l *Logger) WithMode(mode Mode, workers int) *Logger {
	return l.with("mode", mode.String(), "workers", workers)
}

// LogInit logs centroid initialization.
func (l *Logger) LogInit(ctx context.Context, points, k int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "initialization failed",
			"points", points,
			"k", k,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "centroids initialized",
		"points", points,
		"k", k,
		"elapsed", elapsed,
	)
}

// LogIteration logs a completed pass.
func (l *Logger) LogIteration(ctx context.Context, iteration, changed, empty int, elapsed time.Duration) {
	attrs := []any{
		"iteration", iteration,
		"changed", changed,
		"empty_clusters", empty,
		"elapsed", elapsed,
	}

	l.DebugContext(ctx, "iteration completed", attrs...)
	if empty > 0 {
		l.WarnContext(ctx, "clusters without points kept their position", attrs...)
		return
	}
	l.progress.Do(func() {
		l.InfoContext(ctx, "iteration progress", attrs...)
	})
}

// LogRun logs the end of a run.
func (l *Logger) LogRun(ctx context.Context, iterations int, state State, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"iterations", iterations,
			"state", state.String(),
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"iterations", iterations,
		"state", state.String(),
		"elapsed", elapsed,
	)
}
