// Command lloyd clusters points read from a file or stdin with Lloyd's
// k-means algorithm and prints the final centroids.
//
// Input is whitespace-separated numbers, optionally zstd or LZ4 compressed:
//
//	<total points> <dimensions> <k> <max iterations> <reserved>
//	<x0 y0 ...> <x1 y1 ...> ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/report"
	"github.com/hupe1980/lloyd/tokens"
)

type cliConfig struct {
	input      string
	seed       uint64
	mode       lloyd.Mode
	workers    int
	empty      lloyd.EmptyClusterPolicy
	logLevel   slog.Level
	logFormat  string
	metricsOut string
	timing     bool
}

func parseFlags(args []string, stderr io.Writer) (*cliConfig, error) {
	fs := flag.NewFlagSet("lloyd", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg   cliConfig
		mode  string
		empty string
		level string
	)
	fs.StringVar(&cfg.input, "input", "-", "input file (\"-\" for stdin); zstd and lz4 are detected")
	fs.Uint64Var(&cfg.seed, "seed", 0, "random seed for initialization (0 picks one)")
	fs.StringVar(&mode, "mode", "sequential", "execution mode (sequential, parallel)")
	fs.IntVar(&cfg.workers, "workers", 0, "worker goroutines in parallel mode (default: GOMAXPROCS)")
	fs.StringVar(&empty, "empty", "keep", "empty cluster policy (keep, fail)")
	fs.StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text, json)")
	fs.StringVar(&cfg.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	fs.BoolVar(&cfg.timing, "timing", true, "print phase timings")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if cfg.mode, err = lloyd.ParseMode(mode); err != nil {
		return nil, err
	}
	if cfg.empty, err = lloyd.ParseEmptyClusterPolicy(empty); err != nil {
		return nil, err
	}
	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q", cfg.logFormat)
	}
	if cfg.seed == 0 {
		cfg.seed = rand.Uint64()
	}
	return &cfg, nil
}

func (c *cliConfig) logger(w io.Writer) *lloyd.Logger {
	opts := &slog.HandlerOptions{Level: c.logLevel}
	if c.logFormat == "json" {
		return lloyd.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return lloyd.NewLogger(slog.NewTextHandler(w, opts))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := cli.logger(stderr)

	start := time.Now()
	values, err := readInput(cli.input, stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	cfg, points, err := lloyd.Load(values)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(start)

	opts := []lloyd.Option{
		lloyd.WithMode(cli.mode),
		lloyd.WithEmptyClusterPolicy(cli.empty),
		lloyd.WithLogger(logger),
	}
	if cli.mode == lloyd.ModeParallel {
		opts = append(opts, lloyd.WithWorkers(cli.workers))
	}

	var observer *PrometheusObserver
	if cli.metricsOut != "" {
		observer = NewPrometheusObserver()
		opts = append(opts, lloyd.WithMetricsCollector(observer))
	}

	logger.WithCount(cfg.TotalPoints).WithK(cfg.K).Debug("starting run", "seed", cli.seed)

	start = time.Now()
	runner, err := lloyd.New(cfg, points, rand.New(rand.NewPCG(cli.seed, cli.seed)), opts...)
	if err != nil {
		return err
	}
	initTime := time.Since(start)

	start = time.Now()
	res, runErr := runner.Run(ctx)
	runTime := time.Since(start)

	if observer != nil {
		if err := observer.WriteTextfile(cli.metricsOut); err != nil {
			return errors.Join(runErr, fmt.Errorf("write metrics: %w", err))
		}
	}
	if runErr != nil {
		return runErr
	}

	var timings report.Timings
	if cli.timing {
		timings = report.Timings{Load: loadTime, Initialize: initTime, Run: runTime}
	}
	return report.WriteWithTimings(stdout, res, timings)
}

func readInput(path string, stdin io.Reader) ([]float64, error) {
	if path == "-" {
		return tokens.Read(stdin)
	}
	return tokens.ReadFile(path)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "lloyd: %v\n", err)
		os.Exit(1)
	}
}
