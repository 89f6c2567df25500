// Package lloyd implements Lloyd's k-means clustering over a fixed set of
// points.
//
// A run partitions N points of dimension D into K clusters. Each pass
// assigns every point to its nearest centroid, sorts the points by cluster,
// groups them into contiguous runs and moves every centroid to the mean of
// its run. Passes repeat until no point changes cluster or the iteration
// budget is exhausted.
//
// # Quick Start
//
//	cfg, points, _ := lloyd.Load(values) // header + flat coordinates
//	r, _ := lloyd.New(cfg, points, rand.New(rand.NewPCG(1, 2)))
//	res, _ := r.Run(ctx)
//	fmt.Println(res.State, res.Iterations, res.Sizes())
//
// # Execution Modes
//
// Every phase of a pass can run sequentially or fanned out across worker
// goroutines:
//
//	r, _ := lloyd.New(cfg, points, rng, lloyd.WithWorkers(8))
//
// Both modes produce bit-identical centroids, assignments and iteration
// counts for the same input and random source. Points are ordered by
// (cluster id, point id) and every centroid sums its members in that order,
// so no floating-point result depends on scheduling.
//
// # Empty Clusters
//
// A centroid that ends a pass without points stays where it is
// (EmptyClusterKeep). Use WithEmptyClusterPolicy(EmptyClusterFail) to abort
// the run with ErrDegenerateCluster instead.
//
// # Lifecycle
//
//	Uninitialized -> Initialized -> Iterating -> Converged
//	                                         \-> IterationLimitReached
//
// Step runs a single pass and may be called after convergence while budget
// remains; a converged Runner stays converged. Run loops until a terminal
// state and returns a Result snapshot.
//
// # Errors
//
// Configuration problems surface from New as ErrInvalidConfiguration (or
// *ErrDimensionMismatch, which matches it). NaN or infinite values surface as
// ErrNumericCorruption. Both are detected before or during a pass and are
// never silently recovered.
//
// # Observability
//
// Use WithLogger for structured slog output and WithMetricsCollector for
// per-pass counters:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	r, _ := lloyd.New(cfg, points, rng,
//		lloyd.WithLogger(lloyd.NewJSONLogger(slog.LevelInfo)),
//		lloyd.WithMetricsCollector(metrics),
//	)
package lloyd
