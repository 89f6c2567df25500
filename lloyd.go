package lloyd

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/hupe1980/lloyd/centroid"
	"github.com/hupe1980/lloyd/group"
	"github.com/hupe1980/lloyd/internal/parallel"
	"github.com/hupe1980/lloyd/nearest"
	"github.com/hupe1980/lloyd/point"
)

// State is the lifecycle state of a Runner.
type State int

const (
	// StateUninitialized is the state of a zero Runner.
	StateUninitialized State = iota
	// StateInitialized means centroids are placed and no pass has run.
	StateInitialized
	// StateIterating means at least one pass ran and points still moved.
	StateIterating
	// StateConverged means the last pass moved no point.
	StateConverged
	// StateIterationLimitReached means the budget ran out before convergence.
	StateIterationLimitReached
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateIterationLimitReached:
		return "iteration_limit_reached"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Terminal reports whether s is Converged or IterationLimitReached.
func (s State) Terminal() bool {
	return s == StateConverged || s == StateIterationLimitReached
}

// Source is the random source consumed by initialization.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Initialize places k centroids at k distinct points sampled without
// replacement from src.
//
// points is reordered by id first, so the sample depends only on the point
// set and src, not on the incoming slice order. Centroid i sits at the i-th
// sampled point. Sampled points stay in the set.
func Initialize(points []point.Point, k int, src Source) ([]point.Point, []centroid.Centroid, error) {
	if len(points) == 0 {
		return nil, nil, invalidConfig("no points")
	}
	if k < 1 || k > len(points) {
		return nil, nil, invalidConfig("k must be in [1, %d], got %d", len(points), k)
	}

	slices.SortFunc(points, point.CompareByID)

	centroids := make([]centroid.Centroid, k)
	for i, idx := range sampleDistinct(src, len(points), k) {
		centroids[i] = centroid.New(i, points[idx].Coords())
	}
	return points, centroids, nil
}

// sampleDistinct returns k distinct indices from [0, n) using a partial
// Fisher-Yates shuffle over a sparse permutation.
func sampleDistinct(src Source, n, k int) []int {
	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := range out {
		j := i + src.IntN(n-i)
		out[i] = at(j)
		swapped[j] = at(i)
	}
	return out
}

// Runner drives Lloyd's algorithm over a fixed point set.
//
// A Runner is not safe for concurrent use; its phases parallelize
// internally according to the configured Mode.
type Runner struct {
	cfg  Config
	opts options
	exec parallel.Strategy
	log  *Logger

	points    []point.Point
	centroids []centroid.Centroid
	// members[i] views the run of points assigned to centroid i after grouping.
	members [][]point.Point

	state      State
	iterations int
	err        error
}

// New validates cfg against points, places the initial centroids and returns
// a Runner in StateInitialized.
//
// The Runner takes ownership of points. src is used once, before New returns.
func New(cfg Config, points []point.Point, src Source, optFns ...Option) (*Runner, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	exec := opts.strategy()
	log := opts.logger.WithK(cfg.K).WithDimension(cfg.Dimensions).WithMode(opts.mode, exec.Workers())

	start := time.Now()
	r, err := newRunner(cfg, points, src, opts, exec, log)
	elapsed := time.Since(start)

	opts.metricsCollector.RecordInit(len(points), cfg.K, elapsed, err)
	log.LogInit(context.Background(), len(points), cfg.K, elapsed, err)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newRunner(cfg Config, points []point.Point, src Source, opts options, exec parallel.Strategy, log *Logger) (*Runner, error) {
	if err := cfg.validatePoints(points); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, invalidConfig("nil random source")
	}

	points, centroids, err := Initialize(points, cfg.K, src)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:       cfg,
		opts:      opts,
		exec:      exec,
		log:       log,
		points:    points,
		centroids: centroids,
		members:   make([][]point.Point, cfg.K),
		state:     StateInitialized,
	}, nil
}

// State returns the current lifecycle state.
func (r *Runner) State() State { return r.state }

// Iterations returns the number of completed passes.
func (r *Runner) Iterations() int { return r.iterations }

// Config returns the run configuration.
func (r *Runner) Config() Config { return r.cfg }

// Centroids returns a copy of the current centroids.
func (r *Runner) Centroids() []centroid.Centroid { return centroid.Clone(r.centroids) }

// Points returns the point store, ordered by cluster id after any pass.
// The slice is owned by the Runner and must not be modified.
func (r *Runner) Points() []point.Point { return r.points }

// Step runs one full pass: reassign every point, sort by cluster, group,
// and update every centroid. It returns the number of points that changed
// cluster.
//
// Step is allowed after convergence while budget remains. Once Iterations
// equals MaxIterations it returns ErrIterationLimit without doing work. A
// failed pass makes the Runner unusable; later calls return the same error.
// ctx is only consulted before the pass starts; a pass is never interrupted.
func (r *Runner) Step(ctx context.Context) (int, error) {
	switch {
	case r.state == StateUninitialized:
		return 0, ErrNotInitialized
	case r.err != nil:
		return 0, r.err
	case r.iterations >= r.cfg.MaxIterations:
		return 0, ErrIterationLimit
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := time.Now()
	changed, empty, err := r.pass()
	if err != nil {
		r.err = translateError(err)
		return 0, r.err
	}

	r.iterations++
	switch {
	case changed == 0:
		r.state = StateConverged
	case r.iterations >= r.cfg.MaxIterations:
		r.state = StateIterationLimitReached
	default:
		r.state = StateIterating
	}

	elapsed := time.Since(start)
	r.opts.metricsCollector.RecordIteration(r.iterations, changed, empty, elapsed)
	r.log.LogIteration(ctx, r.iterations, changed, empty, elapsed)
	return changed, nil
}

// Run executes passes until the Runner converges or exhausts its budget.
// On error no result is returned.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.state == StateUninitialized {
		return nil, ErrNotInitialized
	}

	start := time.Now()
	err := r.run(ctx)
	elapsed := time.Since(start)

	r.opts.metricsCollector.RecordRun(r.iterations, r.state, elapsed, err)
	r.log.LogRun(ctx, r.iterations, r.state, elapsed, err)
	if err != nil {
		return nil, err
	}
	return r.Result(), nil
}

func (r *Runner) run(ctx context.Context) error {
	for !r.state.Terminal() {
		if _, err := r.Step(ctx); err != nil {
			return err
		}
	}
	return r.err
}

// pass runs the four phases. Each phase finishes before the next starts.
func (r *Runner) pass() (changed, empty int, err error) {
	changed, err = r.assign()
	if err != nil {
		return 0, 0, err
	}

	parallel.SortFunc(r.exec, r.points, point.CompareByCluster)
	r.group()

	empty, err = r.update()
	if err != nil {
		return 0, 0, err
	}
	return changed, empty, nil
}

// assign moves every point to its nearest centroid and counts the moves.
func (r *Runner) assign() (int, error) {
	var changed atomic.Int64
	err := r.exec.For(len(r.points), func(lo, hi int) error {
		n := 0
		for i := lo; i < hi; i++ {
			moved, err := nearest.Reassign(&r.points[i], r.centroids)
			if err != nil {
				return err
			}
			if moved {
				n++
			}
		}
		changed.Add(int64(n))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(changed.Load()), nil
}

// group records the run of points for every centroid. Centroids without
// points keep a nil run.
func (r *Runner) group() {
	clear(r.members)
	for run := range group.ByRun(r.points, point.SameCluster) {
		r.members[run[0].ClusterID] = run
	}
}

// update recomputes every centroid from its run and counts empty clusters.
// Under EmptyClusterFail the lowest empty cluster id is reported, whatever
// the mode, and no centroid moves.
func (r *Runner) update() (int, error) {
	if r.opts.emptyPolicy == EmptyClusterFail {
		for i, members := range r.members {
			if len(members) == 0 {
				return 0, &DegenerateClusterError{ClusterID: i, Iteration: r.iterations + 1}
			}
		}
	}

	var empty atomic.Int64
	err := r.exec.For(len(r.centroids), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			members := r.members[i]
			if len(members) == 0 {
				empty.Add(1)
				continue
			}
			if err := r.centroids[i].Update(members); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(empty.Load()), nil
}

// Result returns a snapshot of the current centroids and assignments.
func (r *Runner) Result() *Result {
	return newResult(r.points, r.centroids, r.iterations, r.state)
}
