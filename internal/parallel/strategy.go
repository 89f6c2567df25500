package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunksPerWorker over-partitions the range so uneven chunks still balance.
const chunksPerWorker = 4

// Strategy runs index-range work either inline or across goroutines.
// The zero value is sequential.
type Strategy struct {
	workers int
	// minChunk is the smallest range worth handing to a goroutine.
	minChunk int
}

// Sequential returns a strategy that runs all work on the calling goroutine.
func Sequential() Strategy {
	return Strategy{workers: 1}
}

// New returns a parallel strategy with the given number of workers.
// If workers <= 0, runtime.GOMAXPROCS(0) is used.
func New(workers int) Strategy {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return Strategy{workers: workers, minChunk: 1}
}

// WithMinChunk returns a copy of s that never splits ranges below n items.
func (s Strategy) WithMinChunk(n int) Strategy {
	if n < 1 {
		n = 1
	}
	s.minChunk = n
	return s
}

// Workers returns the concurrency limit.
func (s Strategy) Workers() int {
	if s.workers <= 0 {
		return 1
	}
	return s.workers
}

// Parallel reports whether s may run work concurrently.
func (s Strategy) Parallel() bool {
	return s.Workers() > 1
}

// bounds splits [0, n) into contiguous chunks and returns their edges,
// starting with 0 and ending with n.
func (s Strategy) bounds(n, parts int) []int {
	if s.minChunk > 1 {
		parts = min(parts, n/s.minChunk)
	}
	parts = max(1, min(parts, n))

	edges := make([]int, parts+1)
	for i := range edges {
		edges[i] = i * n / parts
	}
	return edges
}

// For calls fn over contiguous sub-ranges [lo, hi) that exactly cover [0, n).
//
// Sequential strategies call fn(0, n) once. Parallel strategies run the
// sub-ranges on at most Workers goroutines. For returns after every call has
// finished, with the first error encountered.
func (s Strategy) For(n int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if !s.Parallel() {
		return fn(0, n)
	}

	edges := s.bounds(n, s.Workers()*chunksPerWorker)
	if len(edges) == 2 {
		return fn(0, n)
	}

	var g errgroup.Group
	g.SetLimit(s.Workers())
	for i := 0; i+1 < len(edges); i++ {
		lo, hi := edges[i], edges[i+1]
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
