package benchmark_test

import (
	"fmt"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/point"
	"github.com/hupe1980/lloyd/testutil"
)

// workload describes a synthetic data set: k gaussian blobs of perCenter
// points each, spread around centers drawn from [0, scale)^dim.
type workload struct {
	dim       int
	k         int
	perCenter int
	spread    float64
	scale     float64
}

func (w workload) n() int { return w.k * w.perCenter }

func (w workload) String() string {
	return fmt.Sprintf("n=%d/dim=%d/k=%d", w.n(), w.dim, w.k)
}

// flat generates the workload deterministically from seed, shuffled so
// clusters are interleaved in id order.
func (w workload) flat(seed uint64) []float64 {
	rng := testutil.NewRNG(seed)
	centers := make([][]float64, w.k)
	for i := range centers {
		centers[i] = rng.Uniform(1, w.dim)
		for d := range centers[i] {
			centers[i][d] *= w.scale
		}
	}
	flat := rng.Blobs(centers, w.perCenter, w.spread)
	rng.Shuffle(flat, w.dim)
	return flat
}

func (w workload) config(maxIter int) lloyd.Config {
	return lloyd.Config{TotalPoints: w.n(), Dimensions: w.dim, K: w.k, MaxIterations: maxIter}
}

// points builds a fresh point set over flat. The coordinates are shared.
func points(flat []float64, dim int) []point.Point {
	ps, err := point.FromFlat(flat, dim)
	if err != nil {
		panic(err)
	}
	return ps
}

var (
	smallWorkload  = workload{dim: 2, k: 4, perCenter: 1_000, spread: 1, scale: 50}
	mediumWorkload = workload{dim: 16, k: 16, perCenter: 2_000, spread: 2, scale: 100}
	largeWorkload  = workload{dim: 64, k: 32, perCenter: 4_000, spread: 4, scale: 100}
)
