package integration_test

import (
	"math"
	"testing"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkFixedPoint verifies a converged result against a brute-force oracle:
// every point sits at its nearest centroid (first minimum wins) and every
// non-empty centroid is the mean of its members.
func checkFixedPoint(t *testing.T, flat []float64, dim int, res *lloyd.Result) {
	t.Helper()

	n := len(flat) / dim
	require.Len(t, res.Assignments, n)

	k := len(res.Centroids)
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}

	for id := range n {
		p := flat[id*dim : (id+1)*dim]

		best, bestDist := -1, math.Inf(1)
		for c := range res.Centroids {
			if d := distance.Euclidean(p, res.Centroids[c].Coords()); d < bestDist {
				best, bestDist = c, d
			}
		}
		require.Equal(t, best, int(res.Assignments[id]), "point %d", id)

		for d, v := range p {
			sums[best][d] += v
		}
		counts[best]++
	}

	for c := range res.Centroids {
		if counts[c] == 0 {
			continue
		}
		for d := range dim {
			assert.InDelta(t, sums[c][d]/float64(counts[c]), res.Centroids[c].Coords()[d], 1e-9,
				"centroid %d dim %d", c, d)
		}
		assert.Equal(t, counts[c], res.Size(c))
	}
}
