package group

import (
	"slices"
	"testing"

	"github.com/hupe1980/lloyd/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clustered(ids ...point.ClusterID) []point.Point {
	points := make([]point.Point, len(ids))
	for i, id := range ids {
		points[i] = point.Point{ID: i, ClusterID: id}
	}
	return points
}

func TestByRun(t *testing.T) {
	t.Run("Lengths", func(t *testing.T) {
		points := clustered(0, 0, 1, 1, 1, 2)

		var lens []int
		var keys []point.ClusterID
		for run := range ByRun(points, point.SameCluster) {
			lens = append(lens, len(run))
			keys = append(keys, run[0].ClusterID)
		}

		assert.Equal(t, []int{2, 3, 1}, lens)
		assert.Equal(t, []point.ClusterID{0, 1, 2}, keys)
	})

	t.Run("Empty", func(t *testing.T) {
		runs := slices.Collect(ByRun([]point.Point(nil), point.SameCluster))
		assert.Empty(t, runs)
	})

	t.Run("Single", func(t *testing.T) {
		runs := slices.Collect(ByRun(clustered(4, 4, 4), point.SameCluster))
		require.Len(t, runs, 1)
		assert.Len(t, runs[0], 3)
	})

	t.Run("GapInKeys", func(t *testing.T) {
		// Cluster 1 has no members and yields no run.
		runs := slices.Collect(ByRun(clustered(0, 2, 2), point.SameCluster))
		require.Len(t, runs, 2)
		assert.Equal(t, point.ClusterID(0), runs[0][0].ClusterID)
		assert.Equal(t, point.ClusterID(2), runs[1][0].ClusterID)
	})

	t.Run("NoCopy", func(t *testing.T) {
		points := clustered(0, 0, 1)
		for run := range ByRun(points, point.SameCluster) {
			run[0].ID = 100 + run[0].ID
		}
		assert.Equal(t, 100, points[0].ID)
		assert.Equal(t, 102, points[2].ID)
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		calls := 0
		for range ByRun(clustered(0, 1, 2, 3), point.SameCluster) {
			calls++
			if calls == 2 {
				break
			}
		}
		assert.Equal(t, 2, calls)
	})

	t.Run("Ints", func(t *testing.T) {
		eq := func(a, b int) bool { return a == b }
		runs := slices.Collect(ByRun([]int{7, 7, 8, 9, 9}, eq))
		assert.Equal(t, [][]int{{7, 7}, {8}, {9, 9}}, runs)
	})
}
