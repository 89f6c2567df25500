package lloyd

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lloyd/centroid"
	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/point"
)

// Result is the observable outcome of a run.
//
// It does not share memory with the Runner that produced it.
type Result struct {
	// Centroids are the final centroid positions, indexed by id.
	Centroids []centroid.Centroid
	// Assignments maps point id to cluster id.
	Assignments []point.ClusterID
	// Iterations is the number of completed passes.
	Iterations int
	// State is the Runner state when the result was taken.
	State State
	// Inertia is the sum of squared distances of points to their centroid.
	Inertia float64

	members []*roaring.Bitmap
}

func newResult(points []point.Point, centroids []centroid.Centroid, iterations int, state State) *Result {
	res := &Result{
		Centroids:   centroid.Clone(centroids),
		Assignments: make([]point.ClusterID, len(points)),
		Iterations:  iterations,
		State:       state,
		members:     make([]*roaring.Bitmap, len(centroids)),
	}
	for i := range res.members {
		res.members[i] = roaring.New()
	}

	for i := range points {
		p := &points[i]
		res.Assignments[p.ID] = p.ClusterID
		if !p.ClusterID.Valid(len(centroids)) {
			continue
		}
		res.members[p.ClusterID].Add(uint32(p.ID))
		res.Inertia += distance.SquaredEuclidean(p.Coords(), centroids[p.ClusterID].Coords())
	}

	for _, m := range res.members {
		m.RunOptimize()
	}
	return res
}

// Converged reports whether the run stopped because no point moved.
func (r *Result) Converged() bool {
	return r.State == StateConverged
}

// K returns the number of clusters.
func (r *Result) K() int {
	return len(r.Centroids)
}

// Members returns the ids of the points assigned to cluster id.
// The bitmap is owned by the Result and must not be modified.
// It returns nil for an unknown id.
func (r *Result) Members(id int) *roaring.Bitmap {
	if id < 0 || id >= len(r.members) {
		return nil
	}
	return r.members[id]
}

// Size returns the number of points assigned to cluster id.
func (r *Result) Size(id int) int {
	m := r.Members(id)
	if m == nil {
		return 0
	}
	return int(m.GetCardinality())
}

// Sizes returns the number of points per cluster, indexed by cluster id.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.members))
	for i := range sizes {
		sizes[i] = r.Size(i)
	}
	return sizes
}
