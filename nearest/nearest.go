// Package nearest resolves the closest centroid for a point.
//
// Resolution is a pure function of the point's coordinates and the centroid
// slice. Ties are broken by first occurrence in the centroid slice, so results
// are deterministic regardless of how points are scheduled across goroutines.
package nearest

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/lloyd/centroid"
	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/point"
)

var (
	// ErrNaNDistance is returned when a distance comparison involves NaN.
	// It signals a corrupted coordinate upstream.
	ErrNaNDistance = errors.New("NaN distance comparison")

	// ErrNoCentroids is returned when resolving against an empty centroid set.
	ErrNoCentroids = errors.New("no centroids")
)

// Distance returns the Euclidean distance between p and c.
func Distance(p *point.Point, c *centroid.Centroid) float64 {
	return distance.Euclidean(p.Coords(), c.Coords())
}

// Find returns the id of the centroid closest to p.
func Find(p *point.Point, centroids []centroid.Centroid) (point.ClusterID, error) {
	if len(centroids) == 0 {
		return point.Unassigned, ErrNoCentroids
	}

	best := point.Unassigned
	minDist := math.Inf(1)
	for i := range centroids {
		c := &centroids[i]
		d := Distance(p, c)
		if math.IsNaN(d) {
			return point.Unassigned, fmt.Errorf("point %d, centroid %d: %w", p.ID, c.ID, ErrNaNDistance)
		}
		// Strict comparison keeps the first minimum.
		if d < minDist || best == point.Unassigned {
			minDist = d
			best = c.ClusterID()
		}
	}

	return best, nil
}

// Reassign sets p.ClusterID to its nearest centroid and reports whether it changed.
func Reassign(p *point.Point, centroids []centroid.Centroid) (bool, error) {
	id, err := Find(p, centroids)
	if err != nil {
		return false, err
	}
	if id == p.ClusterID {
		return false, nil
	}
	p.ClusterID = id
	return true, nil
}
