// Package centroid implements cluster centroids and the mean update step.
package centroid

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/lloyd/point"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyCluster is returned when a centroid is updated from zero points.
	ErrEmptyCluster = errors.New("cannot update centroid from an empty cluster")

	// ErrDimensionMismatch is returned when a member point has a different dimensionality.
	ErrDimensionMismatch = errors.New("member dimension does not match centroid")

	// ErrNonFinite is returned when an update produces a NaN or infinite coordinate.
	ErrNonFinite = errors.New("non-finite centroid coordinate")
)

// Centroid is the representative position of one cluster.
type Centroid struct {
	// ID is in [0, k) and never changes.
	ID int

	coords []float64
}

// New creates a centroid positioned at coords. coords is copied.
func New(id int, coords []float64) Centroid {
	return Centroid{
		ID:     id,
		coords: slices.Clone(coords),
	}
}

// Coords returns the current position. Callers must not modify it.
func (c *Centroid) Coords() []float64 { return c.coords }

// Dim returns the dimensionality of the centroid.
func (c *Centroid) Dim() int { return len(c.coords) }

// ClusterID returns the centroid id as a point cluster id.
func (c *Centroid) ClusterID() point.ClusterID { return point.ClusterID(c.ID) }

// Update moves the centroid to the element-wise mean of members.
//
// Members are scaled by 1/n before summing, in slice order, so the mean of
// finite members stays finite. An empty slice returns ErrEmptyCluster and
// leaves the centroid untouched.
func (c *Centroid) Update(members []point.Point) error {
	if len(members) == 0 {
		return fmt.Errorf("centroid %d: %w", c.ID, ErrEmptyCluster)
	}
	for i := range members {
		if members[i].Dim() != len(c.coords) {
			return fmt.Errorf("centroid %d: point %d: %w", c.ID, members[i].ID, ErrDimensionMismatch)
		}
	}

	clear(c.coords)
	scale := 1 / float64(len(members))
	for i := range members {
		floats.AddScaled(c.coords, scale, members[i].Coords())
	}

	for d, v := range c.coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("centroid %d: dimension %d: %w", c.ID, d, ErrNonFinite)
		}
	}
	return nil
}

// Clone returns a deep copy of centroids.
func Clone(centroids []Centroid) []Centroid {
	out := make([]Centroid, len(centroids))
	for i := range centroids {
		out[i] = New(centroids[i].ID, centroids[i].coords)
	}
	return out
}

// Equal reports whether two centroid sets have the same ids and coordinates.
func Equal(a, b []Centroid) bool {
	return slices.EqualFunc(a, b, func(x, y Centroid) bool {
		return x.ID == y.ID && slices.Equal(x.coords, y.coords)
	})
}
