// Package distance provides float64 vector distance calculations.
//
// # Supported Functions
//
//   - Euclidean: straight-line (L2) distance, used for nearest-centroid search
//   - SquaredEuclidean: squared L2 distance, used for inertia
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	sse := distance.SquaredEuclidean(a, b)
package distance
