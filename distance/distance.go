package distance

import (
	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the Euclidean (L2) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// A NaN coordinate yields a NaN distance.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// It sums the squares directly instead of squaring Euclidean, which would
// round through a square root.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
