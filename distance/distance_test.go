package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{0, 0}, []float64{3, 4}, 5},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, math.Sqrt(8)},
		{"Single", []float64{2}, []float64{-3}, 5},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	t.Run("NaN", func(t *testing.T) {
		got := Euclidean([]float64{math.NaN(), 0}, []float64{0, 0})
		assert.True(t, math.IsNaN(got))
	})
}

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredEuclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestEuclideanMatchesSquared(t *testing.T) {
	a := []float64{1.5, -2.25, 3, 0.5}
	b := []float64{-0.5, 4, 1, 2}

	assert.InDelta(t, math.Sqrt(SquaredEuclidean(a, b)), Euclidean(a, b), 1e-12)
}
