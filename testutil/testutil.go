package testutil

import (
	"math/rand/v2"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// IntN returns a non-negative pseudo-random number in [0,n).
func (r *RNG) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// Uniform returns a flat buffer of num points with dim coordinates in [0, 1).
func (r *RNG) Uniform(num, dim int) []float64 {
	flat := make([]float64, num*dim)
	r.FillUniform(flat)
	return flat
}

// Blobs returns a flat buffer with perCenter gaussian points around each
// center, with standard deviation spread. Points are grouped by center.
func (r *RNG) Blobs(centers [][]float64, perCenter int, spread float64) []float64 {
	if len(centers) == 0 {
		return nil
	}
	dim := len(centers[0])

	r.mu.Lock()
	defer r.mu.Unlock()

	flat := make([]float64, 0, len(centers)*perCenter*dim)
	for _, c := range centers {
		for range perCenter {
			for d := range dim {
				flat = append(flat, c[d]+r.rand.NormFloat64()*spread)
			}
		}
	}
	return flat
}

// Shuffle permutes the points of a flat buffer with dim coordinates each.
func (r *RNG) Shuffle(flat []float64, dim int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tmp := make([]float64, dim)
	r.rand.Shuffle(len(flat)/dim, func(i, j int) {
		a, b := flat[i*dim:(i+1)*dim], flat[j*dim:(j+1)*dim]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	})
}

// Tokens prepends the five-value input header to flat coordinates.
// The reserved fifth header value is 0.
func Tokens(totalPoints, dim, k, maxIterations int, flat []float64) []float64 {
	tokens := make([]float64, 0, 5+len(flat))
	tokens = append(tokens, float64(totalPoints), float64(dim), float64(k), float64(maxIterations), 0)
	return append(tokens, flat...)
}
