// Package group partitions sorted slices into contiguous runs.
package group

import "iter"

// ByRun yields the maximal contiguous runs of s whose elements are equal to
// the first element of the run under eq.
//
// s must already be sorted by the key eq compares; otherwise the runs are
// undefined. Runs are non-empty sub-slices of s and share its backing array,
// so no element is copied. The sequence is lazy and single-pass.
func ByRun[S ~[]E, E any](s S, eq func(a, b E) bool) iter.Seq[S] {
	return func(yield func(S) bool) {
		rest := s
		for len(rest) > 0 {
			i := 1
			for i < len(rest) && eq(rest[i], rest[0]) {
				i++
			}
			if !yield(rest[:i:i]) {
				return
			}
			rest = rest[i:]
		}
	}
}
