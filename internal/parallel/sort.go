package parallel

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// minParallelSort is the length below which sorting stays on one goroutine.
const minParallelSort = 4096

// SortFunc sorts x in ascending order as determined by cmp.
//
// Parallel strategies sort one chunk per worker concurrently, then merge
// adjacent runs pairwise in rounds. The merge is stable, so for a cmp that is
// a total order the result equals slices.SortFunc.
func SortFunc[E any](s Strategy, x []E, cmp func(a, b E) int) {
	if !s.Parallel() || len(x) < max(minParallelSort, s.minChunk) {
		slices.SortFunc(x, cmp)
		return
	}

	edges := s.bounds(len(x), s.Workers())
	if len(edges) == 2 {
		slices.SortFunc(x, cmp)
		return
	}

	var g errgroup.Group
	g.SetLimit(s.Workers())
	for i := 0; i+1 < len(edges); i++ {
		run := x[edges[i]:edges[i+1]]
		g.Go(func() error {
			slices.SortFunc(run, cmp)
			return nil
		})
	}
	_ = g.Wait()

	src, dst := x, make([]E, len(x))
	for len(edges) > 2 {
		next := make([]int, 0, len(edges)/2+2)

		var g errgroup.Group
		g.SetLimit(s.Workers())
		for i := 0; i+1 < len(edges); i += 2 {
			lo := edges[i]
			next = append(next, lo)

			if i+2 >= len(edges) {
				hi := edges[i+1]
				g.Go(func() error {
					copy(dst[lo:hi], src[lo:hi])
					return nil
				})
				continue
			}

			mid, hi := edges[i+1], edges[i+2]
			g.Go(func() error {
				merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
				return nil
			})
		}
		_ = g.Wait()

		edges = append(next, len(x))
		src, dst = dst, src
	}

	if &src[0] != &x[0] {
		copy(x, src)
	}
}

// merge writes the stable merge of sorted a and b into dst.
// len(dst) must equal len(a)+len(b).
func merge[E any](dst, a, b []E, cmp func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
