package benchmark_test

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/point"
	"github.com/hupe1980/lloyd/testutil"
	"github.com/hupe1980/lloyd/tokens"
)

// BenchmarkRun measures a full run to convergence (or 20 passes) per mode.
func BenchmarkRun(b *testing.B) {
	ctx := context.Background()

	for _, w := range []workload{smallWorkload, mediumWorkload, largeWorkload} {
		flat := w.flat(1)

		for _, mode := range []struct {
			name string
			opts []lloyd.Option
		}{
			{"sequential", []lloyd.Option{lloyd.WithMode(lloyd.ModeSequential)}},
			{"parallel", []lloyd.Option{lloyd.WithMode(lloyd.ModeParallel)}},
		} {
			b.Run(fmt.Sprintf("%s/%s", w, mode.name), func(b *testing.B) {
				b.ReportAllocs()

				var iterations int
				for b.Loop() {
					r, err := lloyd.New(w.config(20), points(flat, w.dim), testutil.NewRNG(42), mode.opts...)
					if err != nil {
						b.Fatal(err)
					}
					res, err := r.Run(ctx)
					if err != nil {
						b.Fatal(err)
					}
					iterations = res.Iterations
				}
				b.ReportMetric(float64(iterations), "iterations")
			})
		}
	}
}

// BenchmarkStep measures a single pass after the first one.
func BenchmarkStep(b *testing.B) {
	ctx := context.Background()
	w := mediumWorkload
	flat := w.flat(2)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r, err := lloyd.New(w.config(1<<30), points(flat, w.dim), testutil.NewRNG(1), lloyd.WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			if _, err := r.Step(ctx); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for b.Loop() {
				if _, err := r.Step(ctx); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(w.n())*float64(b.N)/b.Elapsed().Seconds(), "points/s")
		})
	}
}

// BenchmarkSortByCluster isolates the ordering phase on a shuffled store.
func BenchmarkSortByCluster(b *testing.B) {
	const n, k = 100_000, 64
	rng := testutil.NewRNG(3)
	base := points(rng.Uniform(n, 1), 1)
	for i := range base {
		base[i].ClusterID = point.ClusterID(rng.IntN(k))
	}
	work := make([]point.Point, n)

	b.ReportAllocs()
	for b.Loop() {
		copy(work, base)
		slices.SortFunc(work, point.CompareByCluster)
	}
}

// BenchmarkParse measures tokenizing plain and compressed input.
func BenchmarkParse(b *testing.B) {
	w := smallWorkload
	values := testutil.Tokens(w.n(), w.dim, w.k, 100, w.flat(4))

	for _, c := range []tokens.Compression{tokens.CompressionNone, tokens.CompressionLZ4, tokens.CompressionZSTD} {
		var buf bytes.Buffer
		if err := tokens.Write(&buf, values, c); err != nil {
			b.Fatal(err)
		}
		data := buf.Bytes()

		b.Run(c.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := tokens.Read(bytes.NewReader(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
