package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hupe1980/lloyd"
)

// Timings holds the wall-clock durations of the run phases.
// Zero durations are omitted from the report.
type Timings struct {
	Load       time.Duration
	Initialize time.Duration
	Run        time.Duration
}

// Write prints a summary line followed by one line per cluster:
//
//	iterations=3 state=converged inertia=1
//	cluster 0 size=2 centroid=0 0.5
//	cluster 1 size=2 centroid=10 10.5
func Write(w io.Writer, res *lloyd.Result) error {
	return WriteWithTimings(w, res, Timings{})
}

// WriteWithTimings is Write with an additional timing line.
func WriteWithTimings(w io.Writer, res *lloyd.Result, t Timings) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "iterations=%d state=%s inertia=%s\n",
		res.Iterations, res.State, formatFloat(res.Inertia))

	if t != (Timings{}) {
		fmt.Fprintf(bw, "timing load=%s init=%s run=%s\n", t.Load, t.Initialize, t.Run)
	}

	var buf []byte
	for i := range res.Centroids {
		c := &res.Centroids[i]

		buf = fmt.Appendf(buf[:0], "cluster %d size=%d centroid=", c.ID, res.Size(c.ID))
		for d, v := range c.Coords() {
			if d > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
