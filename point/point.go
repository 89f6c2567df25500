package point

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidDimension is returned when a dimension is not positive.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrRaggedBuffer is returned when a flat buffer is not a whole number of points.
	ErrRaggedBuffer = errors.New("flat buffer length is not a multiple of the dimension")

	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("non-finite coordinate")

	// ErrInvalidID is returned when point ids are not a permutation of [0, n).
	ErrInvalidID = errors.New("point ids must be unique and in [0, n)")
)

// ClusterID identifies the centroid a point is assigned to.
type ClusterID int

// Unassigned marks a point that has not been through an assignment pass yet.
const Unassigned ClusterID = -1

// Valid reports whether id is a centroid id for k clusters.
func (id ClusterID) Valid(k int) bool {
	return id >= 0 && int(id) < k
}

// Point is a single observation.
type Point struct {
	// ID is stable for the lifetime of the point and never reused.
	ID int
	// ClusterID is written only by the assignment step.
	ClusterID ClusterID

	coords []float64
}

// New creates an unassigned point. coords is copied.
func New(id int, coords []float64) Point {
	return Point{
		ID:        id,
		ClusterID: Unassigned,
		coords:    slices.Clone(coords),
	}
}

// Coords returns the coordinate vector. Callers must not modify it.
func (p *Point) Coords() []float64 { return p.coords }

// Dim returns the dimensionality of the point.
func (p *Point) Dim() int { return len(p.coords) }

// FromFlat chunks a flat coordinate buffer into points of dim coordinates.
// Point i gets id i. The points alias values; it must not be modified afterwards.
func FromFlat(values []float64, dim int) ([]Point, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	if len(values)%dim != 0 {
		return nil, fmt.Errorf("%w: %d values, dimension %d", ErrRaggedBuffer, len(values), dim)
	}

	n := len(values) / dim
	points := make([]Point, n)
	for i := range points {
		lo, hi := i*dim, (i+1)*dim
		points[i] = Point{
			ID:        i,
			ClusterID: Unassigned,
			coords:    values[lo:hi:hi],
		}
	}
	return points, nil
}

// DimensionError reports a point whose dimensionality differs from the set.
type DimensionError struct {
	PointID  int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("point %d: dimension mismatch: expected %d, got %d", e.PointID, e.Expected, e.Actual)
}

// Validate checks that every point has dim finite coordinates and that the
// ids are exactly 0..len(points)-1 in any order.
func Validate(points []Point, dim int) error {
	if dim <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	seen := make([]bool, len(points))
	for i := range points {
		p := &points[i]
		if p.ID < 0 || p.ID >= len(points) || seen[p.ID] {
			return fmt.Errorf("point %d: %w", p.ID, ErrInvalidID)
		}
		seen[p.ID] = true
		if len(p.coords) != dim {
			return &DimensionError{PointID: p.ID, Expected: dim, Actual: len(p.coords)}
		}
		if !finite(p.coords) {
			return fmt.Errorf("point %d: %w", p.ID, ErrNonFinite)
		}
	}
	return nil
}

func finite(v []float64) bool {
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// CompareByCluster orders points by cluster id, then by point id.
// The order is total, so any correct sort yields the same arrangement.
func CompareByCluster(a, b Point) int {
	if c := cmp.Compare(a.ClusterID, b.ClusterID); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// CompareByID orders points by id.
func CompareByID(a, b Point) int {
	return cmp.Compare(a.ID, b.ID)
}

// SameCluster reports whether a and b are assigned to the same cluster.
func SameCluster(a, b Point) bool {
	return a.ClusterID == b.ClusterID
}
