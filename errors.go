package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/centroid"
	"github.com/hupe1980/lloyd/nearest"
	"github.com/hupe1980/lloyd/point"
)

var (
	// ErrInvalidConfiguration is returned when the configuration or the input
	// points cannot describe a valid run. It is detected before any pass.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDegenerateCluster is returned when a cluster loses all of its points
	// and the empty-cluster policy is EmptyClusterFail.
	ErrDegenerateCluster = errors.New("degenerate cluster")

	// ErrNumericCorruption is returned when a NaN or non-finite value reaches
	// a coordinate or a distance comparison. It is never recovered.
	ErrNumericCorruption = errors.New("numeric corruption")

	// ErrIterationLimit is returned by Step once the iteration budget is spent.
	ErrIterationLimit = errors.New("iteration limit reached")

	// ErrNotInitialized is returned when a Runner was not created with New.
	ErrNotInitialized = errors.New("runner not initialized")
)

// ErrDimensionMismatch indicates a point whose dimensionality differs from
// the configured one. It matches ErrInvalidConfiguration.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	PointID  int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: point %d: expected %d, got %d", e.PointID, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidConfiguration.
func (e *ErrDimensionMismatch) Is(target error) bool { return target == ErrInvalidConfiguration }

// DegenerateClusterError reports which cluster emptied and when.
type DegenerateClusterError struct {
	ClusterID int
	Iteration int
}

func (e *DegenerateClusterError) Error() string {
	return fmt.Sprintf("cluster %d has no points in iteration %d", e.ClusterID, e.Iteration)
}

func (e *DegenerateClusterError) Unwrap() error { return ErrDegenerateCluster }

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// translateError maps errors of the building-block packages onto the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Already public.
	if errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrNumericCorruption) ||
		errors.Is(err, ErrDegenerateCluster) {
		return err
	}

	var de *point.DimensionError
	if errors.As(err, &de) {
		return &ErrDimensionMismatch{PointID: de.PointID, Expected: de.Expected, Actual: de.Actual, cause: err}
	}
	if errors.Is(err, point.ErrInvalidDimension) ||
		errors.Is(err, point.ErrInvalidID) ||
		errors.Is(err, point.ErrRaggedBuffer) ||
		errors.Is(err, centroid.ErrDimensionMismatch) ||
		errors.Is(err, nearest.ErrNoCentroids) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	if errors.Is(err, point.ErrNonFinite) ||
		errors.Is(err, centroid.ErrNonFinite) ||
		errors.Is(err, nearest.ErrNaNDistance) {
		return fmt.Errorf("%w: %w", ErrNumericCorruption, err)
	}
	if errors.Is(err, centroid.ErrEmptyCluster) {
		return fmt.Errorf("%w: %w", ErrDegenerateCluster, err)
	}

	return err
}
