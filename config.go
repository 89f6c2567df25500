package lloyd

import (
	"math"

	"github.com/hupe1980/lloyd/point"
)

// HeaderLen is the number of leading input values that form the header:
// total points, spatial dimensions, k, max iterations and a reserved flag.
const HeaderLen = 5

// Config describes a k-means run.
type Config struct {
	// TotalPoints is the number of points in the data set.
	TotalPoints int
	// Dimensions is the number of coordinates per point.
	Dimensions int
	// K is the number of clusters.
	K int
	// MaxIterations caps the number of passes.
	MaxIterations int
}

// Validate checks the configuration on its own, without looking at data.
func (c Config) Validate() error {
	switch {
	case c.TotalPoints < 1:
		return invalidConfig("total points must be positive, got %d", c.TotalPoints)
	case uint64(c.TotalPoints) > math.MaxUint32:
		return invalidConfig("total points %d exceeds %d", c.TotalPoints, uint64(math.MaxUint32))
	case c.Dimensions < 1:
		return invalidConfig("dimensions must be positive, got %d", c.Dimensions)
	case c.K < 1:
		return invalidConfig("k must be positive, got %d", c.K)
	case c.K > c.TotalPoints:
		return invalidConfig("k (%d) exceeds total points (%d)", c.K, c.TotalPoints)
	case c.MaxIterations < 1:
		return invalidConfig("max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}

// validatePoints checks cfg against the actual point set.
func (c Config) validatePoints(points []point.Point) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(points) != c.TotalPoints {
		return invalidConfig("expected %d points, got %d", c.TotalPoints, len(points))
	}
	return translateError(point.Validate(points, c.Dimensions))
}

// ParseHeader splits the header off a flat token sequence and returns the
// configuration together with the remaining coordinate values.
//
// The fifth header value is reserved and ignored.
func ParseHeader(tokens []float64) (Config, []float64, error) {
	if len(tokens) < HeaderLen {
		return Config{}, nil, invalidConfig("need %d header values, got %d", HeaderLen, len(tokens))
	}

	var header [HeaderLen - 1]int
	for i := range header {
		v := tokens[i]
		if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
			return Config{}, nil, invalidConfig("header value %d is not a non-negative integer: %v", i, v)
		}
		header[i] = int(v)
	}

	cfg := Config{
		TotalPoints:   header[0],
		Dimensions:    header[1],
		K:             header[2],
		MaxIterations: header[3],
	}
	return cfg, tokens[HeaderLen:], nil
}

// Load parses a full token sequence (header plus coordinates) into a
// validated configuration and its points.
func Load(tokens []float64) (Config, []point.Point, error) {
	cfg, rest, err := ParseHeader(tokens)
	if err != nil {
		return Config{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	if want := cfg.TotalPoints * cfg.Dimensions; len(rest) != want {
		return Config{}, nil, invalidConfig("expected %d coordinate values (%d points x %d dimensions), got %d",
			want, cfg.TotalPoints, cfg.Dimensions, len(rest))
	}

	points, err := point.FromFlat(rest, cfg.Dimensions)
	if err != nil {
		return Config{}, nil, translateError(err)
	}
	if err := cfg.validatePoints(points); err != nil {
		return Config{}, nil, err
	}
	return cfg, points, nil
}
