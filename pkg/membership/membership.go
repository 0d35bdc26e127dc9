// Package membership implements the piecewise-linear membership functions
// used by linguistic terms.
package membership

import (
	"fmt"
	"math"
	"strings"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// Shape kinds accepted by New.
const (
	KindTriangular  = "triangular"
	KindTrapezoidal = "trapezoidal"
)

// Function maps a crisp value to a membership degree in [0,1].
// Implementations are immutable and never fail at evaluation time.
type Function interface {
	// Evaluate returns the degree of x. It is defined for every float64 and
	// returns 0 for NaN.
	Evaluate(x float64) float64

	// Kind returns the shape kind, e.g. "triangular".
	Kind() string

	// Params returns a copy of the defining points.
	Params() []float64
}

// New builds a Function from a shape kind and its control points.
// The kind is matched case-insensitively; "trimf" and "trapmf" are accepted as aliases.
func New(kind string, params []float64) (Function, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindTriangular, "triangle", "trimf":
		if len(params) != 3 {
			return nil, fmt.Errorf("%w: triangular needs 3 points, got %d", types.ErrInvalidShape, len(params))
		}
		t, err := NewTriangular(params[0], params[1], params[2])
		if err != nil {
			return nil, err
		}
		return t, nil
	case KindTrapezoidal, "trapezoid", "trapmf":
		if len(params) != 4 {
			return nil, fmt.Errorf("%w: trapezoidal needs 4 points, got %d", types.ErrInvalidShape, len(params))
		}
		t, err := NewTrapezoidal(params[0], params[1], params[2], params[3])
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: unknown shape kind %q", types.ErrInvalidShape, kind)
	}
}

// Sample evaluates f at every point.
func Sample(f Function, points []float64) []float64 {
	degrees := make([]float64, len(points))
	for i, x := range points {
		degrees[i] = f.Evaluate(x)
	}
	return degrees
}

func checkOrdered(kind string, points ...float64) error {
	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: %s point %d is not finite", types.ErrInvalidShape, kind, i)
		}
		if i > 0 && p < points[i-1] {
			return fmt.Errorf("%w: %s points %v are not in non-decreasing order", types.ErrInvalidShape, kind, points)
		}
	}
	return nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
