package membership

import "math"

// Triangular rises from 0 at a to 1 at b and falls back to 0 at c.
// a == b gives a left shoulder, b == c a right shoulder.
type Triangular struct {
	a, b, c float64
}

// NewTriangular validates a <= b <= c.
func NewTriangular(a, b, c float64) (*Triangular, error) {
	if err := checkOrdered(KindTriangular, a, b, c); err != nil {
		return nil, err
	}
	return &Triangular{a: a, b: b, c: c}, nil
}

func (t *Triangular) Evaluate(x float64) float64 {
	switch {
	case math.IsNaN(x), x < t.a, x > t.c:
		return 0
	case x == t.b:
		return 1
	case x < t.b:
		return clamp((x - t.a) / (t.b - t.a))
	default:
		return clamp((t.c - x) / (t.c - t.b))
	}
}

func (t *Triangular) Kind() string { return KindTriangular }

func (t *Triangular) Params() []float64 { return []float64{t.a, t.b, t.c} }
