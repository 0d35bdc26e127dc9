package membership

import "math"

// Trapezoidal rises on [a,b], holds 1 on [b,c] and falls on [c,d].
type Trapezoidal struct {
	a, b, c, d float64
}

// NewTrapezoidal validates a <= b <= c <= d.
func NewTrapezoidal(a, b, c, d float64) (*Trapezoidal, error) {
	if err := checkOrdered(KindTrapezoidal, a, b, c, d); err != nil {
		return nil, err
	}
	return &Trapezoidal{a: a, b: b, c: c, d: d}, nil
}

func (t *Trapezoidal) Evaluate(x float64) float64 {
	switch {
	case math.IsNaN(x), x < t.a, x > t.d:
		return 0
	case x >= t.b && x <= t.c:
		return 1
	case x < t.b:
		return clamp((x - t.a) / (t.b - t.a))
	default:
		return clamp((t.d - x) / (t.d - t.c))
	}
}

func (t *Trapezoidal) Kind() string { return KindTrapezoidal }

func (t *Trapezoidal) Params() []float64 { return []float64{t.a, t.b, t.c, t.d} }

// Plateau returns the interval on which the degree is 1.
func (t *Trapezoidal) Plateau() (float64, float64) { return t.b, t.c }
