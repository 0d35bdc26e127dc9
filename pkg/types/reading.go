package types

import "sort"

// Readings maps an input variable name to its crisp value.
type Readings map[string]float64

// Names returns the variable names in sorted order.
func (r Readings) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Point is one sample of a membership curve.
type Point struct {
	X      float64 `json:"x"`
	Degree float64 `json:"degree"`
}

// TermCurve is the sampled membership curve of one term of a variable.
type TermCurve struct {
	Variable string  `json:"variable"`
	Term     string  `json:"term"`
	Points   []Point `json:"points"`
}

// Zip pairs sample positions with degrees. Extra entries in the longer slice are dropped.
func Zip(xs, degrees []float64) []Point {
	n := len(xs)
	if len(degrees) < n {
		n = len(degrees)
	}
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{X: xs[i], Degree: degrees[i]}
	}
	return points
}
