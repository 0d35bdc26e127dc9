package variable

import (
	"fmt"
	"math"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// Universe is the sampled numeric domain of a variable.
// Samples are min + i*step for i = 0..n-1 with
// n = floor((max-min)/step + types.GridEpsilon) + 1, so max is included
// whenever it lies on the step grid.
type Universe struct {
	min, max, step float64
	samples        []float64
}

// MaxSamples bounds the size of a universe's sample array.
const MaxSamples = 1 << 20

// NewUniverse validates the bounds and precomputes the samples.
// A step of 0 selects (max-min)/types.DefaultSteps.
func NewUniverse(min, max, step float64) (Universe, error) {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Universe{}, fmt.Errorf("%w: universe bounds must be finite", types.ErrConfiguration)
		}
	}
	if min >= max {
		return Universe{}, fmt.Errorf("%w: universe min %v must be below max %v", types.ErrConfiguration, min, max)
	}
	if step < 0 {
		return Universe{}, fmt.Errorf("%w: universe step %v must be positive", types.ErrConfiguration, step)
	}
	if step == 0 {
		step = (max - min) / types.DefaultSteps
	}

	count := math.Floor((max-min)/step+types.GridEpsilon) + 1
	if count > MaxSamples {
		return Universe{}, fmt.Errorf("%w: universe %v..%v step %v needs %.0f samples, limit is %d",
			types.ErrConfiguration, min, max, step, count, MaxSamples)
	}
	n := int(count)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = min + float64(i)*step
	}
	return Universe{min: min, max: max, step: step, samples: samples}, nil
}

func (u Universe) Min() float64  { return u.min }
func (u Universe) Max() float64  { return u.max }
func (u Universe) Step() float64 { return u.step }

// Len returns the number of samples.
func (u Universe) Len() int { return len(u.samples) }

// Samples returns a copy of the sample points.
func (u Universe) Samples() []float64 {
	out := make([]float64, len(u.samples))
	copy(out, u.samples)
	return out
}

// Contains reports whether x lies within [min, max].
func (u Universe) Contains(x float64) bool { return x >= u.min && x <= u.max }

// Clamp limits x to [min, max]. NaN is returned unchanged.
func (u Universe) Clamp(x float64) float64 {
	switch {
	case x < u.min:
		return u.min
	case x > u.max:
		return u.max
	default:
		return x
	}
}

func (u Universe) String() string {
	return fmt.Sprintf("[%g, %g] step %g (%d samples)", u.min, u.max, u.step, len(u.samples))
}
