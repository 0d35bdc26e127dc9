// Package classifier maps a crisp score to a discrete label through ordered
// score thresholds.
package classifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/variable"
)

// Threshold assigns Label to scores below UpperBound. The last threshold
// also takes every score up to and including the universe maximum.
type Threshold struct {
	UpperBound float64 `json:"upperBound"`
	Label      string  `json:"label"`
}

// Unbounded marks a final threshold that covers the rest of the universe.
var Unbounded = math.Inf(1)

// Classifier is immutable and safe for concurrent use.
type Classifier struct {
	thresholds []Threshold
}

// New validates that the thresholds strictly increase and cover universe:
// the first bound must lie above its minimum and the last must reach its maximum.
func New(thresholds []Threshold, universe variable.Universe) (*Classifier, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: no thresholds", types.ErrConfiguration)
	}

	for i, th := range thresholds {
		if strings.TrimSpace(th.Label) == "" {
			return nil, fmt.Errorf("%w: threshold %d has no label", types.ErrConfiguration, i+1)
		}
		if math.IsNaN(th.UpperBound) {
			return nil, fmt.Errorf("%w: threshold %q bound is NaN", types.ErrConfiguration, th.Label)
		}
		if i == 0 && th.UpperBound <= universe.Min() {
			return nil, fmt.Errorf("%w: threshold %q bound %v leaves no scores above universe min %v",
				types.ErrConfiguration, th.Label, th.UpperBound, universe.Min())
		}
		if i > 0 && th.UpperBound <= thresholds[i-1].UpperBound {
			return nil, fmt.Errorf("%w: threshold %q bound %v does not increase past %v",
				types.ErrConfiguration, th.Label, th.UpperBound, thresholds[i-1].UpperBound)
		}
	}
	if last := thresholds[len(thresholds)-1]; last.UpperBound < universe.Max() {
		return nil, fmt.Errorf("%w: thresholds end at %v, below universe max %v",
			types.ErrConfiguration, last.UpperBound, universe.Max())
	}

	c := &Classifier{thresholds: make([]Threshold, len(thresholds))}
	copy(c.thresholds, thresholds)
	return c, nil
}

// Classify returns the label of the first threshold whose bound exceeds
// score. A score equal to a bound belongs to the next tier.
func (c *Classifier) Classify(score float64) string {
	last := len(c.thresholds) - 1
	for _, th := range c.thresholds[:last] {
		if score < th.UpperBound {
			return th.Label
		}
	}
	return c.thresholds[last].Label
}

// Thresholds returns a copy of the configured thresholds.
func (c *Classifier) Thresholds() []Threshold {
	out := make([]Threshold, len(c.thresholds))
	copy(out, c.thresholds)
	return out
}

// Labels returns the labels in threshold order.
func (c *Classifier) Labels() []string {
	labels := make([]string, len(c.thresholds))
	for i, th := range c.thresholds {
		labels[i] = th.Label
	}
	return labels
}
