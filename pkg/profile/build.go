package profile

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/classifier"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/engine"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/membership"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/recommend"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/rules"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/variable"
)

type buildOptions struct {
	logger *zap.Logger
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithLogger passes a logger to the engine and recommender.
func WithLogger(l *zap.Logger) BuildOption {
	return func(o *buildOptions) { o.logger = l }
}

// Build validates the whole profile and returns a ready Recommender. Shape
// errors wrap types.ErrInvalidShape; everything else wraps types.ErrConfiguration.
func (p *Profile) Build(opts ...BuildOption) (*recommend.Recommender, error) {
	o := buildOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	inputs := make([]*variable.Variable, 0, len(p.Inputs))
	for _, spec := range p.Inputs {
		v, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("profile %q: input: %w", p.Name, err)
		}
		inputs = append(inputs, v)
	}
	output, err := p.Output.build()
	if err != nil {
		return nil, fmt.Errorf("profile %q: output: %w", p.Name, err)
	}

	ids := p.ruleIDs()
	rs := make([]rules.Rule, 0, len(p.Rules))
	for i, spec := range p.Rules {
		r, err := rules.New(ids[i], spec.Then, spec.If...)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		rs = append(rs, r)
	}

	e, err := engine.New(inputs, output, rs, engine.WithLogger(o.logger.Named("engine")))
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}

	thresholds, err := p.thresholds()
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	c, err := classifier.New(thresholds, output.Universe())
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}

	return recommend.New(e, c,
		recommend.WithName(p.Name),
		recommend.WithLogger(o.logger.Named("recommend")))
}

// Validate reports the first problem Build would find.
func (p *Profile) Validate() error {
	_, err := p.Build()
	return err
}

// ruleIDs returns the explicit rule IDs and fills the blanks with r<n>,
// skipping any n already taken by an explicit ID.
func (p *Profile) ruleIDs() []string {
	taken := make(map[string]bool, len(p.Rules))
	for _, spec := range p.Rules {
		if spec.ID != "" {
			taken[spec.ID] = true
		}
	}

	ids := make([]string, len(p.Rules))
	next := 1
	for i, spec := range p.Rules {
		if spec.ID != "" {
			ids[i] = spec.ID
			continue
		}
		if next < i+1 {
			next = i + 1
		}
		for taken[fmt.Sprintf("r%d", next)] {
			next++
		}
		ids[i] = fmt.Sprintf("r%d", next)
		taken[ids[i]] = true
		next++
	}
	return ids
}

func (s VariableSpec) build() (*variable.Variable, error) {
	u, err := variable.NewUniverse(s.Universe.Min, s.Universe.Max, s.Universe.Step)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", s.Name, err)
	}
	terms := make([]variable.Term, 0, len(s.Terms))
	for _, ts := range s.Terms {
		f, err := membership.New(ts.Shape, ts.Params)
		if err != nil {
			return nil, fmt.Errorf("term %s.%s: %w", s.Name, ts.Name, err)
		}
		terms = append(terms, variable.Term{Name: ts.Name, Function: f})
	}
	return variable.New(s.Name, u, terms...)
}

func (p *Profile) thresholds() ([]classifier.Threshold, error) {
	out := make([]classifier.Threshold, len(p.Thresholds))
	for i, ts := range p.Thresholds {
		switch {
		case ts.Below != nil:
			out[i] = classifier.Threshold{UpperBound: *ts.Below, Label: ts.Label}
		case i == len(p.Thresholds)-1:
			out[i] = classifier.Threshold{UpperBound: classifier.Unbounded, Label: ts.Label}
		default:
			return nil, fmt.Errorf("%w: threshold %q needs a bound, only the last may omit it", types.ErrConfiguration, ts.Label)
		}
	}
	return out, nil
}
