// Package recommend couples an inference engine with a classifier to turn
// crisp readings into a labelled recommendation.
package recommend

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/classifier"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/engine"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/rules"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/variable"
)

// Recommender is immutable and safe for concurrent use.
type Recommender struct {
	name       string
	engine     *engine.Engine
	classifier *classifier.Classifier
	logger     *zap.Logger
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithName tags every recommendation with the profile name.
func WithName(name string) Option {
	return func(r *Recommender) { r.name = name }
}

// WithLogger sets the logger. It is not forwarded to the engine.
func WithLogger(l *zap.Logger) Option {
	return func(r *Recommender) {
		if l != nil {
			r.logger = l
		}
	}
}

// New builds a Recommender. The classifier must have been validated against
// the engine's output universe.
func New(e *engine.Engine, c *classifier.Classifier, opts ...Option) (*Recommender, error) {
	if e == nil || c == nil {
		return nil, fmt.Errorf("%w: recommender needs an engine and a classifier", types.ErrConfiguration)
	}
	r := &Recommender{engine: e, classifier: c, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type recommendOptions struct {
	inputCurves bool
	aggregate   bool
}

// RecommendOption toggles optional diagnostics.
type RecommendOption func(*recommendOptions)

// WithInputCurves adds every input term's sampled membership curve.
func WithInputCurves() RecommendOption {
	return func(o *recommendOptions) { o.inputCurves = true }
}

// WithoutAggregate drops the sampled aggregate curve from the output.
func WithoutAggregate() RecommendOption {
	return func(o *recommendOptions) { o.aggregate = false }
}

// Recommend evaluates readings and labels the score. When no rule fires the
// returned error wraps types.ErrNoRuleFired and the recommendation carries
// the firing strengths but no score or label.
func (r *Recommender) Recommend(readings types.Readings, opts ...RecommendOption) (types.Recommendation, error) {
	o := recommendOptions{aggregate: true}
	for _, opt := range opts {
		opt(&o)
	}

	rec := types.Recommendation{Profile: r.name, Readings: copyReadings(readings)}
	if o.inputCurves {
		rec.InputCurves = r.InputCurves()
	}

	res, err := r.engine.Evaluate(readings)
	if err != nil {
		if errors.Is(err, types.ErrNoRuleFired) {
			rec.FiringStrengths = res.FiringStrengths
			rec.Firings = r.engine.Firings(res)
			r.logger.Info("no recommendation possible", zap.String("profile", r.name), zap.Any("readings", readings))
		}
		return rec, err
	}

	rec.Score = res.Score
	rec.Label = r.classifier.Classify(res.Score)
	rec.FiringStrengths = res.FiringStrengths
	rec.Firings = types.RankFirings(r.engine.Firings(res))
	if o.aggregate {
		rec.AggregateCurve = res.Aggregate
	}

	r.logger.Debug("recommendation",
		zap.String("profile", r.name),
		zap.String("label", rec.Label),
		zap.Float64("score", rec.Score))
	return rec, nil
}

// InputCurves samples every term of every input variable over its universe.
func (r *Recommender) InputCurves() []types.TermCurve {
	var curves []types.TermCurve
	for _, v := range r.engine.Inputs() {
		curves = append(curves, v.Curves()...)
	}
	return curves
}

// OutputCurves samples every output term over the output universe.
func (r *Recommender) OutputCurves() []types.TermCurve {
	return r.engine.Output().Curves()
}

// Variable finds an input or the output variable by name.
func (r *Recommender) Variable(name string) (*variable.Variable, bool) {
	if out := r.engine.Output(); out.Name() == name {
		return out, true
	}
	for _, v := range r.engine.Inputs() {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

func (r *Recommender) Name() string { return r.name }

func (r *Recommender) Inputs() []*variable.Variable { return r.engine.Inputs() }

func (r *Recommender) Output() *variable.Variable { return r.engine.Output() }

func (r *Recommender) Rules() []rules.Rule { return r.engine.Rules() }

func (r *Recommender) Thresholds() []classifier.Threshold { return r.classifier.Thresholds() }

// Labels returns the classifier labels in threshold order.
func (r *Recommender) Labels() []string { return r.classifier.Labels() }

func copyReadings(in types.Readings) types.Readings {
	out := make(types.Readings, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
