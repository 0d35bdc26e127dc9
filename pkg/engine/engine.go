// Package engine implements Mamdani inference: fuzzify the readings, fire
// every rule with min-AND, clip each consequent at its firing strength,
// aggregate with point-wise max, and defuzzify by centroid.
package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/membership"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/rules"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/variable"
)

// Engine is immutable after New and safe for concurrent use.
type Engine struct {
	inputs     []*variable.Variable
	inputIndex map[string]*variable.Variable
	output     *variable.Variable
	rules      []rules.Rule

	// xs and termCurves are the output universe samples and each output
	// term's membership over them. Read-only after New.
	xs         []float64
	termCurves map[string][]float64

	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug traces of each evaluation.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Result is the outcome of one evaluation.
type Result struct {
	Score float64

	// FiringStrengths has one entry per rule, in configuration order.
	FiringStrengths []float64

	// TermActivations is the max firing strength per output term.
	TermActivations map[string]float64

	// Aggregate is the clipped and unioned output set over the output universe.
	Aggregate []types.Point

	Fuzzified rules.Fuzzified
}

// New validates the rule base against the declared variables and
// precomputes the output term curves.
func New(inputs []*variable.Variable, output *variable.Variable, rs []rules.Rule, opts ...Option) (*Engine, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no input variables", types.ErrConfiguration)
	}
	if output == nil {
		return nil, fmt.Errorf("%w: no output variable", types.ErrConfiguration)
	}

	e := &Engine{
		inputs:     make([]*variable.Variable, len(inputs)),
		inputIndex: make(map[string]*variable.Variable, len(inputs)),
		output:     output,
		rules:      make([]rules.Rule, len(rs)),
		logger:     zap.NewNop(),
	}
	copy(e.inputs, inputs)
	copy(e.rules, rs)

	for _, v := range e.inputs {
		if v == nil {
			return nil, fmt.Errorf("%w: nil input variable", types.ErrConfiguration)
		}
		if _, dup := e.inputIndex[v.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate input variable %q", types.ErrConfiguration, v.Name())
		}
		e.inputIndex[v.Name()] = v
	}
	if _, clash := e.inputIndex[output.Name()]; clash {
		return nil, fmt.Errorf("%w: output variable %q is also declared as an input", types.ErrConfiguration, output.Name())
	}
	if err := validateRules(e.rules, e.inputIndex, output); err != nil {
		return nil, err
	}

	e.xs = output.Universe().Samples()
	e.termCurves = make(map[string][]float64, len(output.TermNames()))
	for _, name := range output.TermNames() {
		t, _ := output.Term(name)
		e.termCurves[name] = membership.Sample(t.Function, e.xs)
	}

	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Inputs returns the input variables in declaration order.
func (e *Engine) Inputs() []*variable.Variable {
	out := make([]*variable.Variable, len(e.inputs))
	copy(out, e.inputs)
	return out
}

func (e *Engine) Output() *variable.Variable { return e.output }

// Rules returns the rule base in configuration order.
func (e *Engine) Rules() []rules.Rule {
	out := make([]rules.Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Fuzzify checks that readings name exactly the declared inputs and returns
// every input's per-term degrees. Readings outside a universe are clamped
// to it.
func (e *Engine) Fuzzify(readings types.Readings) (rules.Fuzzified, error) {
	for _, name := range readings.Names() {
		if _, ok := e.inputIndex[name]; !ok {
			return nil, fmt.Errorf("%w: unknown input variable %q", types.ErrConfiguration, name)
		}
	}

	fuzzified := make(rules.Fuzzified, len(e.inputs))
	for _, v := range e.inputs {
		x, ok := readings[v.Name()]
		if !ok {
			return nil, fmt.Errorf("%w: missing reading for input variable %q", types.ErrConfiguration, v.Name())
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: reading for %q is not a finite number", types.ErrConfiguration, v.Name())
		}
		if !v.Universe().Contains(x) {
			e.logger.Debug("reading clamped to universe",
				zap.String("variable", v.Name()),
				zap.Float64("reading", x),
				zap.Float64("clamped", v.Universe().Clamp(x)))
		}
		fuzzified[v.Name()] = v.Fuzzify(x)
	}
	return fuzzified, nil
}

// Evaluate runs the full inference for one set of readings. An all-zero
// aggregate returns types.ErrNoRuleFired together with the partial result,
// so the firing strengths stay available for diagnostics.
func (e *Engine) Evaluate(readings types.Readings) (Result, error) {
	fuzzified, err := e.Fuzzify(readings)
	if err != nil {
		return Result{}, err
	}
	return e.Infer(fuzzified)
}

// Infer runs rule firing, aggregation and defuzzification on an already
// fuzzified input. A fuzzified map lacking a referenced degree fails with
// types.ErrMissingInput.
func (e *Engine) Infer(fuzzified rules.Fuzzified) (Result, error) {
	res := Result{
		FiringStrengths: make([]float64, len(e.rules)),
		TermActivations: make(map[string]float64, len(e.termCurves)),
		Fuzzified:       fuzzified,
	}
	for name := range e.termCurves {
		res.TermActivations[name] = 0
	}

	for i, r := range e.rules {
		s, err := r.FiringStrength(fuzzified)
		if err != nil {
			return Result{}, err
		}
		res.FiringStrengths[i] = s
		term := r.Consequent().Term
		if s > res.TermActivations[term] {
			res.TermActivations[term] = s
		}
	}

	// max over rules of min(s, mu) equals min(max s, mu) per term, so the
	// union is taken over term activations.
	aggregate := make([]float64, len(e.xs))
	for _, name := range e.output.TermNames() {
		s := res.TermActivations[name]
		if s == 0 {
			continue
		}
		for i, mu := range e.termCurves[name] {
			if clipped := math.Min(s, mu); clipped > aggregate[i] {
				aggregate[i] = clipped
			}
		}
	}
	res.Aggregate = types.Zip(e.xs, aggregate)

	score, ok := Centroid(e.xs, aggregate)
	if !ok {
		e.logger.Debug("no rule fired",
			zap.Float64s("firing_strengths", res.FiringStrengths))
		return res, fmt.Errorf("%w: aggregate output set of %q is empty", types.ErrNoRuleFired, e.output.Name())
	}
	res.Score = score

	e.logger.Debug("evaluated",
		zap.Float64("score", score),
		zap.Float64s("firing_strengths", res.FiringStrengths),
		zap.Any("term_activations", res.TermActivations))
	return res, nil
}

// Centroid returns sum(x*mu)/sum(mu) over the samples. ok is false when the
// set is zero everywhere.
func Centroid(xs, degrees []float64) (float64, bool) {
	var num, den float64
	for i, mu := range degrees {
		num += xs[i] * mu
		den += mu
	}
	if den == 0 {
		return 0, false
	}
	return num / den, true
}
