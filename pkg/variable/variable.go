// Package variable models linguistic variables: a named universe partitioned
// into named fuzzy terms.
package variable

import (
	"fmt"
	"strings"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/membership"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// Term binds a name to a membership function.
type Term struct {
	Name     string
	Function membership.Function
}

// Variable is immutable once built by New.
type Variable struct {
	name     string
	universe Universe
	terms    []Term
	index    map[string]int
}

// New validates that the variable is named, has at least one term, and that
// term names are unique.
func New(name string, universe Universe, terms ...Term) (*Variable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: variable name is empty", types.ErrConfiguration)
	}
	if universe.Len() == 0 {
		return nil, fmt.Errorf("%w: variable %q has no universe", types.ErrConfiguration, name)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: variable %q declares no terms", types.ErrConfiguration, name)
	}

	v := &Variable{
		name:     name,
		universe: universe,
		terms:    make([]Term, 0, len(terms)),
		index:    make(map[string]int, len(terms)),
	}
	for _, t := range terms {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: variable %q has a term without a name", types.ErrConfiguration, name)
		}
		if t.Function == nil {
			return nil, fmt.Errorf("%w: term %s.%s has no membership function", types.ErrConfiguration, name, t.Name)
		}
		if _, dup := v.index[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate term %q in variable %q", types.ErrConfiguration, t.Name, name)
		}
		v.index[t.Name] = len(v.terms)
		v.terms = append(v.terms, t)
	}
	return v, nil
}

func (v *Variable) Name() string { return v.name }

func (v *Variable) Universe() Universe { return v.universe }

// TermNames returns term names in declaration order.
func (v *Variable) TermNames() []string {
	names := make([]string, len(v.terms))
	for i, t := range v.terms {
		names[i] = t.Name
	}
	return names
}

// Term looks up a term by name.
func (v *Variable) Term(name string) (Term, bool) {
	i, ok := v.index[name]
	if !ok {
		return Term{}, false
	}
	return v.terms[i], true
}

// HasTerm reports whether the variable declares name.
func (v *Variable) HasTerm(name string) bool {
	_, ok := v.index[name]
	return ok
}

// Fuzzify returns the degree of value in every term. Values outside the
// universe are clamped to its nearest bound, so they take the boundary
// terms' degrees.
func (v *Variable) Fuzzify(value float64) map[string]float64 {
	x := v.universe.Clamp(value)
	degrees := make(map[string]float64, len(v.terms))
	for _, t := range v.terms {
		degrees[t.Name] = t.Function.Evaluate(x)
	}
	return degrees
}

// TermMembershipCurve samples one term at the given points.
func (v *Variable) TermMembershipCurve(term string, samples []float64) ([]float64, error) {
	t, ok := v.Term(term)
	if !ok {
		return nil, fmt.Errorf("%w: variable %q has no term %q", types.ErrConfiguration, v.name, term)
	}
	return membership.Sample(t.Function, samples), nil
}

// Curves samples every term over the variable's own universe.
func (v *Variable) Curves() []types.TermCurve {
	xs := v.universe.Samples()
	curves := make([]types.TermCurve, 0, len(v.terms))
	for _, t := range v.terms {
		curves = append(curves, types.TermCurve{
			Variable: v.name,
			Term:     t.Name,
			Points:   types.Zip(xs, membership.Sample(t.Function, xs)),
		})
	}
	return curves
}
