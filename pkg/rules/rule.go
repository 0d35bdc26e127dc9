// Package rules holds the data-driven Mamdani rule type: an ordered AND of
// (variable, term) clauses implying one output term.
package rules

import (
	"fmt"
	"strings"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// Clause references one term of one variable, e.g. temperature is low.
type Clause struct {
	Variable string `json:"variable" yaml:"variable"`
	Term     string `json:"term" yaml:"term"`
}

func (c Clause) String() string {
	return c.Variable + " is " + c.Term
}

// Fuzzified holds per-variable, per-term membership degrees.
type Fuzzified map[string]map[string]float64

// Degree returns the degree referenced by c.
func (f Fuzzified) Degree(c Clause) (float64, error) {
	terms, ok := f[c.Variable]
	if !ok {
		return 0, fmt.Errorf("%w: variable %q was not fuzzified", types.ErrMissingInput, c.Variable)
	}
	d, ok := terms[c.Term]
	if !ok {
		return 0, fmt.Errorf("%w: variable %q has no degree for term %q", types.ErrMissingInput, c.Variable, c.Term)
	}
	return d, nil
}

// Rule is immutable once built by New.
type Rule struct {
	id         string
	antecedent []Clause
	consequent Clause
}

// New builds a rule. The antecedent must not be empty and every clause must
// name both a variable and a term.
func New(id string, consequent Clause, antecedent ...Clause) (Rule, error) {
	if len(antecedent) == 0 {
		return Rule{}, fmt.Errorf("%w: rule %q has an empty antecedent", types.ErrConfiguration, id)
	}
	for i, c := range antecedent {
		if strings.TrimSpace(c.Variable) == "" || strings.TrimSpace(c.Term) == "" {
			return Rule{}, fmt.Errorf("%w: rule %q clause %d is incomplete", types.ErrConfiguration, id, i+1)
		}
	}
	if strings.TrimSpace(consequent.Variable) == "" || strings.TrimSpace(consequent.Term) == "" {
		return Rule{}, fmt.Errorf("%w: rule %q has an incomplete consequent", types.ErrConfiguration, id)
	}

	ante := make([]Clause, len(antecedent))
	copy(ante, antecedent)
	return Rule{id: id, antecedent: ante, consequent: consequent}, nil
}

func (r Rule) ID() string { return r.id }

// Antecedent returns a copy of the clauses.
func (r Rule) Antecedent() []Clause {
	out := make([]Clause, len(r.antecedent))
	copy(out, r.antecedent)
	return out
}

func (r Rule) Consequent() Clause { return r.consequent }

// FiringStrength applies fuzzy AND (minimum) over the antecedent.
func (r Rule) FiringStrength(in Fuzzified) (float64, error) {
	strength := 1.0
	for _, c := range r.antecedent {
		d, err := in.Degree(c)
		if err != nil {
			return 0, fmt.Errorf("rule %q: %w", r.id, err)
		}
		if d < strength {
			strength = d
		}
	}
	return strength, nil
}

// Evidence lists each clause with its degree, in antecedent order.
func (r Rule) Evidence(in Fuzzified) []string {
	evidence := make([]string, 0, len(r.antecedent))
	for _, c := range r.antecedent {
		d, err := in.Degree(c)
		if err != nil {
			continue
		}
		evidence = append(evidence, fmt.Sprintf("%s: %.4f", c, d))
	}
	return evidence
}

func (r Rule) String() string {
	parts := make([]string, len(r.antecedent))
	for i, c := range r.antecedent {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s: IF %s THEN %s", r.id, strings.Join(parts, " AND "), r.consequent)
}
