package engine

import (
	"fmt"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/rules"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/variable"
)

// validateRules checks every clause against the declared variables. Rule IDs
// must be unique so diagnostics stay unambiguous.
func validateRules(rs []rules.Rule, inputs map[string]*variable.Variable, output *variable.Variable) error {
	if len(rs) == 0 {
		return fmt.Errorf("%w: rule base is empty", types.ErrConfiguration)
	}

	seen := make(map[string]bool, len(rs))
	for i, r := range rs {
		if r.ID() != "" {
			if seen[r.ID()] {
				return fmt.Errorf("%w: duplicate rule id %q", types.ErrConfiguration, r.ID())
			}
			seen[r.ID()] = true
		}

		ante := r.Antecedent()
		if len(ante) == 0 {
			return fmt.Errorf("%w: rule %d has an empty antecedent", types.ErrConfiguration, i+1)
		}
		for _, c := range ante {
			v, ok := inputs[c.Variable]
			if !ok {
				return fmt.Errorf("%w: rule %q references undeclared input variable %q", types.ErrConfiguration, r.ID(), c.Variable)
			}
			if !v.HasTerm(c.Term) {
				return fmt.Errorf("%w: rule %q references undeclared term %q of %q", types.ErrConfiguration, r.ID(), c.Term, c.Variable)
			}
		}

		cons := r.Consequent()
		if cons.Variable != output.Name() {
			return fmt.Errorf("%w: rule %q concludes on %q, expected output variable %q", types.ErrConfiguration, r.ID(), cons.Variable, output.Name())
		}
		if !output.HasTerm(cons.Term) {
			return fmt.Errorf("%w: rule %q references undeclared output term %q", types.ErrConfiguration, r.ID(), cons.Term)
		}
	}
	return nil
}

// Firings pairs each rule with its strength and evidence, in configuration order.
func (e *Engine) Firings(res Result) []types.RuleFiring {
	if len(res.FiringStrengths) != len(e.rules) {
		return nil
	}
	firings := make([]types.RuleFiring, len(e.rules))
	for i, r := range e.rules {
		firings[i] = types.RuleFiring{
			Index:      i,
			RuleID:     r.ID(),
			Strength:   res.FiringStrengths[i],
			Consequent: r.Consequent().Term,
			Evidence:   r.Evidence(res.Fuzzified),
		}
	}
	return firings
}
