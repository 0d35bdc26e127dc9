package types

import "errors"

// Error kinds surfaced by the inference core. Callers match them with errors.Is;
// every returned error wraps exactly one of these with context.
var (
	// ErrInvalidShape reports membership function control points that are out
	// of order, not finite, or of the wrong arity.
	ErrInvalidShape = errors.New("invalid membership shape")

	// ErrConfiguration reports a malformed variable, rule base, threshold list,
	// or a readings map that does not match the declared inputs.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrMissingInput reports a rule clause whose variable or term is absent
	// from a fuzzification result.
	ErrMissingInput = errors.New("missing fuzzified input")

	// ErrNoRuleFired reports an aggregate output set that is zero everywhere,
	// leaving the centroid undefined.
	ErrNoRuleFired = errors.New("no rule fired")
)
