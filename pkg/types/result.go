package types

// Recommendation is the outcome of evaluating one set of readings.
type Recommendation struct {
	Profile         string       `json:"profile,omitempty"`
	Readings        Readings     `json:"readings"`
	Score           float64      `json:"score"`
	Label           string       `json:"label"`
	FiringStrengths []float64    `json:"firingStrengths"`
	Firings         []RuleFiring `json:"firings,omitempty"`
	AggregateCurve  []Point      `json:"aggregateCurve,omitempty"`
	InputCurves     []TermCurve  `json:"inputCurves,omitempty"`
}
