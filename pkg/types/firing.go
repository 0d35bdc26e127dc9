package types

import "sort"

// RuleFiring describes how strongly one rule fired for a set of readings.
type RuleFiring struct {
	Rank       int      `json:"rank,omitempty"`
	Index      int      `json:"index"`
	RuleID     string   `json:"rule"`
	Strength   float64  `json:"strength"`
	Consequent string   `json:"consequent"`
	Evidence   []string `json:"evidence,omitempty"`
}

// RankFirings returns the rules that fired with nonzero strength, strongest
// first. Ties keep configuration order. Ranks start at 1.
func RankFirings(firings []RuleFiring) []RuleFiring {
	ranked := make([]RuleFiring, 0, len(firings))
	for _, f := range firings {
		if f.Strength > 0 {
			ranked = append(ranked, f)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Strength != ranked[j].Strength {
			return ranked[i].Strength > ranked[j].Strength
		}
		return ranked[i].Index < ranked[j].Index
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
