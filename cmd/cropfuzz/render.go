package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/rules"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

var (
	styleLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderRecommendation formats a recommendation for the terminal. evalErr
// is the no-rule-fired error, if any.
func renderRecommendation(rec types.Recommendation, rs []rules.Rule, evalErr error) string {
	var b strings.Builder

	for _, name := range rec.Readings.Names() {
		fmt.Fprintf(&b, "%s %g\n", styleMuted.Render(fmt.Sprintf("%-12s", name)), rec.Readings[name])
	}
	b.WriteString("\n")

	if evalErr != nil {
		fmt.Fprintf(&b, "%s %v\n", styleError.Render("No recommendation possible:"), evalErr)
		b.WriteString(styleMuted.Render("every rule fired with strength 0; the readings fall outside the rule base") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Recommended crop: %s\n", styleLabel.Render(rec.Label))
	fmt.Fprintf(&b, "Fuzzy output:     %.2f\n", rec.Score)

	if len(rec.Firings) > 0 {
		b.WriteString("\nRules fired:\n")
		byID := make(map[string]rules.Rule, len(rs))
		for _, r := range rs {
			byID[r.ID()] = r
		}
		for _, f := range rec.Firings {
			desc := f.RuleID
			if r, ok := byID[f.RuleID]; ok {
				desc = r.String()
			}
			fmt.Fprintf(&b, "  %d. %.4f  %s\n", f.Rank, f.Strength, desc)
		}
	}
	return b.String()
}
