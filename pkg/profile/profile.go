// Package profile loads declarative fuzzy system descriptions (variables,
// terms, rules, thresholds) and builds validated recommenders from them.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/rules"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

// Profile is the YAML form of a complete inference configuration.
type Profile struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Inputs      []VariableSpec  `yaml:"inputs" json:"inputs"`
	Output      VariableSpec    `yaml:"output" json:"output"`
	Rules       []RuleSpec      `yaml:"rules" json:"rules"`
	Thresholds  []ThresholdSpec `yaml:"thresholds" json:"thresholds"`
}

// VariableSpec declares a linguistic variable.
type VariableSpec struct {
	Name     string       `yaml:"name" json:"name"`
	Universe UniverseSpec `yaml:"universe" json:"universe"`
	Terms    []TermSpec   `yaml:"terms" json:"terms"`
}

// UniverseSpec bounds a variable. Step 0 selects the default sampling.
type UniverseSpec struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step,omitempty" json:"step,omitempty"`
}

// TermSpec declares one term's membership shape.
type TermSpec struct {
	Name   string    `yaml:"name" json:"name"`
	Shape  string    `yaml:"shape" json:"shape"`
	Params []float64 `yaml:"params" json:"params"`
}

// RuleSpec is IF <all clauses> THEN <consequent>.
type RuleSpec struct {
	ID   string         `yaml:"id,omitempty" json:"id,omitempty"`
	If   []rules.Clause `yaml:"if" json:"if"`
	Then rules.Clause   `yaml:"then" json:"then"`
}

// ThresholdSpec labels scores below Below. Below may be omitted on the last entry.
type ThresholdSpec struct {
	Below *float64 `yaml:"below,omitempty" json:"below,omitempty"`
	Label string   `yaml:"label" json:"label"`
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a profile. Unknown fields are rejected. Decode errors wrap
// types.ErrConfiguration.
func Parse(payload []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: parse profile: empty document", types.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: parse profile: %v", types.ErrConfiguration, err)
	}
	return &p, nil
}

// Marshal renders the profile as YAML.
func (p *Profile) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return buf.Bytes(), nil
}

// InputNames returns the declared input variable names in order.
func (p *Profile) InputNames() []string {
	names := make([]string, len(p.Inputs))
	for i, v := range p.Inputs {
		names[i] = v.Name
	}
	return names
}
