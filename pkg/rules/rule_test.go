package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

func sampleInputs() Fuzzified {
	return Fuzzified{
		"temperature": {"low": 0.12, "medium": 0.7, "high": 0},
		"humidity":    {"low": 0, "medium": 0, "high": 0.7},
		"ph":          {"acidic": 0.5, "neutral": 0, "alkaline": 0},
		"rainfall":    {"low": 0, "medium": 1, "high": 0},
	}
}

func TestNew_Validation(t *testing.T) {
	crop := Clause{Variable: "crop", Term: "rice"}

	_, err := New("r1", crop)
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = New("r1", crop, Clause{Variable: "temperature"})
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = New("r1", Clause{Variable: "crop"}, Clause{Variable: "temperature", Term: "low"})
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestFiringStrength_IsMinimum(t *testing.T) {
	r, err := New("r1", Clause{"crop", "rice"},
		Clause{"temperature", "low"},
		Clause{"humidity", "high"},
		Clause{"ph", "acidic"},
		Clause{"rainfall", "medium"},
	)
	require.NoError(t, err)

	in := sampleInputs()
	got, err := r.FiringStrength(in)
	require.NoError(t, err)
	assert.Equal(t, 0.12, got)

	want := math.Inf(1)
	for _, c := range r.Antecedent() {
		d, err := in.Degree(c)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, d)
		want = math.Min(want, d)
	}
	assert.Equal(t, want, got)
}

func TestFiringStrength_Zero(t *testing.T) {
	r, err := New("r3", Clause{"crop", "chickpea"},
		Clause{"temperature", "high"},
		Clause{"rainfall", "medium"},
	)
	require.NoError(t, err)

	got, err := r.FiringStrength(sampleInputs())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestFiringStrength_MissingInput(t *testing.T) {
	r, err := New("r1", Clause{"crop", "rice"},
		Clause{"temperature", "low"},
		Clause{"wind", "calm"},
	)
	require.NoError(t, err)

	_, err = r.FiringStrength(sampleInputs())
	assert.ErrorIs(t, err, types.ErrMissingInput)
	assert.Contains(t, err.Error(), `rule "r1"`)

	r, err = New("r2", Clause{"crop", "rice"}, Clause{"temperature", "freezing"})
	require.NoError(t, err)
	_, err = r.FiringStrength(sampleInputs())
	assert.ErrorIs(t, err, types.ErrMissingInput)
}

func TestRule_Immutable(t *testing.T) {
	ante := []Clause{{"temperature", "low"}}
	r, err := New("r1", Clause{"crop", "rice"}, ante...)
	require.NoError(t, err)

	ante[0].Term = "high"
	assert.Equal(t, "low", r.Antecedent()[0].Term)

	got := r.Antecedent()
	got[0].Term = "medium"
	assert.Equal(t, "low", r.Antecedent()[0].Term)
}

func TestRule_StringAndEvidence(t *testing.T) {
	r, err := New("r1", Clause{"crop", "rice"},
		Clause{"temperature", "low"},
		Clause{"ph", "acidic"},
	)
	require.NoError(t, err)

	assert.Equal(t, "r1: IF temperature is low AND ph is acidic THEN crop is rice", r.String())
	assert.Equal(t, []string{"temperature is low: 0.1200", "ph is acidic: 0.5000"}, r.Evidence(sampleInputs()))
}
