package variable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/membership"
	"github.com/mrhapile/fuzzy-crop-advisor/pkg/types"
)

func TestNewUniverse(t *testing.T) {
	u, err := NewUniverse(0, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, 101, u.Len())
	samples := u.Samples()
	assert.Equal(t, 0.0, samples[0])
	assert.Equal(t, 100.0, samples[100])

	ph, err := NewUniverse(3, 10, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 71, ph.Len())
	assert.InDelta(t, 10.0, ph.Samples()[70], 1e-9)

	// max off the grid is not included
	off, err := NewUniverse(0, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9}, off.Samples())

	def, err := NewUniverse(0, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultSteps+1, def.Len())
	assert.Equal(t, 0.5, def.Step())
}

func TestNewUniverse_Invalid(t *testing.T) {
	cases := [][3]float64{
		{10, 10, 1},
		{10, 0, 1},
		{0, 10, -1},
		{0, 1e12, 1e-6},
	}
	for _, c := range cases {
		_, err := NewUniverse(c[0], c[1], c[2])
		assert.ErrorIs(t, err, types.ErrConfiguration, "%v", c)
	}
}

func TestUniverse_SamplesIsCopy(t *testing.T) {
	u, err := NewUniverse(0, 4, 1)
	require.NoError(t, err)
	s := u.Samples()
	s[0] = 99
	assert.Equal(t, 0.0, u.Samples()[0])
}

func TestUniverse_Clamp(t *testing.T) {
	u, err := NewUniverse(3, 10, 0.1)
	require.NoError(t, err)

	tests := []struct {
		x, want  float64
		contains bool
	}{
		{2.5, 3, false},
		{3, 3, true},
		{6.5, 6.5, true},
		{10, 10, true},
		{11, 10, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, u.Clamp(tt.x), "clamp %v", tt.x)
		assert.Equal(t, tt.contains, u.Contains(tt.x), "contains %v", tt.x)
	}
}

func TestNew_Validation(t *testing.T) {
	u, err := NewUniverse(0, 50, 1)
	require.NoError(t, err)
	low := Term{Name: "low", Function: tri(t, 0, 0, 25)}

	_, err = New("", u, low)
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = New("temperature", u)
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = New("temperature", u, low, Term{Name: "low", Function: tri(t, 25, 50, 50)})
	assert.ErrorIs(t, err, types.ErrConfiguration)
	assert.Contains(t, err.Error(), `duplicate term "low"`)

	_, err = New("temperature", u, Term{Name: "low"})
	assert.ErrorIs(t, err, types.ErrConfiguration)

	_, err = New("temperature", Universe{}, low)
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestFuzzify(t *testing.T) {
	v := temperature(t)

	got := v.Fuzzify(22)
	require.Len(t, got, 3)
	assert.InDelta(t, 0.12, got["low"], 1e-12)
	assert.InDelta(t, 0.7, got["medium"], 1e-12)
	assert.Equal(t, 0.0, got["high"])

	// Peaks are exactly 1.
	assert.Equal(t, 1.0, v.Fuzzify(0)["low"])
	assert.Equal(t, 1.0, v.Fuzzify(25)["medium"])
	assert.Equal(t, 1.0, v.Fuzzify(50)["high"])

	// Out of range values take the nearest bound's degrees.
	assert.Equal(t, v.Fuzzify(50), v.Fuzzify(80))
	assert.Equal(t, map[string]float64{"low": 0, "medium": 0, "high": 1}, v.Fuzzify(80))
	assert.Equal(t, map[string]float64{"low": 1, "medium": 0, "high": 0}, v.Fuzzify(-5))

	for x := -10.0; x <= 60; x += 0.25 {
		for term, d := range v.Fuzzify(x) {
			assert.GreaterOrEqual(t, d, 0.0, "%s at %v", term, x)
			assert.LessOrEqual(t, d, 1.0, "%s at %v", term, x)
		}
	}
}

func TestTermMembershipCurve(t *testing.T) {
	v := temperature(t)

	curve, err := v.TermMembershipCurve("medium", []float64{15, 20, 25, 30, 35})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 0.5, 0}, curve)

	_, err = v.TermMembershipCurve("scorching", []float64{1})
	assert.ErrorIs(t, err, types.ErrConfiguration)
}

func TestCurves(t *testing.T) {
	v := temperature(t)
	curves := v.Curves()
	require.Len(t, curves, 3)
	assert.Equal(t, []string{"low", "medium", "high"}, v.TermNames())
	for i, c := range curves {
		assert.Equal(t, "temperature", c.Variable)
		assert.Equal(t, v.TermNames()[i], c.Term)
		assert.Len(t, c.Points, v.Universe().Len())
	}
	assert.Equal(t, types.Point{X: 25, Degree: 1}, curves[1].Points[25])
}

func temperature(t *testing.T) *Variable {
	t.Helper()
	u, err := NewUniverse(0, 50, 1)
	require.NoError(t, err)
	v, err := New("temperature", u,
		Term{Name: "low", Function: tri(t, 0, 0, 25)},
		Term{Name: "medium", Function: tri(t, 15, 25, 35)},
		Term{Name: "high", Function: tri(t, 25, 50, 50)},
	)
	require.NoError(t, err)
	assert.True(t, v.HasTerm("medium"))
	return v
}

func tri(t *testing.T, a, b, c float64) membership.Function {
	t.Helper()
	f, err := membership.NewTriangular(a, b, c)
	require.NoError(t, err)
	return f
}
