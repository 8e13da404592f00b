package spectrum

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineLevels(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"equal levels gain 3 dB", 60, 60, 63.01},
		{"10 dB apart gains 0.41 dB", 60, 50, 60.41},
		{"negative operand still contributes", 50, -5, 50.000014},
		{"well separated barely moves", 80, 20, 80.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CombineLevels(tt.a, tt.b), 0.01)
		})
	}
}

func TestCombineLevelsSilenceIdentity(t *testing.T) {
	inf := math.Inf(-1)

	assert.Equal(t, 42.5, CombineLevels(42.5, inf))
	assert.Equal(t, 42.5, CombineLevels(inf, 42.5))
	assert.Equal(t, -3.0, CombineLevels(-3.0, inf))
	assert.True(t, math.IsInf(CombineLevels(inf, inf), -1))
}

func TestCombineWithSilenceReturnsOriginal(t *testing.T) {
	s := Spectrum{72, 70, 68, 66, 64, 62, 60, 58}

	assert.Equal(t, s, s.Combine(Silence()))
	assert.Equal(t, s, Silence().Combine(s))
}

func TestCombineIsPerBand(t *testing.T) {
	a := Spectrum{60, 55, 50, 45, 40, 35, 30, 25}
	b := Spectrum{40, 45, 50, 55, 60, 55, 50, 45}

	got := a.Combine(b)
	for i := range got {
		assert.Equal(t, CombineLevels(a[i], b[i]), got[i], "band %d", i)
	}
}

func TestAttenuateFloorsAtZero(t *testing.T) {
	s := Spectrum{50, 40, 30, 20, 10, 5, 2, 1}
	loss := Spectrum{10, 10, 10, 10, 15, 10, 10, 10}

	got := s.Attenuate(loss)

	assert.Equal(t, Spectrum{40, 30, 20, 10, 0, 0, 0, 0}, got)
}

func TestAttenuateKeepsSilentBandsSilent(t *testing.T) {
	s := Silence()
	got := s.Attenuate(Flat(10))

	for i, v := range got {
		assert.True(t, math.IsInf(v, -1), "band %d", i)
	}
}

func TestDBA(t *testing.T) {
	// Flat 50 dB across all bands: power sum of the A-weighted levels.
	assert.InDelta(t, 56.99, Flat(50).DBA(), 0.05)

	// A single occupied band at 1 kHz carries zero A-weighting correction.
	s := Silence()
	s[4] = 70
	assert.InDelta(t, 70.0, s.DBA(), 1e-9)

	assert.True(t, math.IsInf(Silence().DBA(), -1))
}

func TestRateNC(t *testing.T) {
	tests := []struct {
		name string
		s    Spectrum
		want NCRating
	}{
		{
			"fits NC-35 exactly on the curve",
			Spectrum{60, 52, 45, 40, 36, 34, 33, 32},
			35,
		},
		{
			"single loud band controls the rating",
			Spectrum{58, 40, 35, 30, 25, 20, 18, 15},
			35,
		},
		{
			"quiet spectrum rates below the family",
			Spectrum{30, 20, 15, 10, 5, 3, 2, 1},
			NCBelowRange,
		},
		{
			"exceeding NC-70 is never extrapolated",
			Spectrum{90, 85, 80, 78, 76, 74, 72, 70},
			NCAboveRange,
		},
		{
			"mid-family spectrum",
			Spectrum{55, 47, 40, 34, 30, 28, 27, 26},
			30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RateNC(tt.s))
		})
	}
}

func TestNCRatingString(t *testing.T) {
	assert.Equal(t, "NC-35", NCRating(35).String())
	assert.Equal(t, "none", NCBelowRange.String())
	assert.Equal(t, "unavailable", NCAboveRange.String())
	assert.True(t, NCRating(35).Rated())
	assert.False(t, NCBelowRange.Rated())
	assert.False(t, NCAboveRange.Rated())
}

func TestNCCurvesAscending(t *testing.T) {
	for i := 1; i < len(ncCurves); i++ {
		assert.Greater(t, ncCurves[i].rating, ncCurves[i-1].rating)
		for b := 0; b < BandCount; b++ {
			assert.Greater(t, ncCurves[i].limits[b], ncCurves[i-1].limits[b],
				"curve NC-%d band %d", ncCurves[i].rating, b)
		}
	}
}

func TestSpectrumJSONNullsSilentBands(t *testing.T) {
	s := Silence()
	s[0] = 63.5

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[63.5, null, null, null, null, null, null, null]`, string(data))

	var back Spectrum
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestSpectrumJSONRejectsWrongLength(t *testing.T) {
	var s Spectrum
	err := json.Unmarshal([]byte(`[1, 2, 3]`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 bands")
}
