package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

func TestRectDuctAttenuationExactRow(t *testing.T) {
	got := RectDuctAttenuation(12, 12, 10, 0)

	want := spectrum.Spectrum{3.5, 2.0, 1.0, 0.6, 0.6, 0.6, 0.6, 0.6}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "band %d", i)
	}
}

func TestRectDuctAttenuationInterpolatesByArea(t *testing.T) {
	// 12x8 sits between the 6x6 and 12x12 rows.
	got := RectDuctAttenuation(12, 8, 10, 0)

	assert.InDelta(t, 3.28, got[0], 0.01)
	assert.InDelta(t, 0.78, got[3], 0.01)
}

func TestRectDuctLiningSnapsToNearestTable(t *testing.T) {
	unlined := RectDuctAttenuation(12, 12, 10, 0)
	lined1 := RectDuctAttenuation(12, 12, 10, 1)
	lined2 := RectDuctAttenuation(12, 12, 10, 2)

	// Lining multiplies mid-band absorption; thicker lining reaches lower.
	assert.Greater(t, lined1[3], unlined[3])
	assert.Greater(t, lined2[1], lined1[1])

	// 1.2 inch lining uses the 1-inch table.
	assert.Equal(t, lined1, RectDuctAttenuation(12, 12, 10, 1.2))
}

func TestRectDuctScalesWithLength(t *testing.T) {
	one := RectDuctAttenuation(24, 24, 1, 0)
	five := RectDuctAttenuation(24, 24, 5, 0)

	for i := range one {
		assert.InDelta(t, one[i]*5, five[i], 1e-9, "band %d", i)
	}
}

func TestRoundDuctAttenuationByDiameterClass(t *testing.T) {
	small := RoundDuctAttenuation(6, 10, 0)
	large := RoundDuctAttenuation(40, 10, 0)

	assert.InDelta(t, 0.3, small[0], 1e-9)
	assert.InDelta(t, 0.1, large[0], 1e-9)
	// Larger round duct attenuates less in every band.
	for i := range small {
		assert.LessOrEqual(t, large[i], small[i], "band %d", i)
	}
}

func TestRoundDuctLinedInterpolates(t *testing.T) {
	got := RoundDuctAttenuation(18, 1, 1)

	// Between the 12 and 24 inch rows.
	assert.InDelta(t, 0.15, got[0], 1e-9)
	assert.InDelta(t, 1.945, got[4], 1e-9)
}

func TestFlexDuctInsertionLoss(t *testing.T) {
	got, err := FlexDuctInsertionLoss(5, 10)
	require.NoError(t, err)

	want := spectrum.Spectrum{7, 12, 14, 32, 38, 41, 26, 21}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "band %d", i)
	}
}

func TestFlexDuctDiameterInterpolates(t *testing.T) {
	got, err := FlexDuctInsertionLoss(11, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, got[0], 1e-9)
}

func TestFlexDuctRejectsOutOfRangeDiameter(t *testing.T) {
	_, err := FlexDuctInsertionLoss(3, 10)
	require.ErrorIs(t, err, ErrFlexDiameter)

	_, err = FlexDuctInsertionLoss(17, 10)
	require.ErrorIs(t, err, ErrFlexDiameter)

	_, err = FlexDuctInsertionLoss(4, 10)
	assert.NoError(t, err)
	_, err = FlexDuctInsertionLoss(16, 10)
	assert.NoError(t, err)
}

func TestEquivalentDiameter(t *testing.T) {
	// A 12x12 section has the area of a 13.54 inch circle.
	assert.InDelta(t, 13.54, EquivalentDiameterIn(12, 12), 0.01)
}

// Attenuation calculators must never return a negative band value, which
// would amplify the running spectrum on subtraction.
func TestAttenuationNeverNegative(t *testing.T) {
	sizes := []struct{ w, h float64 }{{4, 4}, {6, 6}, {12, 8}, {12, 24}, {30, 30}, {60, 48}, {90, 90}}
	for _, sz := range sizes {
		for _, lining := range []float64{0, 1, 2} {
			s := RectDuctAttenuation(sz.w, sz.h, 25, lining)
			for i, v := range s {
				assert.GreaterOrEqual(t, v, 0.0, "rect %vx%v lining %v band %d", sz.w, sz.h, lining, i)
			}
		}
	}
	for _, d := range []float64{4, 6, 10, 14, 20, 40, 80} {
		for _, lining := range []float64{0, 1} {
			s := RoundDuctAttenuation(d, 25, lining)
			for i, v := range s {
				assert.GreaterOrEqual(t, v, 0.0, "round %v lining %v band %d", d, lining, i)
			}
		}
	}
	for _, d := range []float64{4, 7, 11, 16} {
		s, err := FlexDuctInsertionLoss(d, 15)
		require.NoError(t, err)
		for i, v := range s {
			assert.GreaterOrEqual(t, v, 0.0, "flex %v band %d", d, i)
		}
	}
	for _, l := range []float64{2, 3, 4.5, 7, 9} {
		s := SilencerInsertionLoss(l)
		for i, v := range s {
			assert.GreaterOrEqual(t, v, 0.0, "silencer %v band %d", l, i)
		}
	}
}

func TestSilencerInsertionLossInterpolates(t *testing.T) {
	got := SilencerInsertionLoss(4)

	// Midway between the 3 ft and 5 ft bodies.
	assert.InDelta(t, 6, got[0], 1e-9)
	assert.InDelta(t, 38, got[4], 1e-9)

	// Lengths outside the catalog clamp.
	assert.Equal(t, SilencerInsertionLoss(3), SilencerInsertionLoss(1))
	assert.Equal(t, SilencerInsertionLoss(7), SilencerInsertionLoss(12))
}
