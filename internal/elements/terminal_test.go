package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

func TestEndReflectionLossTwelveInchFlush(t *testing.T) {
	got := EndReflectionLoss(12, TerminationFlush)

	// A 12 inch flush outlet reflects about 12 dB at 63 Hz and nothing
	// by 1 kHz.
	assert.InDelta(t, 12.0, got[0], 0.5)
	assert.InDelta(t, 0.0, got[4], 0.5)
}

func TestEndReflectionLossNeverIncreasesWithFrequency(t *testing.T) {
	// The empirical table hands off to the analytic model above 1 kHz;
	// the seam must not bend the trend back upward.
	for _, term := range []Termination{TerminationFlush, TerminationFree} {
		for _, d := range []float64{6, 9, 12, 18, 26, 40, 60, 72} {
			got := EndReflectionLoss(d, term)
			for i := 1; i < spectrum.BandCount; i++ {
				assert.LessOrEqual(t, got[i], got[i-1],
					"%s %v in: band %d rose", term, d, i)
			}
		}
	}
}

func TestEndReflectionLossDecreasesWithDiameter(t *testing.T) {
	small := EndReflectionLoss(6, TerminationFlush)
	large := EndReflectionLoss(36, TerminationFlush)

	for i := range small {
		assert.LessOrEqual(t, large[i], small[i], "band %d", i)
	}
}

func TestEndReflectionLossFreeExceedsFlush(t *testing.T) {
	flush := EndReflectionLoss(10, TerminationFlush)
	free := EndReflectionLoss(10, TerminationFree)

	// A free ending reflects more strongly at low frequency.
	assert.Greater(t, free[0], flush[0])
}

func TestEndReflectionLossInterpolatesDiameter(t *testing.T) {
	got := EndReflectionLoss(9, TerminationFlush)

	// Midway between the 8 and 10 inch rows at 63 Hz.
	assert.InDelta(t, 15.0, got[0], 1e-9)
}

func TestEndReflectionAnalyticBandsStayPositive(t *testing.T) {
	got := EndReflectionLoss(6, TerminationFree)

	// Small free outlet keeps a measurable loss above the table bands.
	assert.InDelta(t, 0.53, got[5], 0.01)
	assert.Greater(t, got[5], got[6])
	assert.Greater(t, got[6], got[7])
	assert.Greater(t, got[7], 0.0)
}

func TestRoomCorrection(t *testing.T) {
	got := RoomCorrection(3000, 5)

	assert.InDelta(t, -4.77, got[0], 0.01)
	assert.InDelta(t, -8.38, got[4], 0.01)

	// The correction grows more negative with frequency.
	for i := 1; i < spectrum.BandCount; i++ {
		assert.Less(t, got[i], got[i-1], "band %d", i)
	}
}

func TestParseTermination(t *testing.T) {
	assert.Equal(t, TerminationFree, ParseTermination("free"))
	assert.Equal(t, TerminationFlush, ParseTermination("flush"))
	assert.Equal(t, TerminationFlush, ParseTermination(""))
}
