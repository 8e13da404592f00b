package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

func TestFanSoundPowerForwardCurved(t *testing.T) {
	got := FanSoundPower(FanForwardCurved, 2000, 1.5, 0, 0)

	// Kw + 10·log10(2000) + 20·log10(1.5), BFI of 2 in the 250 Hz band.
	assert.InDelta(t, 83.53, got[0], 0.01)
	assert.InDelta(t, 77.53, got[2], 0.01)
	assert.InDelta(t, 64.53, got[4], 0.01)
}

func TestFanSoundPowerBladeBandFromRPM(t *testing.T) {
	// 1200 rpm and 10 blades put the blade passage at 200 Hz, inside the
	// 250 Hz octave.
	withRPM := FanSoundPower(FanVaneaxial, 5000, 2, 1200, 10)
	defaulted := FanSoundPower(FanVaneaxial, 5000, 2, 0, 0)

	// The 6 dB vaneaxial increment moves from the default 125 Hz band to
	// the 250 Hz band.
	assert.InDelta(t, 6.0, withRPM[2]-defaulted[2], 1e-9)
	assert.InDelta(t, 6.0, defaulted[1]-withRPM[1], 1e-9)
}

func TestFanSoundPowerScalesWithDuty(t *testing.T) {
	base := FanSoundPower(FanCentrifugalAirfoil, 1000, 1, 0, 0)
	doubled := FanSoundPower(FanCentrifugalAirfoil, 2000, 1, 0, 0)

	// Doubling flow adds 10·log10(2) in every band.
	for i := range base {
		assert.InDelta(t, 3.01, doubled[i]-base[i], 0.01, "band %d", i)
	}
}

func TestFanSoundPowerInvalidDutyIsSilent(t *testing.T) {
	assert.Equal(t, spectrum.Silence(), FanSoundPower(FanForwardCurved, 0, 1, 0, 0))
	assert.Equal(t, spectrum.Silence(), FanSoundPower(FanForwardCurved, 1000, 0, 0, 0))
}

func TestFanSoundPowerFamilies(t *testing.T) {
	fc := FanSoundPower(FanForwardCurved, 3000, 2, 0, 0)
	af := FanSoundPower(FanCentrifugalAirfoil, 3000, 2, 0, 0)
	prop := FanSoundPower(FanPropeller, 3000, 2, 0, 0)

	// Forward-curved wheels are louder at low frequency than airfoil
	// wheels; propeller fans are the loudest family overall.
	assert.Greater(t, fc[0], af[0])
	assert.Greater(t, prop[2], fc[2])
}

func TestParseFanType(t *testing.T) {
	assert.Equal(t, FanCentrifugalAirfoil, ParseFanType("airfoil"))
	assert.Equal(t, FanVaneaxial, ParseFanType("vaneaxial"))
	assert.Equal(t, FanPropeller, ParseFanType("propeller"))
	assert.Equal(t, FanForwardCurved, ParseFanType(""))
	assert.Equal(t, FanForwardCurved, ParseFanType("mystery"))
}
