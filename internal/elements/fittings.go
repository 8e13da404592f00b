package elements

import (
	"math"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// FittingForm identifies the geometry of an elbow or junction for both
// insertion loss and flow-generated noise.
type FittingForm int

const (
	// FormPlain is a square-throat elbow or plain branch takeoff.
	FormPlain FittingForm = iota

	// FormVaned is a square elbow fitted with turning vanes.
	FormVaned

	// FormRadius is a radiused (round-throat) elbow.
	FormRadius

	// FormTee90 is a 90 degree tee junction.
	FormTee90

	// FormWye45 is a 45 degree wye junction.
	FormWye45
)

// String returns a human-readable name for the fitting form.
func (f FittingForm) String() string {
	switch f {
	case FormPlain:
		return "plain"
	case FormVaned:
		return "vaned"
	case FormRadius:
		return "radius"
	case FormTee90:
		return "tee"
	case FormWye45:
		return "wye"
	default:
		return "unknown"
	}
}

// ParseFittingForm maps record fitting hints to a form, defaulting to
// FormPlain for anything unrecognized.
func ParseFittingForm(s string) FittingForm {
	switch s {
	case "vaned", "vanes", "turning-vanes":
		return FormVaned
	case "radius", "round", "radiused":
		return FormRadius
	case "tee", "tee90", "90":
		return FormTee90
	case "wye", "wye45", "45", "lateral":
		return FormWye45
	default:
		return FormPlain
	}
}

// Elbow insertion loss (dB) banded by the frequency-width product
// f(kHz)·w(in). Each entry applies up to its fw bound.
type fwBand struct {
	maxFW float64
	loss  float64
}

var elbowLossPlain = []fwBand{
	{1.9, 0}, {3.8, 1}, {7.5, 5}, {15, 8}, {30, 4}, {math.Inf(1), 3},
}

var elbowLossVaned = []fwBand{
	{1.9, 0}, {3.8, 1}, {7.5, 4}, {15, 6}, {math.Inf(1), 4},
}

var elbowLossRadius = []fwBand{
	{1.9, 0}, {3.8, 1}, {7.5, 2}, {math.Inf(1), 3},
}

func fwLookup(bands []fwBand, fw float64) float64 {
	for _, b := range bands {
		if fw <= b.maxFW {
			return b.loss
		}
	}
	return bands[len(bands)-1].loss
}

// ElbowInsertionLoss returns the attenuation of an elbow, banded by the
// frequency-width product. Junction forms attenuate like plain elbows.
func ElbowInsertionLoss(form FittingForm, widthIn float64) spectrum.Spectrum {
	var bands []fwBand
	switch form {
	case FormVaned:
		bands = elbowLossVaned
	case FormRadius:
		bands = elbowLossRadius
	case FormPlain, FormTee90, FormWye45:
		bands = elbowLossPlain
	default:
		bands = elbowLossPlain
	}

	var out spectrum.Spectrum
	for i := 0; i < spectrum.BandCount; i++ {
		fw := spectrum.Center(i) / 1000 * widthIn
		out[i] = fwLookup(bands, fw)
	}
	return out
}

// Flow-generated (regenerated) noise model constants. The base level at
// the reference velocity scales with 55·log10(V/Vref) and rolls off with
// frequency above the 63 Hz band. Velocities are ft/min throughout.
const (
	genVelocityRefFPM    = 1000.0
	genVelocitySlope     = 55.0
	genRolloffPerOctave  = 5.0
	genVelocityRatioGain = 20.0
)

// Base generated sound power (dB at 63 Hz, reference velocity) per form.
func genBaseLevel(form FittingForm) float64 {
	switch form {
	case FormPlain:
		return 20
	case FormVaned:
		return 20
	case FormRadius:
		return 17
	case FormTee90:
		return 26
	case FormWye45:
		return 22
	default:
		return 20
	}
}

// FittingGeneratedNoise returns the flow-generated noise of an elbow or
// junction. mainVelFPM and branchVelFPM are the upstream and leg
// velocities; for a simple elbow pass equal velocities and areas. The
// velocity-ratio and area-ratio terms then vanish and the model reduces
// to the plain velocity law. Turning vanes subtract a vane-count
// correction. Results below the reference are negative and are still
// meaningful contributions.
//
// Zero or negative leg velocity generates nothing and returns Silence.
func FittingGeneratedNoise(form FittingForm, mainVelFPM, branchVelFPM, mainAreaFt2, branchAreaFt2 float64, vanes int) spectrum.Spectrum {
	vel := math.Max(mainVelFPM, branchVelFPM)
	if vel <= 0 {
		return spectrum.Silence()
	}

	base := genBaseLevel(form) + genVelocitySlope*math.Log10(vel/genVelocityRefFPM)

	if mainVelFPM > 0 && branchVelFPM > 0 {
		base += genVelocityRatioGain * math.Log10(branchVelFPM/mainVelFPM)
	}
	if mainAreaFt2 > 0 && branchAreaFt2 > 0 {
		base += 10 * math.Log10(branchAreaFt2/mainAreaFt2)
	}
	if vanes > 0 {
		base -= 10 * math.Log10(float64(vanes)+1)
	}

	return rolloffSpectrum(base, genRolloffPerOctave)
}

// DamperGeneratedNoise returns the flow-generated noise of a balancing or
// volume damper. Damper noise sits higher and rolls off more slowly than
// elbow noise.
func DamperGeneratedNoise(velocityFPM float64) spectrum.Spectrum {
	if velocityFPM <= 0 {
		return spectrum.Silence()
	}
	base := 24 + genVelocitySlope*math.Log10(velocityFPM/genVelocityRefFPM)
	return rolloffSpectrum(base, 3.0)
}

// rolloffSpectrum spreads a 63 Hz base level across the bands, dropping
// perOctave dB per band. The bands are octave-spaced, so the band index
// is the octave count above 63 Hz.
func rolloffSpectrum(base, perOctave float64) spectrum.Spectrum {
	var out spectrum.Spectrum
	for i := 0; i < spectrum.BandCount; i++ {
		out[i] = base - perOctave*float64(i)
	}
	return out
}
