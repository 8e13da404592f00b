package elements

import (
	"math"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// Unlined rectangular sheet-metal duct attenuation, dB per foot, keyed by
// cross-section area (in²). Low bands attenuate most; everything at or
// above 500 Hz shares the sheet-metal breakout floor.
var rectUnlinedPerFt = []tableRow{
	{36, spectrum.Spectrum{0.30, 0.20, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10}},   // 6x6
	{144, spectrum.Spectrum{0.35, 0.20, 0.10, 0.06, 0.06, 0.06, 0.06, 0.06}},  // 12x12
	{288, spectrum.Spectrum{0.40, 0.25, 0.10, 0.05, 0.05, 0.05, 0.05, 0.05}},  // 12x24
	{576, spectrum.Spectrum{0.25, 0.20, 0.10, 0.03, 0.03, 0.03, 0.03, 0.03}},  // 24x24
	{2304, spectrum.Spectrum{0.15, 0.10, 0.07, 0.02, 0.02, 0.02, 0.02, 0.02}}, // 48x48
	{5184, spectrum.Spectrum{0.10, 0.10, 0.05, 0.02, 0.02, 0.02, 0.02, 0.02}}, // 72x72
}

// Rectangular duct insertion loss with 1-inch fiberglass lining, dB per
// foot, keyed by cross-section area (in²).
var rectLined1PerFt = []tableRow{
	{36, spectrum.Spectrum{0.6, 1.5, 2.7, 5.8, 7.4, 4.3, 2.8, 2.3}},
	{144, spectrum.Spectrum{0.4, 0.8, 1.9, 4.0, 4.1, 2.8, 2.2, 1.8}},
	{576, spectrum.Spectrum{0.2, 0.5, 1.4, 2.8, 2.4, 1.9, 1.4, 1.1}},
	{2304, spectrum.Spectrum{0.1, 0.3, 1.0, 1.9, 1.4, 1.2, 0.8, 0.6}},
}

// Same, 2-inch lining.
var rectLined2PerFt = []tableRow{
	{36, spectrum.Spectrum{0.8, 2.9, 4.9, 7.2, 7.4, 4.3, 2.8, 2.3}},
	{144, spectrum.Spectrum{0.5, 1.5, 3.6, 5.7, 4.1, 2.8, 2.2, 1.8}},
	{576, spectrum.Spectrum{0.3, 0.9, 2.7, 4.0, 2.4, 1.9, 1.4, 1.1}},
	{2304, spectrum.Spectrum{0.2, 0.5, 1.8, 2.6, 1.4, 1.2, 0.8, 0.6}},
}

// Unlined circular duct attenuation, dB per foot, stepwise by diameter.
// Round duct is far stiffer than rectangular and attenuates little.
var roundUnlinedPerFt = []struct {
	maxDiameterIn float64
	levels        spectrum.Spectrum
}{
	{7, spectrum.Spectrum{0.03, 0.03, 0.05, 0.05, 0.10, 0.10, 0.10, 0.10}},
	{15, spectrum.Spectrum{0.03, 0.03, 0.03, 0.05, 0.07, 0.07, 0.07, 0.07}},
	{30, spectrum.Spectrum{0.02, 0.02, 0.02, 0.03, 0.05, 0.05, 0.05, 0.05}},
	{math.Inf(1), spectrum.Spectrum{0.01, 0.01, 0.01, 0.02, 0.02, 0.02, 0.02, 0.02}},
}

// Acoustically lined spiral round duct insertion loss, dB per foot, keyed
// by diameter (in), 1-inch lining basis.
var roundLinedPerFt = []tableRow{
	{6, spectrum.Spectrum{0.38, 0.59, 0.93, 1.53, 2.17, 2.31, 2.04, 1.26}},
	{12, spectrum.Spectrum{0.23, 0.46, 0.81, 1.45, 2.18, 1.91, 1.48, 0.97}},
	{24, spectrum.Spectrum{0.07, 0.25, 0.57, 1.28, 1.71, 1.24, 0.85, 0.55}},
	{36, spectrum.Spectrum{0.01, 0.12, 0.28, 0.71, 1.24, 0.85, 0.55, 0.34}},
	{48, spectrum.Spectrum{0.00, 0.03, 0.22, 0.64, 1.12, 0.69, 0.42, 0.26}},
}

// RectDuctAttenuation returns the attenuation of a rectangular duct run.
// liningIn of 0 selects the unlined sheet-metal table; positive values
// snap to the nearer of the 1-inch and 2-inch lining tables. Sizes between
// table rows interpolate on cross-section area.
func RectDuctAttenuation(widthIn, heightIn, lengthFt, liningIn float64) spectrum.Spectrum {
	area := widthIn * heightIn
	var perFt spectrum.Spectrum
	switch {
	case liningIn <= 0:
		perFt = interpRows(rectUnlinedPerFt, area)
	case liningIn < 1.5:
		perFt = interpRows(rectLined1PerFt, area)
	default:
		perFt = interpRows(rectLined2PerFt, area)
	}
	return scale(perFt, lengthFt)
}

// RoundDuctAttenuation returns the attenuation of a circular duct run.
// Unlined values are stepwise by diameter class; lined values interpolate
// between tabulated diameters.
func RoundDuctAttenuation(diameterIn, lengthFt, liningIn float64) spectrum.Spectrum {
	if liningIn > 0 {
		return scale(interpRows(roundLinedPerFt, diameterIn), lengthFt)
	}
	for _, row := range roundUnlinedPerFt {
		if diameterIn <= row.maxDiameterIn {
			return scale(row.levels, lengthFt)
		}
	}
	return scale(roundUnlinedPerFt[len(roundUnlinedPerFt)-1].levels, lengthFt)
}

// EquivalentDiameterIn converts a rectangular cross section to the
// diameter of the circle with equal area.
func EquivalentDiameterIn(widthIn, heightIn float64) float64 {
	return math.Sqrt(4 * widthIn * heightIn / math.Pi)
}
