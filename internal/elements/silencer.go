package elements

import "github.com/hvackit/ductnoise/pkg/spectrum"

// Packed dissipative silencer insertion loss (dB), keyed by silencer body
// length (ft). Lengths between rows interpolate; lengths outside clamp to
// the nearest catalog size.
var silencerLoss = []tableRow{
	{3, spectrum.Spectrum{5, 8, 15, 24, 31, 28, 20, 14}},
	{5, spectrum.Spectrum{7, 12, 24, 38, 45, 40, 28, 20}},
	{7, spectrum.Spectrum{9, 16, 31, 48, 55, 50, 36, 25}},
}

// SilencerInsertionLoss returns the insertion loss of a packed duct
// silencer of the given body length.
func SilencerInsertionLoss(lengthFt float64) spectrum.Spectrum {
	return interpRows(silencerLoss, lengthFt)
}
