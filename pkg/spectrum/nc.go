package spectrum

import "fmt"

// NCRating is a Noise Criteria designation from the tabulated curve family
// (NC-15 through NC-70). Spectra outside the family map to the two
// sentinel values below.
type NCRating int

const (
	// NCBelowRange reports a spectrum strictly below the NC-15 curve in
	// every octave band.
	NCBelowRange NCRating = 0

	// NCAboveRange reports a spectrum exceeding the NC-70 curve in at
	// least one band. Ratings are never extrapolated past the family.
	NCAboveRange NCRating = -1
)

// Rated reports whether r is a curve designation rather than a sentinel.
func (r NCRating) Rated() bool {
	return r > 0
}

// String returns "NC-35" style labels, "none" below the family and
// "unavailable" above it.
func (r NCRating) String() string {
	switch r {
	case NCBelowRange:
		return "none"
	case NCAboveRange:
		return "unavailable"
	default:
		return fmt.Sprintf("NC-%d", int(r))
	}
}

// ncCurve pairs an NC designation with its octave-band limits (dB) at the
// eight standard centers.
type ncCurve struct {
	rating NCRating
	limits Spectrum
}

// NC reference curves per ANSI S12.2, ascending. 63 Hz through 8 kHz.
var ncCurves = []ncCurve{
	{15, Spectrum{47, 36, 29, 22, 17, 14, 12, 11}},
	{20, Spectrum{51, 40, 33, 26, 22, 19, 17, 16}},
	{25, Spectrum{54, 44, 37, 31, 27, 24, 22, 21}},
	{30, Spectrum{57, 48, 41, 35, 31, 29, 28, 27}},
	{35, Spectrum{60, 52, 45, 40, 36, 34, 33, 32}},
	{40, Spectrum{64, 56, 50, 45, 41, 39, 38, 37}},
	{45, Spectrum{67, 60, 54, 49, 46, 44, 43, 42}},
	{50, Spectrum{71, 64, 58, 54, 51, 49, 48, 47}},
	{55, Spectrum{74, 67, 62, 58, 56, 54, 53, 52}},
	{60, Spectrum{77, 71, 67, 63, 61, 59, 58, 57}},
	{65, Spectrum{80, 75, 71, 68, 66, 64, 63, 62}},
	{70, Spectrum{83, 79, 75, 72, 71, 70, 69, 68}},
}

// RateNC finds the lowest NC curve that s does not exceed in any band.
// A spectrum strictly under NC-15 everywhere rates NCBelowRange; one
// exceeding NC-70 anywhere rates NCAboveRange.
func RateNC(s Spectrum) NCRating {
	if strictlyBelow(s, ncCurves[0].limits) {
		return NCBelowRange
	}
	for _, c := range ncCurves {
		if !exceeds(s, c.limits) {
			return c.rating
		}
	}
	return NCAboveRange
}

func exceeds(s, limits Spectrum) bool {
	for i := range s {
		if s[i] > limits[i] {
			return true
		}
	}
	return false
}

func strictlyBelow(s, limits Spectrum) bool {
	for i := range s {
		if s[i] >= limits[i] {
			return false
		}
	}
	return true
}
