package elements

import (
	"math"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// Termination describes how a duct run ends at the outlet.
type Termination int

const (
	// TerminationFlush is an outlet mounted flush in a wall or ceiling.
	TerminationFlush Termination = iota

	// TerminationFree is an outlet ending in free space.
	TerminationFree
)

// String returns "flush" or "free".
func (t Termination) String() string {
	if t == TerminationFree {
		return "free"
	}
	return "flush"
}

// ParseTermination maps record hints to a termination, defaulting to
// flush.
func ParseTermination(s string) Termination {
	switch s {
	case "free", "free-space", "open":
		return TerminationFree
	default:
		return TerminationFlush
	}
}

// End reflection loss (dB) for the five bands at or below 1 kHz, keyed by
// outlet diameter (in). Low frequencies reflect most strongly at small
// terminations; every row decreases with frequency and every column with
// diameter.
var erlFlushTable = []tableRow{
	{6, spectrum.Spectrum{18, 12, 7, 3, 1, 0, 0, 0}},
	{8, spectrum.Spectrum{16, 10, 5, 2, 1, 0, 0, 0}},
	{10, spectrum.Spectrum{14, 9, 4, 2, 1, 0, 0, 0}},
	{12, spectrum.Spectrum{12, 7, 3, 1, 0, 0, 0, 0}},
	{16, spectrum.Spectrum{10, 5, 2, 1, 0, 0, 0, 0}},
	{20, spectrum.Spectrum{9, 4, 2, 1, 0, 0, 0, 0}},
	{24, spectrum.Spectrum{8, 3, 1, 0, 0, 0, 0, 0}},
	{28, spectrum.Spectrum{7, 3, 1, 0, 0, 0, 0, 0}},
	{32, spectrum.Spectrum{6, 2, 1, 0, 0, 0, 0, 0}},
	{36, spectrum.Spectrum{5, 2, 1, 0, 0, 0, 0, 0}},
	{48, spectrum.Spectrum{4, 1, 0, 0, 0, 0, 0, 0}},
	{72, spectrum.Spectrum{2, 1, 0, 0, 0, 0, 0, 0}},
}

var erlFreeTable = []tableRow{
	{6, spectrum.Spectrum{20, 14, 9, 5, 2, 0, 0, 0}},
	{8, spectrum.Spectrum{18, 12, 7, 3, 1, 0, 0, 0}},
	{10, spectrum.Spectrum{16, 10, 5, 2, 1, 0, 0, 0}},
	{12, spectrum.Spectrum{14, 9, 4, 2, 1, 0, 0, 0}},
	{16, spectrum.Spectrum{12, 7, 3, 1, 0, 0, 0, 0}},
	{20, spectrum.Spectrum{10, 6, 2, 1, 0, 0, 0, 0}},
	{24, spectrum.Spectrum{9, 5, 2, 1, 0, 0, 0, 0}},
	{28, spectrum.Spectrum{8, 4, 1, 1, 0, 0, 0, 0}},
	{32, spectrum.Spectrum{7, 3, 1, 0, 0, 0, 0, 0}},
	{36, spectrum.Spectrum{6, 3, 1, 0, 0, 0, 0, 0}},
	{48, spectrum.Spectrum{5, 2, 1, 0, 0, 0, 0, 0}},
	{72, spectrum.Spectrum{3, 1, 0, 0, 0, 0, 0, 0}},
}

// End reflection analytic model, used above the tabulated bands:
//
//	ERL = 10·log10(1 + (a1·c0 / (π·f·D))²)
//
// with D in feet. a1 distinguishes flush from free terminations.
const (
	soundSpeedFtPerS = 1128.0
	erlCoefFlush     = 0.7
	erlCoefFree      = 1.0
)

// erlTableBands is the count of low bands (63 Hz through 1 kHz) served by
// the empirical tables; higher bands use the analytic model.
const erlTableBands = 5

// EndReflectionLoss returns the low-frequency reflection loss at a duct
// termination of the given diameter. Bands at or below 1 kHz come from
// the empirical tables, interpolated between diameter rows; bands above
// come from the analytic model, capped at the preceding band so the loss
// never grows back with frequency across the seam.
func EndReflectionLoss(diameterIn float64, term Termination) spectrum.Spectrum {
	table := erlFlushTable
	a1 := erlCoefFlush
	if term == TerminationFree {
		table = erlFreeTable
		a1 = erlCoefFree
	}

	out := interpRows(table, diameterIn)

	diameterFt := diameterIn / 12
	for i := erlTableBands; i < spectrum.BandCount; i++ {
		x := a1 * soundSpeedFtPerS / (math.Pi * spectrum.Center(i) * diameterFt)
		v := 10 * math.Log10(1+x*x)
		if v > out[i-1] {
			v = out[i-1]
		}
		out[i] = v
	}
	return out
}

// RoomCorrection returns the signed per-band adjustment converting sound
// power at the terminal to sound pressure at a listener in the room,
// after Schultz:
//
//	ΔL(f) = 25 − 5·log10(V) − 3·log10(f) − 10·log10(r)
//
// with room volume V in ft³ and listener distance r in ft. Values are
// negative for ordinary rooms and grow more negative with frequency.
func RoomCorrection(volumeFt3, distanceFt float64) spectrum.Spectrum {
	var out spectrum.Spectrum
	for i := 0; i < spectrum.BandCount; i++ {
		out[i] = 25 - 5*math.Log10(volumeFt3) - 3*math.Log10(spectrum.Center(i)) - 10*math.Log10(distanceFt)
	}
	return out
}
