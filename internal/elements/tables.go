// Package elements implements the per-element acoustic calculators: duct
// and fitting attenuation, flow-generated noise, end reflection, room
// correction, and fan sound power estimation. Every calculator is a
// stateless function of geometry and flow; reference data lives in
// package-level tables initialized at load and never mutated.
//
// Tabulated coefficients follow the sheet-metal and fitting data published
// in the ASHRAE Handbook HVAC Applications sound chapter.
package elements

import "github.com/hvackit/ductnoise/pkg/spectrum"

// tableRow is one row of a size-indexed reference table: a key (duct
// cross-section area, diameter, or silencer length) and its per-band
// values.
type tableRow struct {
	key    float64
	levels spectrum.Spectrum
}

// interpRows linearly interpolates per-band values between the two rows
// bracketing key. Keys must ascend. Outside the table the nearest row is
// used unchanged.
func interpRows(rows []tableRow, key float64) spectrum.Spectrum {
	if key <= rows[0].key {
		return rows[0].levels
	}
	last := len(rows) - 1
	if key >= rows[last].key {
		return rows[last].levels
	}
	hi := 1
	for rows[hi].key < key {
		hi++
	}
	lo := hi - 1
	frac := (key - rows[lo].key) / (rows[hi].key - rows[lo].key)

	var out spectrum.Spectrum
	for i := 0; i < spectrum.BandCount; i++ {
		a := rows[lo].levels[i]
		b := rows[hi].levels[i]
		out[i] = a + (b-a)*frac
	}
	return out
}

// scale multiplies every band by factor.
func scale(s spectrum.Spectrum, factor float64) spectrum.Spectrum {
	var out spectrum.Spectrum
	for i, v := range s {
		out[i] = v * factor
	}
	return out
}
