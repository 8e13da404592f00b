// Package spectrum provides octave-band sound level arithmetic for the
// eight standard bands between 63 Hz and 8 kHz: power-domain combination,
// attenuation, A-weighted overall level, and NC curve rating.
package spectrum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// BandCount is the number of octave bands carried by a Spectrum.
const BandCount = 8

// Standard octave-band center frequencies (Hz) per ANSI S1.11.
var centers = [BandCount]float64{63, 125, 250, 500, 1000, 2000, 4000, 8000}

// Centers returns the octave-band center frequencies in ascending order.
func Centers() [BandCount]float64 {
	return centers
}

// Center returns the center frequency (Hz) of band i.
// Panics if i is out of range, as does any array index.
func Center(i int) float64 {
	return centers[i]
}

// Spectrum holds one sound level (dB) per octave band, indexed low to high
// frequency. Band order is fixed by construction; there is no permutation
// to guard against.
//
// A band with no sound energy is math.Inf(-1). Silent bands marshal to
// JSON as null and unmarshal back to -Inf.
type Spectrum [BandCount]float64

// Silence returns a spectrum with no energy in any band.
func Silence() Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = math.Inf(-1)
	}
	return s
}

// Flat returns a spectrum with the same level in every band.
func Flat(level float64) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = level
	}
	return s
}

// CombineLevels adds two sound levels in the power domain:
//
//	10·log10(10^(a/10) + 10^(b/10))
//
// A silent operand (-Inf) leaves the other level exactly unchanged, so
// combining with Silence is an identity. Negative finite levels are valid
// operands and contribute like any other.
func CombineLevels(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	return 10 * math.Log10(math.Pow(10, a/10)+math.Pow(10, b/10))
}

// Combine returns the band-by-band power sum of s and other.
func (s Spectrum) Combine(other Spectrum) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = CombineLevels(s[i], other[i])
	}
	return out
}

// Attenuate subtracts loss band-by-band, flooring each resulting level at
// 0 dB so a band never goes negative. Silent bands stay silent.
func (s Spectrum) Attenuate(loss Spectrum) Spectrum {
	var out Spectrum
	for i := range s {
		if math.IsInf(s[i], -1) {
			out[i] = s[i]
			continue
		}
		v := s[i] - loss[i]
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

// Overall returns the unweighted power sum across all bands, or -Inf for a
// fully silent spectrum.
func (s Spectrum) Overall() float64 {
	sum := 0.0
	for _, v := range s {
		if math.IsInf(v, -1) {
			continue
		}
		sum += math.Pow(10, v/10)
	}
	if sum <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(sum)
}

var jsonNull = []byte("null")

// MarshalJSON encodes the spectrum as a fixed 8-element array, writing
// null for silent bands since JSON has no -Inf literal.
func (s Spectrum) MarshalJSON() ([]byte, error) {
	vals := make([]any, BandCount)
	for i, v := range s {
		if math.IsInf(v, -1) {
			continue
		}
		vals[i] = v
	}
	return json.Marshal(vals)
}

// UnmarshalJSON decodes an 8-element array, mapping null bands to -Inf.
func (s *Spectrum) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	if len(raw) != BandCount {
		return fmt.Errorf("spectrum: expected %d bands, got %d", BandCount, len(raw))
	}
	for i, r := range raw {
		if bytes.Equal(r, jsonNull) {
			s[i] = math.Inf(-1)
			continue
		}
		if err := json.Unmarshal(r, &s[i]); err != nil {
			return fmt.Errorf("spectrum: band %d: %w", i, err)
		}
	}
	return nil
}
