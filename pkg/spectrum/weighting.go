package spectrum

// A-weighting corrections (dB) per IEC 61672, tabulated at the octave-band
// center frequencies 63 Hz through 8 kHz.
var aWeighting = [BandCount]float64{-26.2, -16.1, -8.6, -3.2, 0.0, +1.2, +1.0, -1.1}

// AWeighted returns a copy of s with the A-weighting correction applied to
// each band. Silent bands stay silent.
func (s Spectrum) AWeighted() Spectrum {
	var out Spectrum
	for i, v := range s {
		out[i] = v + aWeighting[i]
	}
	return out
}

// DBA returns the A-weighted overall level: the power sum of the
// A-weighted bands. Returns -Inf for a fully silent spectrum.
func (s Spectrum) DBA() float64 {
	return s.AWeighted().Overall()
}
