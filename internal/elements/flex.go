package elements

import (
	"errors"
	"fmt"

	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// ErrFlexDiameter reports a flexible duct diameter outside the tabulated
// 4 to 16 inch range. Out-of-range sizes are an input error, never
// silently clamped.
var ErrFlexDiameter = errors.New("elements: flexible duct diameter outside 4-16 inch table range")

// Flexible duct valid diameter bounds (in).
const (
	FlexMinDiameterIn = 4.0
	FlexMaxDiameterIn = 16.0
)

// Nonmetallic insulated flexible duct insertion loss, dB per foot, keyed
// by diameter (in). Scaled from the 10 ft listing basis.
var flexPerFt = []tableRow{
	{4, spectrum.Spectrum{0.6, 1.1, 1.2, 3.1, 3.7, 4.2, 2.7, 2.2}},
	{5, spectrum.Spectrum{0.7, 1.2, 1.4, 3.2, 3.8, 4.1, 2.6, 2.1}},
	{6, spectrum.Spectrum{0.8, 1.2, 1.7, 3.3, 3.8, 4.0, 2.6, 2.1}},
	{7, spectrum.Spectrum{0.9, 1.2, 1.9, 3.3, 3.7, 3.8, 2.5, 2.0}},
	{8, spectrum.Spectrum{0.8, 1.1, 2.1, 3.3, 3.7, 3.7, 2.4, 1.9}},
	{9, spectrum.Spectrum{0.8, 1.1, 2.2, 3.3, 3.7, 3.6, 2.2, 1.8}},
	{10, spectrum.Spectrum{0.8, 1.0, 2.2, 3.2, 3.6, 3.4, 2.1, 1.7}},
	{12, spectrum.Spectrum{0.7, 0.9, 2.0, 3.0, 3.4, 3.1, 1.8, 1.4}},
	{14, spectrum.Spectrum{0.5, 0.7, 1.6, 2.7, 3.1, 2.7, 1.4, 1.1}},
	{16, spectrum.Spectrum{0.2, 0.4, 0.9, 2.3, 2.8, 2.3, 0.9, 0.7}},
}

// FlexDuctInsertionLoss returns the insertion loss of a flexible duct run.
// Diameters between rows interpolate; diameters outside the 4-16 inch
// table range return ErrFlexDiameter.
func FlexDuctInsertionLoss(diameterIn, lengthFt float64) (spectrum.Spectrum, error) {
	if diameterIn < FlexMinDiameterIn || diameterIn > FlexMaxDiameterIn {
		return spectrum.Spectrum{}, fmt.Errorf("%w: %.1f in", ErrFlexDiameter, diameterIn)
	}
	return scale(interpRows(flexPerFt, diameterIn), lengthFt), nil
}
