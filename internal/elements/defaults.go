package elements

// Documented fallback geometry, substituted with a warning when an element
// record omits or zeroes a dimension. Substitution is the caller's job;
// the calculators themselves expect positive values.
const (
	DefaultLengthFt   = 10.0
	DefaultWidthIn    = 12.0
	DefaultHeightIn   = 12.0
	DefaultDiameterIn = 12.0

	// DefaultSilencerLengthFt matches the shortest cataloged unit.
	DefaultSilencerLengthFt = 3.0

	// Receiver room fallbacks for a terminal that opens into a modeled
	// space without stated room data.
	DefaultRoomVolumeFt3  = 3000.0
	DefaultRoomDistanceFt = 5.0
)
