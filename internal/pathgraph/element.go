// Package pathgraph orders an unordered set of component and segment
// records into the deterministic source-to-terminal sequence the
// propagation engine walks. Type strings are parsed into the closed Kind
// enum here, once, at the boundary.
package pathgraph

import (
	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// Kind classifies a path element for calculator dispatch. The set is
// closed: every consumer switches exhaustively over it.
type Kind int

const (
	// KindSource is active equipment that defines flow and injects the
	// starting spectrum: fans, air handlers, blowers, compressors.
	KindSource Kind = iota

	// KindDuct is a rigid rectangular or circular duct run.
	KindDuct

	// KindFlexDuct is a nonmetallic flexible duct run.
	KindFlexDuct

	// KindElbow is a direction change in the run.
	KindElbow

	// KindJunction splits flow into a continuing main leg and a branch.
	KindJunction

	// KindDamper is a balancing or volume damper.
	KindDamper

	// KindSilencer is a packed dissipative silencer.
	KindSilencer

	// KindReducer is a cross-section transition. Acoustically inert but
	// changes velocity.
	KindReducer

	// KindTerminal is the outlet the path delivers to: diffuser, grille,
	// register.
	KindTerminal
)

// String returns the lowercase kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindDuct:
		return "duct"
	case KindFlexDuct:
		return "flex"
	case KindElbow:
		return "elbow"
	case KindJunction:
		return "junction"
	case KindDamper:
		return "damper"
	case KindSilencer:
		return "silencer"
	case KindReducer:
		return "reducer"
	case KindTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// ParseKind maps a component type string to its Kind. Unrecognized types
// return (KindReducer, false): the element passes through acoustically
// and the caller records a warning.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "fan", "ahu", "air-handler", "blower", "compressor", "rtu":
		return KindSource, true
	case "duct":
		return KindDuct, true
	case "flex", "flexible", "flex-duct":
		return KindFlexDuct, true
	case "elbow", "bend":
		return KindElbow, true
	case "junction", "tee", "wye", "branch", "takeoff":
		return KindJunction, true
	case "damper":
		return KindDamper, true
	case "silencer", "attenuator", "sound-trap":
		return KindSilencer, true
	case "reducer", "transition":
		return KindReducer, true
	case "diffuser", "grille", "register", "terminal", "outlet":
		return KindTerminal, true
	default:
		return KindReducer, false
	}
}

// IsSourceType reports whether a raw component type string names active
// equipment that defines flow.
func IsSourceType(s string) bool {
	k, ok := ParseKind(s)
	return ok && k == KindSource
}

// BranchLeg captures a junction leg not taken by the ordered path. The
// flow propagator subtracts its demand from the continuing main leg.
type BranchLeg struct {
	ComponentID string
	CFM         float64
	AreaFt2     float64
}

// Element is one entry of an OrderedPath: a component or a connecting
// segment, normalized for the propagation engine. Flow fields are zero
// until the flow propagator fills them.
type Element struct {
	ID   string
	Kind Kind

	// Geometry. Rectangular elements set width and height; circular ones
	// set diameter. Lengths apply to duct runs only.
	WidthIn    float64
	HeightIn   float64
	DiameterIn float64
	LengthFt   float64
	LiningIn   float64

	// Fitting hints, raw from the record.
	Fitting     string
	Vanes       int
	Termination string

	// Source data.
	SourceSpectrum     *spectrum.Spectrum
	FanType            string
	StaticPressureInWG float64
	RPM                int
	Blades             int

	// Junction legs not taken by the path.
	Branches []BranchLeg

	// Filled by the flow propagator.
	CFM            float64
	VelocityFPM    float64
	AreaFt2        float64
	BranchCFM      float64
	BranchVelocity float64
	BranchAreaFt2  float64
}

// componentElement normalizes a component record.
func componentElement(rec models.ComponentRecord, kind Kind) *Element {
	return &Element{
		ID:                 rec.ID,
		Kind:               kind,
		WidthIn:            rec.WidthIn,
		HeightIn:           rec.HeightIn,
		DiameterIn:         rec.DiameterIn,
		LiningIn:           rec.LiningIn,
		Fitting:            rec.Fitting,
		Vanes:              rec.Vanes,
		Termination:        rec.Termination,
		SourceSpectrum:     rec.Spectrum,
		FanType:            rec.FanType,
		StaticPressureInWG: rec.StaticPressureInWG,
		RPM:                rec.RPM,
		Blades:             rec.Blades,
		CFM:                rec.CFM,
	}
}

// segmentElement normalizes a segment record into a duct run element.
func segmentElement(seg models.SegmentRecord) *Element {
	kind := KindDuct
	if seg.Flexible {
		kind = KindFlexDuct
	}
	return &Element{
		ID:         seg.ID,
		Kind:       kind,
		WidthIn:    seg.WidthIn,
		HeightIn:   seg.HeightIn,
		DiameterIn: seg.DiameterIn,
		LengthFt:   seg.LengthFt,
		LiningIn:   seg.LiningIn,
	}
}

// OrderedPath is the deterministic element sequence from source to
// terminal, with the warnings the ordering produced.
type OrderedPath struct {
	Elements []*Element
	Warnings []string
}
