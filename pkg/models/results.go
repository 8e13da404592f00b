package models

import (
	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// ElementDiagnostic records one element's contribution to the running
// spectrum, in path order
type ElementDiagnostic struct {
	ElementID   string            `json:"element_id" doc:"Component or segment id"`
	Kind        string            `json:"kind" doc:"Element kind after type parsing"`
	FlowCFM     float64           `json:"flow_cfm" doc:"Airflow through the element in CFM"`
	VelocityFPM float64           `json:"velocity_fpm" doc:"Air velocity in ft/min"`
	Attenuation spectrum.Spectrum `json:"attenuation" doc:"Attenuation applied by this element in dB"`
	Generated   spectrum.Spectrum `json:"generated" doc:"Flow-generated noise combined at this element in dB; null bands mean no contribution"`
	Before      spectrum.Spectrum `json:"before" doc:"Running spectrum entering the element"`
	After       spectrum.Spectrum `json:"after" doc:"Running spectrum leaving the element"`
}

// PathResult is the calculated outcome at a path terminal
type PathResult struct {
	Name     string            `json:"name,omitempty" doc:"Caller label, echoed from the input"`
	Spectrum spectrum.Spectrum `json:"spectrum" doc:"Terminal octave-band levels in dB, 63 Hz to 8 kHz"`
	DBA      float64           `json:"dba" doc:"A-weighted overall level"`
	NC       int               `json:"nc" doc:"NC rating; 0 when below NC-15, -1 when above NC-70"`
	NCLabel  string            `json:"nc_label" doc:"Display label: NC-35 style, none, or unavailable"`

	Elements []ElementDiagnostic `json:"elements,omitempty" doc:"Per-element diagnostic trail in path order"`
	Warnings []string            `json:"warnings,omitempty" doc:"Data-quality notes recorded during calculation"`

	// Error is set instead of the acoustic fields when a path in a batch
	// fails structurally, keeping its slot in document order.
	Error string `json:"error,omitempty" doc:"Failure message when this path could not be calculated"`
}
