package models

import (
	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// ComponentRecord describes one piece of mechanical equipment or fitting
// in a path graph, as supplied by the caller
type ComponentRecord struct {
	ID   string `json:"id" minLength:"1" required:"true" doc:"Unique component identifier"`
	Type string `json:"type" required:"true" doc:"Component type: fan, ahu, blower, compressor, duct, flex, elbow, junction, tee, wye, damper, silencer, reducer, diffuser, grille, terminal"`

	CFM float64 `json:"cfm,omitempty" minimum:"0" doc:"Design airflow in CFM; set on active sources and branch outlets"`

	WidthIn    float64 `json:"width_in,omitempty" minimum:"0" doc:"Rectangular width in inches"`
	HeightIn   float64 `json:"height_in,omitempty" minimum:"0" doc:"Rectangular height in inches"`
	DiameterIn float64 `json:"diameter_in,omitempty" minimum:"0" doc:"Circular diameter in inches"`
	LiningIn   float64 `json:"lining_in,omitempty" minimum:"0" doc:"Acoustic lining thickness in inches, 0 for unlined"`

	Fitting     string `json:"fitting,omitempty" doc:"Fitting form hint: plain, vaned, radius, tee, wye"`
	Vanes       int    `json:"vanes,omitempty" minimum:"0" doc:"Turning vane count"`
	Termination string `json:"termination,omitempty" doc:"Terminal mounting: flush or free"`

	Spectrum *spectrum.Spectrum `json:"spectrum,omitempty" doc:"Measured octave-band sound power in dB, 63 Hz to 8 kHz"`

	FanType            string  `json:"fan_type,omitempty" doc:"Fan family for sound power estimation when no spectrum is given"`
	StaticPressureInWG float64 `json:"static_pressure_inwg,omitempty" minimum:"0" doc:"Fan static pressure in inches of water"`
	RPM                int     `json:"rpm,omitempty" minimum:"0" doc:"Fan speed"`
	Blades             int     `json:"blades,omitempty" minimum:"0" doc:"Fan blade count"`
}

// SegmentRecord is a duct run connecting two components
type SegmentRecord struct {
	ID     string `json:"id" minLength:"1" required:"true" doc:"Unique segment identifier"`
	FromID string `json:"from_id" required:"true" doc:"Upstream component id"`
	ToID   string `json:"to_id" required:"true" doc:"Downstream component id"`

	LengthFt   float64 `json:"length_ft,omitempty" minimum:"0" doc:"Run length in feet"`
	WidthIn    float64 `json:"width_in,omitempty" minimum:"0" doc:"Rectangular width in inches"`
	HeightIn   float64 `json:"height_in,omitempty" minimum:"0" doc:"Rectangular height in inches"`
	DiameterIn float64 `json:"diameter_in,omitempty" minimum:"0" doc:"Circular diameter in inches"`
	LiningIn   float64 `json:"lining_in,omitempty" minimum:"0" doc:"Acoustic lining thickness in inches"`
	Flexible   bool    `json:"flexible,omitempty" doc:"Nonmetallic flexible duct run"`

	OrderIndex int `json:"order_index,omitempty" doc:"Stored fallback ordering position, used when graph traversal cannot order the path"`
}

// RoomRecord describes the receiver room a terminal discharges into
type RoomRecord struct {
	VolumeFt3  float64 `json:"volume_ft3,omitempty" minimum:"0" doc:"Room volume in cubic feet"`
	DistanceFt float64 `json:"distance_ft,omitempty" minimum:"0" doc:"Listener distance from the outlet in feet"`
}

// PathInput is one source-to-terminal path: the unordered component set,
// the segments connecting them, and optional calculation context
type PathInput struct {
	Name            string            `json:"name,omitempty" maxLength:"200" doc:"Caller label for the path"`
	Components      []ComponentRecord `json:"components" minItems:"2" required:"true" doc:"Unordered component set"`
	Segments        []SegmentRecord   `json:"segments" minItems:"1" required:"true" doc:"Connections between components"`
	PreferredSource string            `json:"preferred_source,omitempty" doc:"Component id to order from when several sources qualify"`
	Room            *RoomRecord       `json:"room,omitempty" doc:"Receiver room at the terminal, when modeled"`
}

// PathSet is the batch document uploaded for asynchronous calculation
type PathSet struct {
	Paths []PathInput `json:"paths" minItems:"1" required:"true" doc:"Paths to calculate"`
}
