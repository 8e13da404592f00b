// Package engine walks an ordered path from source to terminal, applying
// each element's attenuation and flow-generated noise to a running
// octave-band spectrum, then aggregates the terminal spectrum into an
// A-weighted level and an NC rating.
package engine

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/hvackit/ductnoise/internal/airflow"
	"github.com/hvackit/ductnoise/internal/elements"
	"github.com/hvackit/ductnoise/internal/pathgraph"
	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/hvackit/ductnoise/pkg/spectrum"
)

const (
	// DefaultSourceLevelDB seeds the running spectrum when the source
	// supplies neither a measured spectrum nor fan parameters.
	DefaultSourceLevelDB = 50.0

	// DefaultFanPressureInWG stands in when a fan source states a type
	// but no static pressure.
	DefaultFanPressureInWG = 1.0
)

// Engine calculates path acoustics. Safe for concurrent use: reference
// tables are immutable and every calculation owns its working state.
type Engine struct {
	log zerolog.Logger
}

// New returns an Engine writing diagnostics to log.
func New(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// CalculatePath orders the input graph, propagates flow, and walks the
// ordered elements accumulating the terminal spectrum. Structural graph
// errors abort the path; element-level anomalies degrade to a warning
// and a zero contribution.
func (e *Engine) CalculatePath(input models.PathInput) (*models.PathResult, error) {
	var opts []pathgraph.Option
	if input.PreferredSource != "" {
		opts = append(opts, pathgraph.WithPreferredSource(input.PreferredSource))
	}
	path, err := pathgraph.Order(input.Components, input.Segments, opts...)
	if err != nil {
		return nil, err
	}

	warnings := path.Warnings
	warnings = append(warnings, airflow.Propagate(path)...)
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	running := spectrum.Flat(DefaultSourceLevelDB)
	if path.Elements[0].Kind != pathgraph.KindSource {
		warn("path does not begin at a source, starting from flat %.0f dB", DefaultSourceLevelDB)
	}

	trail := make([]models.ElementDiagnostic, 0, len(path.Elements))
	for i, el := range path.Elements {
		before := running
		var att spectrum.Spectrum
		gen := spectrum.Silence()

		if i == 0 && el.Kind == pathgraph.KindSource {
			running = e.sourceSpectrum(el, warn)
			before = spectrum.Silence()
			gen = running
		} else {
			att, gen = e.elementEffect(el, input.Room, warn)
			running = running.Attenuate(att).Combine(gen)
		}

		trail = append(trail, models.ElementDiagnostic{
			ElementID:   el.ID,
			Kind:        el.Kind.String(),
			FlowCFM:     el.CFM,
			VelocityFPM: el.VelocityFPM,
			Attenuation: att,
			Generated:   gen,
			Before:      before,
			After:       running,
		})
	}

	dba := running.DBA()
	if math.IsInf(dba, -1) {
		warn("terminal spectrum is silent, reporting 0 dBA")
		dba = 0
	}

	rating := spectrum.RateNC(running)
	result := &models.PathResult{
		Name:     input.Name,
		Spectrum: running,
		DBA:      dba,
		NC:       int(rating),
		NCLabel:  rating.String(),
		Elements: trail,
		Warnings: warnings,
	}

	e.log.Debug().
		Str("path", input.Name).
		Int("elements", len(path.Elements)).
		Int("warnings", len(warnings)).
		Float64("dba", result.DBA).
		Str("nc", result.NCLabel).
		Msg("path calculated")

	return result, nil
}

// sourceSpectrum resolves what a source injects: its measured spectrum
// when supplied, else a fan sound power estimate, else the flat default.
func (e *Engine) sourceSpectrum(el *pathgraph.Element, warn func(string, ...any)) spectrum.Spectrum {
	if el.SourceSpectrum != nil {
		return *el.SourceSpectrum
	}
	if el.FanType != "" {
		pressure := el.StaticPressureInWG
		if pressure <= 0 {
			warn("fan %q has no static pressure, assuming %.1f in wg", el.ID, DefaultFanPressureInWG)
			pressure = DefaultFanPressureInWG
		}
		return elements.FanSoundPower(elements.ParseFanType(el.FanType), el.CFM, pressure, el.RPM, el.Blades)
	}
	warn("source %q has no spectrum or fan data, assuming flat %.0f dB", el.ID, DefaultSourceLevelDB)
	return spectrum.Flat(DefaultSourceLevelDB)
}

// elementEffect resolves one element's attenuation and generated-noise
// spectra. The kind switch is exhaustive over the closed enum.
func (e *Engine) elementEffect(el *pathgraph.Element, room *models.RoomRecord, warn func(string, ...any)) (att, gen spectrum.Spectrum) {
	gen = spectrum.Silence()

	switch el.Kind {
	case pathgraph.KindSource:
		// A source past the head of the path is inline equipment; its
		// output combines into the running spectrum.
		gen = e.sourceSpectrum(el, warn)

	case pathgraph.KindDuct:
		att = ductAttenuation(el, warn)

	case pathgraph.KindFlexDuct:
		d := el.DiameterIn
		if d <= 0 {
			warn("flex duct %q has no diameter, using %.0f in", el.ID, elements.DefaultDiameterIn)
			d = elements.DefaultDiameterIn
		}
		length := el.LengthFt
		if length <= 0 {
			warn("flex duct %q has no length, using %.0f ft", el.ID, elements.DefaultLengthFt)
			length = elements.DefaultLengthFt
		}
		loss, err := elements.FlexDuctInsertionLoss(d, length)
		if err != nil {
			warn("flex duct %q: %v, contributing no attenuation", el.ID, err)
			break
		}
		att = loss

	case pathgraph.KindElbow:
		w := el.WidthIn
		if w <= 0 {
			w = el.DiameterIn
		}
		if w <= 0 {
			warn("elbow %q has no width, using %.0f in", el.ID, elements.DefaultWidthIn)
			w = elements.DefaultWidthIn
		}
		form := elements.ParseFittingForm(el.Fitting)
		if form == elements.FormPlain && el.Vanes > 0 {
			form = elements.FormVaned
		}
		att = elements.ElbowInsertionLoss(form, w)
		gen = elements.FittingGeneratedNoise(form, el.VelocityFPM, el.VelocityFPM, el.AreaFt2, el.AreaFt2, el.Vanes)

	case pathgraph.KindJunction:
		form := elements.ParseFittingForm(el.Fitting)
		if form != elements.FormTee90 && form != elements.FormWye45 {
			form = elements.FormTee90
		}
		branchVel, branchArea := el.BranchVelocity, el.BranchAreaFt2
		if branchVel <= 0 {
			branchVel = el.VelocityFPM
		}
		if branchArea <= 0 {
			branchArea = el.AreaFt2
		}
		gen = elements.FittingGeneratedNoise(form, el.VelocityFPM, branchVel, el.AreaFt2, branchArea, el.Vanes)

	case pathgraph.KindDamper:
		gen = elements.DamperGeneratedNoise(el.VelocityFPM)

	case pathgraph.KindSilencer:
		length := el.LengthFt
		if length <= 0 {
			warn("silencer %q has no length, using %.0f ft", el.ID, elements.DefaultSilencerLengthFt)
			length = elements.DefaultSilencerLengthFt
		}
		att = elements.SilencerInsertionLoss(length)

	case pathgraph.KindReducer:
		// Changes velocity only; acoustically inert.

	case pathgraph.KindTerminal:
		att = terminalEffect(el, room, warn)
	}

	return att, gen
}

// ductAttenuation dispatches a rigid duct run to the round or
// rectangular table, substituting default geometry with a warning.
func ductAttenuation(el *pathgraph.Element, warn func(string, ...any)) spectrum.Spectrum {
	length := el.LengthFt
	if length <= 0 {
		warn("duct %q has no length, using %.0f ft", el.ID, elements.DefaultLengthFt)
		length = elements.DefaultLengthFt
	}
	lining := el.LiningIn
	if lining > 0 && lining != 1 && lining != 2 {
		warn("duct %q lining %.2g in snapped to the nearest cataloged thickness", el.ID, lining)
	}

	if el.DiameterIn > 0 {
		return elements.RoundDuctAttenuation(el.DiameterIn, length, lining)
	}

	w, h := el.WidthIn, el.HeightIn
	if w <= 0 || h <= 0 {
		warn("duct %q has no cross-section, using %.0fx%.0f in", el.ID, elements.DefaultWidthIn, elements.DefaultHeightIn)
		if w <= 0 {
			w = elements.DefaultWidthIn
		}
		if h <= 0 {
			h = elements.DefaultHeightIn
		}
	}
	return elements.RectDuctAttenuation(w, h, length, lining)
}

// terminalEffect is end-reflection loss plus, when a receiver room is
// modeled, the room correction folded in as negative attenuation.
func terminalEffect(el *pathgraph.Element, room *models.RoomRecord, warn func(string, ...any)) spectrum.Spectrum {
	d := el.DiameterIn
	if d <= 0 && el.WidthIn > 0 && el.HeightIn > 0 {
		d = elements.EquivalentDiameterIn(el.WidthIn, el.HeightIn)
	}
	if d <= 0 {
		warn("terminal %q has no dimensions, using %.0f in", el.ID, elements.DefaultDiameterIn)
		d = elements.DefaultDiameterIn
	}

	att := elements.EndReflectionLoss(d, elements.ParseTermination(el.Termination))

	if room != nil {
		vol, dist := room.VolumeFt3, room.DistanceFt
		if vol <= 0 {
			warn("room volume missing, using %.0f ft3", elements.DefaultRoomVolumeFt3)
			vol = elements.DefaultRoomVolumeFt3
		}
		if dist <= 0 {
			warn("listener distance missing, using %.0f ft", elements.DefaultRoomDistanceFt)
			dist = elements.DefaultRoomDistanceFt
		}
		corr := elements.RoomCorrection(vol, dist)
		for i := range att {
			att[i] -= corr[i]
		}
	}
	return att
}
