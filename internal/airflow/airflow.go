// Package airflow propagates flow rates and velocities along an ordered
// path. Active sources define flow; passive elements inherit it from the
// nearest upstream source; junctions conserve it between the continuing
// main leg and their branches.
package airflow

import (
	"fmt"
	"math"

	"github.com/hvackit/ductnoise/internal/pathgraph"
)

// Documented fallbacks, substituted with a warning.
const (
	// DefaultFlowCFM is assumed when no upstream active source defines a
	// flow rate.
	DefaultFlowCFM = 500.0

	// MinVelocityFPM stands in when an element has no usable
	// cross-section to derive velocity from.
	MinVelocityFPM = 100.0
)

// Propagate fills CFM, velocity, and cross-section on every element of an
// ordered path, in place, and returns the data-quality warnings recorded
// along the way.
func Propagate(path *pathgraph.OrderedPath) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	flow := 0.0
	haveFlow := false

	for _, el := range path.Elements {
		if el.Kind == pathgraph.KindSource {
			if el.CFM > 0 {
				flow = el.CFM
				haveFlow = true
			} else {
				warn("source %q has no flow rate, assuming %.0f CFM", el.ID, DefaultFlowCFM)
				flow = DefaultFlowCFM
				haveFlow = true
			}
		} else if !haveFlow {
			warn("no upstream source defines flow, assuming %.0f CFM from %q onward", DefaultFlowCFM, el.ID)
			flow = DefaultFlowCFM
			haveFlow = true
		}

		el.CFM = flow
		el.AreaFt2 = areaFt2(el)
		switch {
		case el.AreaFt2 > 0:
			el.VelocityFPM = flow / el.AreaFt2
		case el.Kind == pathgraph.KindSource:
			// Source noise is modeled from flow and pressure; duct
			// velocity is not used.
			el.VelocityFPM = 0
		default:
			warn("element %q has no cross-section, velocity fallback %.0f ft/min", el.ID, MinVelocityFPM)
			el.VelocityFPM = MinVelocityFPM
		}

		if el.Kind == pathgraph.KindJunction && len(el.Branches) > 0 {
			flow = splitJunction(el, flow, warn)
		}
	}
	return warnings
}

// splitJunction subtracts the branch demand from the continuing flow,
// never below zero and never letting a branch draw more than the
// upstream supply. Unstated branch demand is inferred from the area
// ratio of the legs, or an even split when no geometry is known.
func splitJunction(el *pathgraph.Element, upstream float64, warn func(string, ...any)) float64 {
	branchCFM := 0.0
	branchArea := 0.0
	for _, leg := range el.Branches {
		branchArea += leg.AreaFt2
		if leg.CFM > 0 {
			branchCFM += leg.CFM
			continue
		}
		inferred := inferBranchFlow(upstream, leg.AreaFt2, el.AreaFt2)
		warn("branch flow at %q toward %q inferred as %.0f CFM", el.ID, leg.ComponentID, inferred)
		branchCFM += inferred
	}

	if branchCFM > upstream {
		warn("branch demand %.0f CFM at %q exceeds upstream %.0f CFM, capping", branchCFM, el.ID, upstream)
		branchCFM = upstream
	}

	el.BranchCFM = branchCFM
	el.BranchAreaFt2 = branchArea
	if branchArea > 0 {
		el.BranchVelocity = branchCFM / branchArea
	} else {
		el.BranchVelocity = MinVelocityFPM
	}

	return upstream - branchCFM
}

// inferBranchFlow estimates an unstated branch demand: proportional to
// leg areas when known (equal-velocity assumption), otherwise an even
// split of the upstream flow.
func inferBranchFlow(upstream, branchArea, mainArea float64) float64 {
	if branchArea > 0 && mainArea > 0 {
		return upstream * branchArea / (branchArea + mainArea)
	}
	return upstream / 2
}

// areaFt2 derives an element's cross-section in square feet from its
// shape, zero when geometry is absent.
func areaFt2(el *pathgraph.Element) float64 {
	if el.WidthIn > 0 && el.HeightIn > 0 {
		return el.WidthIn * el.HeightIn / 144
	}
	if el.DiameterIn > 0 {
		r := el.DiameterIn / 2
		return math.Pi * r * r / 144
	}
	return 0
}
