package pathgraph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hvackit/ductnoise/pkg/models"
)

// ErrDisconnectedGraph is returned when a segment references a component
// missing from the supplied component set.
var ErrDisconnectedGraph = errors.New("pathgraph: segment references a component missing from the set")

// ErrIncompletePath is returned when no terminal element is reachable
// from the source.
var ErrIncompletePath = errors.New("pathgraph: no terminal reachable from source")

// ErrNoSource is returned when the graph has no source component and no
// segments to fall back on.
var ErrNoSource = errors.New("pathgraph: no source component and no fallback ordering")

// orderingIterationSlack bounds traversal at segment count plus this
// constant. Exceeding the bound abandons traversal for the stored-order
// fallback instead of looping on a malformed graph.
const orderingIterationSlack = 8

// Option adjusts ordering behavior.
type Option func(*options)

type options struct {
	preferredSource string
}

// WithPreferredSource designates the component to order from when a path
// holds several candidate active sources.
func WithPreferredSource(id string) Option {
	return func(o *options) { o.preferredSource = id }
}

// edge is one directed segment in the adjacency structure.
type edge struct {
	seg models.SegmentRecord
	to  *node
}

// node is one component with its outgoing adjacency.
type node struct {
	rec      models.ComponentRecord
	kind     Kind
	out      []*edge
	incoming int
}

// orderer encapsulates the adjacency structure and the warnings the
// ordering accumulates.
type orderer struct {
	byID     map[string]*node
	nodes    []*node
	segments []models.SegmentRecord
	warnings []string
}

// Order arranges components and segments into the single source-to-
// terminal sequence. Connectivity traversal is preferred; if it cannot be
// constructed (missing source, iteration bound exceeded) the segments'
// stored order index is used with a warning. Returns ErrDisconnectedGraph
// for dangling segment references and ErrIncompletePath when the ordered
// sequence does not end at a terminal.
func Order(components []models.ComponentRecord, segments []models.SegmentRecord, opts ...Option) (*OrderedPath, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ord, err := newOrderer(components, segments)
	if err != nil {
		return nil, err
	}

	var els []*Element
	src := ord.source(o.preferredSource)
	if src == nil {
		els, err = ord.fallback("no active source component identified")
	} else if els = ord.walk(src); els == nil {
		els, err = ord.fallback("traversal exceeded the iteration bound")
	}
	if err != nil {
		return nil, err
	}

	if last := els[len(els)-1]; last.Kind != KindTerminal {
		return nil, fmt.Errorf("%w: path ends at %s %q", ErrIncompletePath, last.Kind, last.ID)
	}
	return &OrderedPath{Elements: els, Warnings: ord.warnings}, nil
}

// newOrderer indexes components and wires segment adjacency, failing on
// references to unknown components.
func newOrderer(components []models.ComponentRecord, segments []models.SegmentRecord) (*orderer, error) {
	ord := &orderer{
		byID:     make(map[string]*node, len(components)),
		nodes:    make([]*node, 0, len(components)),
		segments: segments,
	}
	for _, rec := range components {
		kind, known := ParseKind(rec.Type)
		if !known {
			ord.warn("component %q type %q unrecognized, treated as transition", rec.ID, rec.Type)
		}
		n := &node{rec: rec, kind: kind}
		ord.byID[rec.ID] = n
		ord.nodes = append(ord.nodes, n)
	}
	for _, seg := range segments {
		from, ok := ord.byID[seg.FromID]
		if !ok {
			return nil, fmt.Errorf("%w: segment %q from %q", ErrDisconnectedGraph, seg.ID, seg.FromID)
		}
		to, ok := ord.byID[seg.ToID]
		if !ok {
			return nil, fmt.Errorf("%w: segment %q to %q", ErrDisconnectedGraph, seg.ID, seg.ToID)
		}
		from.out = append(from.out, &edge{seg: seg, to: to})
		to.incoming++
	}
	return ord, nil
}

// source picks the traversal origin: the designated component when given,
// otherwise the unique source-typed component with no incoming segment.
// Several candidates resolve to the lowest id with a warning; none
// returns nil and the caller falls back.
func (ord *orderer) source(preferred string) *node {
	if preferred != "" {
		if n, ok := ord.byID[preferred]; ok {
			return n
		}
		ord.warn("preferred source %q not in component set", preferred)
	}

	var candidates []*node
	for _, n := range ord.nodes {
		if n.kind == KindSource && n.incoming == 0 {
			candidates = append(candidates, n)
		}
	}
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].rec.ID < candidates[j].rec.ID
	})
	ord.warn("%d source candidates, ordering from %q", len(candidates), candidates[0].rec.ID)
	return candidates[0]
}

// walk traverses from src, emitting a component element, then the chosen
// segment element, repeatedly until the path dead-ends. Returns nil if
// the iteration bound is exceeded.
func (ord *orderer) walk(src *node) []*Element {
	visited := map[string]bool{src.rec.ID: true}
	cur := src
	curEl := componentElement(cur.rec, cur.kind)
	els := []*Element{curEl}

	steps := 0
	for {
		var cands []*edge
		for _, e := range cur.out {
			if !visited[e.to.rec.ID] {
				cands = append(cands, e)
			}
		}
		if len(cands) == 0 {
			return els
		}

		next := pickLeg(cands, visited)
		for _, e := range cands {
			if e != next {
				ord.skipLeg(curEl, e)
			}
		}

		steps++
		if steps > len(ord.segments)+orderingIterationSlack {
			return nil
		}

		visited[next.to.rec.ID] = true
		els = append(els, segmentElement(next.seg))
		cur = next.to
		curEl = componentElement(cur.rec, cur.kind)
		els = append(els, curEl)
	}
}

// pickLeg selects the continuing leg at a fan-out. Policy, in order:
// larger downstream subtree (the main line continues through the longer
// branch), then a leg whose subtree reaches a terminal over one that
// dead-ends at another fitting, then lowest downstream component id.
// The policy is isolated here so a geometry-aware rule can replace it
// without touching the walk.
func pickLeg(cands []*edge, visited map[string]bool) *edge {
	if len(cands) == 1 {
		return cands[0]
	}
	type scored struct {
		e        *edge
		size     int
		terminal bool
	}
	scores := make([]scored, len(cands))
	for i, e := range cands {
		size, terminal := surveySubtree(e.to, visited)
		scores[i] = scored{e: e, size: size, terminal: terminal}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].size != scores[j].size {
			return scores[i].size > scores[j].size
		}
		if scores[i].terminal != scores[j].terminal {
			return scores[i].terminal
		}
		return scores[i].e.to.rec.ID < scores[j].e.to.rec.ID
	})
	return scores[0].e
}

// surveySubtree sizes the subgraph reachable from n, ignoring nodes the
// walk has already consumed, and reports whether it contains a terminal.
func surveySubtree(n *node, visited map[string]bool) (int, bool) {
	seen := map[string]bool{}
	terminal := false
	var visit func(*node)
	visit = func(m *node) {
		if seen[m.rec.ID] || visited[m.rec.ID] {
			return
		}
		seen[m.rec.ID] = true
		if m.kind == KindTerminal {
			terminal = true
		}
		for _, e := range m.out {
			visit(e.to)
		}
	}
	visit(n)
	return len(seen), terminal
}

// skipLeg records a leg not taken: always as a warning, and as branch
// data on the junction element so the flow propagator can conserve flow.
func (ord *orderer) skipLeg(curEl *Element, e *edge) {
	ord.warn("branch at %q toward %q not on the main path", curEl.ID, e.to.rec.ID)
	if curEl.Kind != KindJunction {
		return
	}
	curEl.Branches = append(curEl.Branches, BranchLeg{
		ComponentID: e.to.rec.ID,
		CFM:         e.to.rec.CFM,
		AreaFt2:     segmentAreaFt2(e.seg),
	})
}

// fallback orders elements by the segments' stored order index: the first
// segment's upstream component, then each segment and its downstream
// component. Discontinuities between consecutive segments splice in the
// next upstream component with a warning.
func (ord *orderer) fallback(reason string) ([]*Element, error) {
	if len(ord.segments) == 0 {
		return nil, ErrNoSource
	}
	ord.warn("falling back to stored segment order: %s", reason)

	segs := make([]models.SegmentRecord, len(ord.segments))
	copy(segs, ord.segments)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].OrderIndex < segs[j].OrderIndex })

	first := ord.byID[segs[0].FromID]
	els := []*Element{componentElement(first.rec, first.kind)}
	prevTo := segs[0].FromID
	for _, seg := range segs {
		if seg.FromID != prevTo {
			ord.warn("stored order jumps from %q to segment %q", prevTo, seg.ID)
			from := ord.byID[seg.FromID]
			els = append(els, componentElement(from.rec, from.kind))
		}
		els = append(els, segmentElement(seg))
		to := ord.byID[seg.ToID]
		els = append(els, componentElement(to.rec, to.kind))
		prevTo = seg.ToID
	}
	return els, nil
}

func (ord *orderer) warn(format string, args ...any) {
	ord.warnings = append(ord.warnings, fmt.Sprintf(format, args...))
}

// segmentAreaFt2 computes a segment's cross-section in square feet, zero
// when geometry is absent.
func segmentAreaFt2(seg models.SegmentRecord) float64 {
	if seg.WidthIn > 0 && seg.HeightIn > 0 {
		return seg.WidthIn * seg.HeightIn / 144
	}
	if seg.DiameterIn > 0 {
		r := seg.DiameterIn / 2
		return math.Pi * r * r / 144
	}
	return 0
}
