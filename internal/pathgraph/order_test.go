package pathgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvackit/ductnoise/pkg/models"
)

func comp(id, typ string) models.ComponentRecord {
	return models.ComponentRecord{ID: id, Type: typ}
}

func seg(id, from, to string) models.SegmentRecord {
	return models.SegmentRecord{ID: id, FromID: from, ToID: to, LengthFt: 10, WidthIn: 12, HeightIn: 12}
}

func ids(els []*Element) []string {
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.ID
	}
	return out
}

func TestOrderSimpleChain(t *testing.T) {
	path, err := Order(
		[]models.ComponentRecord{comp("fan-1", "fan"), comp("diff-1", "diffuser")},
		[]models.SegmentRecord{seg("seg-1", "fan-1", "diff-1")},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"fan-1", "seg-1", "diff-1"}, ids(path.Elements))
	assert.Equal(t, KindSource, path.Elements[0].Kind)
	assert.Equal(t, KindDuct, path.Elements[1].Kind)
	assert.Equal(t, KindTerminal, path.Elements[2].Kind)
	assert.Empty(t, path.Warnings)
}

func TestOrderIgnoresInputOrder(t *testing.T) {
	components := []models.ComponentRecord{
		comp("diff-1", "diffuser"), comp("elb-1", "elbow"), comp("fan-1", "fan"),
	}
	segments := []models.SegmentRecord{
		seg("seg-2", "elb-1", "diff-1"), seg("seg-1", "fan-1", "elb-1"),
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	assert.Equal(t, []string{"fan-1", "seg-1", "elb-1", "seg-2", "diff-1"}, ids(path.Elements))
}

func TestOrderJunctionFollowsLongerBranch(t *testing.T) {
	components := []models.ComponentRecord{
		comp("fan-1", "fan"),
		comp("jct-1", "tee"),
		comp("elb-1", "elbow"),
		comp("diff-main", "diffuser"),
		{ID: "diff-branch", Type: "diffuser", CFM: 400},
	}
	segments := []models.SegmentRecord{
		seg("seg-1", "fan-1", "jct-1"),
		seg("seg-main", "jct-1", "elb-1"),
		seg("seg-2", "elb-1", "diff-main"),
		{ID: "seg-branch", FromID: "jct-1", ToID: "diff-branch", LengthFt: 5, DiameterIn: 8},
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	// The two-fitting leg is the main line; the single diffuser leg is
	// the branch.
	assert.Equal(t, []string{"fan-1", "seg-1", "jct-1", "seg-main", "elb-1", "seg-2", "diff-main"}, ids(path.Elements))

	jct := path.Elements[2]
	require.Len(t, jct.Branches, 1)
	assert.Equal(t, "diff-branch", jct.Branches[0].ComponentID)
	assert.Equal(t, 400.0, jct.Branches[0].CFM)
	assert.InDelta(t, 0.349, jct.Branches[0].AreaFt2, 0.001)

	require.Len(t, path.Warnings, 1)
	assert.Contains(t, path.Warnings[0], "diff-branch")
}

func TestOrderTieBreakPrefersTerminalLeg(t *testing.T) {
	components := []models.ComponentRecord{
		comp("fan-1", "fan"),
		comp("jct-1", "tee"),
		comp("diff-1", "diffuser"),
		comp("jct-dead", "tee"),
	}
	segments := []models.SegmentRecord{
		seg("seg-1", "fan-1", "jct-1"),
		seg("seg-t", "jct-1", "diff-1"),
		seg("seg-d", "jct-1", "jct-dead"),
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	// Equal-size legs: the one ending at a terminal wins over the one
	// dead-ending at another junction.
	assert.Equal(t, []string{"fan-1", "seg-1", "jct-1", "seg-t", "diff-1"}, ids(path.Elements))
}

func TestOrderTieBreakFallsBackToLowestID(t *testing.T) {
	components := []models.ComponentRecord{
		comp("fan-1", "fan"),
		comp("jct-1", "tee"),
		comp("diff-b", "diffuser"),
		comp("diff-a", "diffuser"),
	}
	segments := []models.SegmentRecord{
		seg("seg-1", "fan-1", "jct-1"),
		seg("seg-b", "jct-1", "diff-b"),
		seg("seg-a", "jct-1", "diff-a"),
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	assert.Equal(t, []string{"fan-1", "seg-1", "jct-1", "seg-a", "diff-a"}, ids(path.Elements))
}

func TestOrderDisconnectedGraph(t *testing.T) {
	_, err := Order(
		[]models.ComponentRecord{comp("fan-1", "fan")},
		[]models.SegmentRecord{seg("seg-1", "fan-1", "ghost")},
	)

	require.ErrorIs(t, err, ErrDisconnectedGraph)
	assert.Contains(t, err.Error(), "ghost")
}

func TestOrderIncompletePath(t *testing.T) {
	_, err := Order(
		[]models.ComponentRecord{comp("fan-1", "fan"), comp("jct-1", "tee")},
		[]models.SegmentRecord{seg("seg-1", "fan-1", "jct-1")},
	)

	require.ErrorIs(t, err, ErrIncompletePath)
}

func TestOrderMultipleSourcesUsesLowestID(t *testing.T) {
	components := []models.ComponentRecord{
		comp("fan-b", "fan"),
		comp("fan-a", "fan"),
		comp("diff-1", "diffuser"),
		comp("diff-2", "diffuser"),
	}
	segments := []models.SegmentRecord{
		seg("seg-1", "fan-a", "diff-1"),
		seg("seg-2", "fan-b", "diff-2"),
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	assert.Equal(t, "fan-a", path.Elements[0].ID)
	require.NotEmpty(t, path.Warnings)
	assert.Contains(t, path.Warnings[0], "2 source candidates")
}

func TestOrderPreferredSource(t *testing.T) {
	components := []models.ComponentRecord{
		comp("fan-b", "fan"),
		comp("fan-a", "fan"),
		comp("diff-1", "diffuser"),
		comp("diff-2", "diffuser"),
	}
	segments := []models.SegmentRecord{
		seg("seg-1", "fan-a", "diff-1"),
		seg("seg-2", "fan-b", "diff-2"),
	}

	path, err := Order(components, segments, WithPreferredSource("fan-b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"fan-b", "seg-2", "diff-2"}, ids(path.Elements))
	assert.Empty(t, path.Warnings)
}

func TestOrderFallsBackToStoredOrder(t *testing.T) {
	// No source-typed component anywhere: traversal cannot start.
	components := []models.ComponentRecord{
		comp("elb-1", "elbow"),
		comp("dmp-1", "damper"),
		comp("diff-1", "diffuser"),
	}
	segments := []models.SegmentRecord{
		{ID: "seg-2", FromID: "dmp-1", ToID: "diff-1", OrderIndex: 2},
		{ID: "seg-1", FromID: "elb-1", ToID: "dmp-1", OrderIndex: 1},
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	assert.Equal(t, []string{"elb-1", "seg-1", "dmp-1", "seg-2", "diff-1"}, ids(path.Elements))
	require.NotEmpty(t, path.Warnings)
	assert.Contains(t, path.Warnings[0], "falling back to stored segment order")
}

func TestOrderEmptyGraph(t *testing.T) {
	_, err := Order(nil, nil)
	require.ErrorIs(t, err, ErrNoSource)
}

func TestOrderUnknownTypeWarns(t *testing.T) {
	components := []models.ComponentRecord{
		comp("fan-1", "fan"),
		comp("x-1", "widget"),
		comp("diff-1", "diffuser"),
	}
	segments := []models.SegmentRecord{
		seg("seg-1", "fan-1", "x-1"),
		seg("seg-2", "x-1", "diff-1"),
	}

	path, err := Order(components, segments)
	require.NoError(t, err)

	assert.Equal(t, KindReducer, path.Elements[2].Kind)
	require.NotEmpty(t, path.Warnings)
	assert.Contains(t, path.Warnings[0], "unrecognized")
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"fan", KindSource, true},
		{"ahu", KindSource, true},
		{"blower", KindSource, true},
		{"compressor", KindSource, true},
		{"duct", KindDuct, true},
		{"flex", KindFlexDuct, true},
		{"elbow", KindElbow, true},
		{"tee", KindJunction, true},
		{"wye", KindJunction, true},
		{"damper", KindDamper, true},
		{"silencer", KindSilencer, true},
		{"reducer", KindReducer, true},
		{"diffuser", KindTerminal, true},
		{"grille", KindTerminal, true},
		{"widget", KindReducer, false},
	}
	for _, tt := range tests {
		k, ok := ParseKind(tt.in)
		assert.Equal(t, tt.want, k, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
