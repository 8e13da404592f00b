package cli

import (
	"math"
	"testing"

	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/hvackit/ductnoise/pkg/spectrum"
	"github.com/stretchr/testify/assert"
)

func TestFormatLevel(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"positive", 72.04, "72.0"},
		{"rounds up", 38.09, "38.1"},
		{"zero", 0.0, "0.0"},
		{"negative", -3.5, "-3.5"},
		{"silent band", math.Inf(-1), "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLevel(tt.value))
		})
	}
}

func TestFormatCenter(t *testing.T) {
	tests := []struct {
		hz   float64
		want string
	}{
		{63, "63"},
		{125, "125"},
		{500, "500"},
		{1000, "1k"},
		{2000, "2k"},
		{8000, "8k"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCenter(tt.hz))
	}
}

func TestBandTableRendersEveryBand(t *testing.T) {
	table := BandTable{
		Rows: []BandRow{
			{Label: "At listener", Values: spectrum.Spectrum{52, 49, 31, 0, 0, 16, 28, 36}},
		},
	}

	out := table.String()
	for _, header := range []string{"63", "125", "250", "500", "1k", "2k", "4k", "8k"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "At listener")
	assert.Contains(t, out, "52.0")
	assert.Contains(t, out, "36.0")
}

func TestBandTableEmpty(t *testing.T) {
	table := BandTable{}
	assert.Equal(t, "", table.String())
}

func TestRenderResultShowsRatings(t *testing.T) {
	result := models.PathResult{
		Name:     "AHU-1 to Office 101",
		Spectrum: spectrum.Spectrum{52, 49, 31, 0, 0, 16, 28, 36},
		DBA:      38.09,
		NC:       40,
		NCLabel:  "NC-40",
		Warnings: []string{`duct "seg-1" has no length, using 10 ft`},
	}

	out := RenderResult(result, false)
	assert.Contains(t, out, "AHU-1 to Office 101")
	assert.Contains(t, out, "38.1 dBA")
	assert.Contains(t, out, "NC-40")
	assert.Contains(t, out, "seg-1")
	assert.Contains(t, out, "At listener")
}

func TestRenderResultTrailListsElements(t *testing.T) {
	result := models.PathResult{
		Name:    "trail",
		NCLabel: "NC-40",
		Elements: []models.ElementDiagnostic{
			{ElementID: "fan-1", Kind: "source", After: spectrum.Flat(72)},
			{ElementID: "diff-1", Kind: "terminal", After: spectrum.Spectrum{52, 49, 31, 0, 0, 16, 28, 36}},
		},
	}

	out := RenderResult(result, true)
	assert.Contains(t, out, "fan-1 (source)")
	assert.Contains(t, out, "diff-1 (terminal)")
	assert.NotContains(t, out, "At listener")
}

func TestRenderResultError(t *testing.T) {
	result := models.PathResult{
		Name:  "broken",
		Error: "path has no source component",
	}

	out := RenderResult(result, false)
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "path has no source component")
	assert.NotContains(t, out, "Overall:")
}
