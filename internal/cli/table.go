package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/hvackit/ductnoise/pkg/models"
	"github.com/hvackit/ductnoise/pkg/spectrum"
)

// BandRow is one labeled row of octave-band levels.
type BandRow struct {
	Label  string
	Values spectrum.Spectrum
}

// BandTable aligns labeled octave-band rows under the band-center header.
// Labels are left-aligned, level columns right-aligned to their widest cell.
type BandTable struct {
	Rows []BandRow
}

// formatLevel renders one band level; silent bands print as a dash.
func formatLevel(v float64) string {
	if math.IsInf(v, -1) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func formatCenter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%gk", hz/1000)
	}
	return fmt.Sprintf("%g", hz)
}

// String renders the table with aligned columns.
func (t *BandTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	centers := spectrum.Centers()
	headers := make([]string, spectrum.BandCount)
	for i, hz := range centers {
		headers[i] = formatCenter(hz)
	}

	const labelHeader = "Band (Hz)"
	labelWidth := len(labelHeader)
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	valueWidths := make([]int, spectrum.BandCount)
	for i, header := range headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i := range row.Values {
			if w := len(formatLevel(row.Values[i])); w > valueWidths[i] {
				valueWidths[i] = w
			}
		}
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-*s", labelWidth, labelHeader)))
	for i, header := range headers {
		b.WriteString("  ")
		b.WriteString(HeaderStyle.Render(fmt.Sprintf("%*s", valueWidths[i], header)))
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString(fmt.Sprintf("%-*s", labelWidth, row.Label))
		for i := range row.Values {
			b.WriteString("  ")
			b.WriteString(fmt.Sprintf("%*s", valueWidths[i], formatLevel(row.Values[i])))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderResult renders one path result: the band table, overall ratings,
// then any data-quality warnings. With trail set, every element of the
// diagnostic trail gets its own row instead of just the terminal spectrum.
func RenderResult(result models.PathResult, trail bool) string {
	var b strings.Builder

	name := result.Name
	if name == "" {
		name = "(unnamed path)"
	}
	b.WriteString(TitleStyle.Render(name))
	b.WriteString("\n")

	if result.Error != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", ErrorStyle.Render("Error:"), result.Error))
		return b.String()
	}

	table := BandTable{}
	if trail {
		for _, el := range result.Elements {
			table.Rows = append(table.Rows, BandRow{
				Label:  fmt.Sprintf("%s (%s)", el.ElementID, el.Kind),
				Values: el.After,
			})
		}
	} else {
		table.Rows = append(table.Rows, BandRow{Label: "At listener", Values: result.Spectrum})
	}
	b.WriteString(table.String())

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		KeyStyle.Render("Overall:"), ValueStyle.Render(fmt.Sprintf("%.1f dBA", result.DBA)),
		KeyStyle.Render("Rating:"), ValueStyle.Render(result.NCLabel)))

	for _, warning := range result.Warnings {
		b.WriteString(WarningStyle.Render("  ! " + warning))
		b.WriteString("\n")
	}

	return b.String()
}
