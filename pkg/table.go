package zsplit

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func newColor(useColor bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// RenderTable writes the enriched bars and then one summary row per line.
// z-scores above the threshold are printed in red, the rest in blue, the same
// split the chart draws.
func RenderTable(w io.Writer, r Result, useColor bool) error {
	above := newColor(useColor, color.FgRed)
	below := newColor(useColor, color.FgBlue)
	zcell := func(z float64) string {
		if z > r.Options.Threshold {
			return above.Sprint(formatFloat(z))
		}
		return below.Sprint(formatFloat(z))
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"name", "uv", "pv", "amt", "uvZ", "pvZ"})
	for _, z := range r.Bars {
		tbl.AppendRow(table.Row{z.Name, z.UV, z.PV, z.Amt, zcell(z.UVZ), zcell(z.PVZ)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("mode %v", r.Options.Mode), "", "", "", "", fmt.Sprintf("threshold %v", r.Options.Threshold)})

	lines := table.NewWriter()
	lines.SetStyle(table.StyleLight)
	lines.AppendHeader(table.Row{"line", "min", "max", "max z", "above", "offset"})
	for _, l := range r.Lines {
		offset := formatFloat(l.Offset)
		if l.Err != nil {
			offset = l.Err.Error()
		}
		lines.AppendRow(table.Row{
			l.Field.String(),
			l.Range.Min,
			l.Range.Max,
			formatFloat(l.MaxZ),
			fmt.Sprintf("%d (%.1f%%)", len(l.Above), 100*l.ObservedTail),
			offset,
		})
	}
	lines.AppendFooter(table.Row{fmt.Sprintf("strategy %v", r.Options.Strategy), "", "", "", fmt.Sprintf("normal %.1f%%", 100*r.ExpectedTail), ""})

	_, e := fmt.Fprintf(w, "%s\n\n%s\n", tbl.Render(), lines.Render())
	return e
}
