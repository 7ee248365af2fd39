package zsplit

import (
	"cmp"
	"fmt"
	"io"
	"log"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const lineWidth = 2

type ChartOptions struct {
	Title      string
	Width      string
	Height     string
	AboveColor string
	BelowColor string
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Title:      "zsplit",
		Width:      "900px",
		Height:     "500px",
		AboveColor: "#ff0000",
		BelowColor: "#0000ff",
	}
}

func seriesColor(f Field) string {
	if f == PV {
		return "#82ca9d"
	}
	return "#8884d8"
}

func clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(val, hi))
}

// StopOffset is the position handed to the gradient. A canvas gradient
// rejects stops outside [0, 1], so the offset is clamped here and only here.
// The second return is false when the line has no usable offset.
func StopOffset(l Line) (float64, bool) {
	if l.Err != nil {
		return 0, false
	}
	return clamp(l.Offset, 0, 1), true
}

// Stroke returns the line color expression: a vertical two-stop gradient with
// both stops at the line's offset, or the flat series color for a line
// without an offset.
func Stroke(l Line, co ChartOptions) string {
	off, ok := StopOffset(l)
	if !ok {
		return seriesColor(l.Field)
	}
	return string(opts.FuncOpts(fmt.Sprintf(
		"new echarts.graphic.LinearGradient(0, 0, 0, 1, [{offset: %v, color: '%s'}, {offset: %v, color: '%s'}])",
		off, co.AboveColor, off, co.BelowColor,
	)))
}

func lineData(zbars []ZBar, f Field) []opts.LineData {
	out := make([]opts.LineData, 0, len(zbars))
	for _, z := range zbars {
		out = append(out, opts.LineData{Name: z.Name, Value: f.Value(z.Bar)})
	}
	return out
}

func BuildChart(r Result, co ChartOptions) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: co.Title, Width: co.Width, Height: co.Height}),
		charts.WithTitleOpts(opts.Title{
			Title:    co.Title,
			Subtitle: fmt.Sprintf("mode %v; strategy %v; threshold z %v", r.Options.Mode, r.Options.Strategy, r.Options.Threshold),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Min: "dataMin", Max: "dataMax"}),
	)

	names := make([]string, 0, len(r.Bars))
	for _, z := range r.Bars {
		names = append(names, z.Name)
	}
	line.SetXAxis(names)

	for _, l := range r.Lines {
		if l.Err != nil {
			log.Printf("BuildChart: drawing %v flat: %v", l.Field, l.Err)
		}
		line.AddSeries(l.Field.String(), lineData(r.Bars, l.Field),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: seriesColor(l.Field)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: Stroke(l, co), Width: lineWidth}),
		)
	}
	return line
}

func RenderChart(w io.Writer, r Result, co ChartOptions) error {
	if e := BuildChart(r, co).Render(w); e != nil {
		return fmt.Errorf("RenderChart: %w", e)
	}
	return nil
}
