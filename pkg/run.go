package zsplit

import (
	"errors"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

var UnknownFormatError = errors.New("unknown output format")

type Format string

const (
	TableFormat Format = "table"
	TSVFormat   Format = "tsv"
	HTMLFormat  Format = "html"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case TableFormat, TSVFormat, HTMLFormat:
		return f, nil
	}
	return "", fmt.Errorf("ParseFormat: %q: %w", s, UnknownFormatError)
}

// Render writes r to w in format f.
func Render(w io.Writer, r Result, f Format, c Config) error {
	switch f {
	case TableFormat:
		return RenderTable(w, r, !c.NoColor)
	case TSVFormat:
		return WriteZBars(w, r.Bars)
	case HTMLFormat:
		co := DefaultChartOptions()
		if c.Title != "" {
			co.Title = c.Title
		}
		return RenderChart(w, r, co)
	}
	return fmt.Errorf("Render: %q: %w", string(f), UnknownFormatError)
}

// Run splits the built-in dataset and renders it to c.Output, or to stdout
// when no output path is set.
func Run(stdout io.Writer, c Config) (err error) {
	h := csvh.Handle0("Run: %w")
	o, e := c.Options()
	if e != nil {
		return h(e)
	}
	f, e := ParseFormat(c.Format)
	if e != nil {
		return h(e)
	}
	r, e := Split(SampleBars(), o)
	if e != nil {
		return h(e)
	}

	if c.Output == "" {
		if e := Render(stdout, r, f, c); e != nil {
			return h(e)
		}
		return nil
	}

	w, e := csvh.CreateMaybeGz(c.Output)
	if e != nil {
		return h(e)
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	// Color escapes never go to a file.
	c.NoColor = true
	if e := Render(w, r, f, c); e != nil {
		return h(e)
	}
	return nil
}
