package zsplit

import (
	"errors"
	"fmt"
	"math"
)

var (
	UnknownModeError      = errors.New("unknown z-score mode")
	UnknownStrategyError  = errors.New("unknown offset strategy")
	InvalidThresholdError = errors.New("threshold must be a finite number")
)

// Mode selects how z-scores are attached to bars.
type Mode string

const (
	// SharedMode scores uv and pv against the uv series.
	SharedMode Mode = "shared"
	// PerFieldMode scores each field against its own series.
	PerFieldMode Mode = "per-field"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case SharedMode, PerFieldMode:
		return m, nil
	}
	return "", fmt.Errorf("ParseMode: %q: %w", s, UnknownModeError)
}

func (m Mode) Enrich(bars []Bar) ([]ZBar, error) {
	switch m {
	case SharedMode:
		return AddZScoresShared(bars)
	case PerFieldMode:
		return AddZScoresPerField(bars)
	}
	return nil, fmt.Errorf("Mode.Enrich: %q: %w", string(m), UnknownModeError)
}

// Strategy selects how gradient offsets are derived from z-scored bars.
type Strategy string

const (
	// PerSeries gives every line its own offset (GradientOffset).
	PerSeries Strategy = "per-series"
	// Pooled gives all lines the uv offset taken over the pooled uv and pv
	// range (PooledGradientOffset).
	Pooled Strategy = "pooled"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case PerSeries, Pooled:
		return st, nil
	}
	return "", fmt.Errorf("ParseStrategy: %q: %w", s, UnknownStrategyError)
}

type Options struct {
	Mode      Mode
	Strategy  Strategy
	Threshold float64
}

func DefaultOptions() Options {
	return Options{Mode: SharedMode, Strategy: PerSeries, Threshold: DefaultThreshold}
}

func (o Options) Validate() error {
	if _, e := ParseMode(string(o.Mode)); e != nil {
		return e
	}
	if _, e := ParseStrategy(string(o.Strategy)); e != nil {
		return e
	}
	if math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) {
		return fmt.Errorf("Options.Validate: %v: %w", o.Threshold, InvalidThresholdError)
	}
	return nil
}

// Line is one rendered series. Err is set when its offset could not be
// computed; Offset is meaningless in that case.
type Line struct {
	Field        Field
	Range        Range
	Offset       float64
	Err          error
	MaxZ         float64
	Above        []ZBar
	ObservedTail float64
}

type Result struct {
	Options      Options
	Bars         []ZBar
	Lines        []Line
	ExpectedTail float64
}

// LineFields lists the fields drawn as lines, in drawing order.
func LineFields() []Field {
	return []Field{UV, PV}
}

// Split enriches bars according to o.Mode and computes one gradient offset
// per line according to o.Strategy. An enrichment failure fails the whole
// call. An offset failure is recorded on its Line so the other lines can
// still be drawn.
func Split(bars []Bar, o Options) (Result, error) {
	if e := o.Validate(); e != nil {
		return Result{}, fmt.Errorf("Split: %w", e)
	}
	zbars, e := o.Mode.Enrich(bars)
	if e != nil {
		return Result{}, fmt.Errorf("Split: %w", e)
	}

	res := Result{
		Options:      o,
		Bars:         zbars,
		Lines:        make([]Line, 0, 2),
		ExpectedTail: ExpectedTail(o.Threshold),
	}

	var pooled float64
	var pooledErr error
	if o.Strategy == Pooled {
		pooled, pooledErr = PooledGradientOffset(UV.Points(zbars), PV.Values(bars), o.Threshold)
	}

	for _, f := range LineFields() {
		l := Line{
			Field:        f,
			MaxZ:         MaxZ(zbars, f),
			Above:        AboveThreshold(zbars, f, o.Threshold),
			ObservedTail: ObservedTail(zbars, f, o.Threshold),
		}
		l.Range, e = RangeOf(f.Values(bars))
		if e != nil {
			return Result{}, fmt.Errorf("Split: %w", e)
		}
		switch o.Strategy {
		case PerSeries:
			l.Offset, l.Err = GradientOffset(f.Points(zbars), o.Threshold)
		case Pooled:
			l.Offset, l.Err = pooled, pooledErr
		}
		res.Lines = append(res.Lines, l)
	}
	return res, nil
}

func (r Result) Line(f Field) (Line, bool) {
	for _, l := range r.Lines {
		if l.Field == f {
			return l, true
		}
	}
	return Line{}, false
}
