package zsplit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"
)

var DegenerateRangeError = errors.New("degenerate range: min == max")

// Range is the observed [Min, Max] of a series.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

func RangeOf(series []float64) (Range, error) {
	if len(series) == 0 {
		return Range{}, fmt.Errorf("RangeOf: %w", EmptyInputError)
	}
	min, e := stats.Min(series)
	if e != nil {
		return Range{}, fmt.Errorf("RangeOf: %w", e)
	}
	max, e := stats.Max(series)
	if e != nil {
		return Range{}, fmt.Errorf("RangeOf: %w", e)
	}
	return Range{Min: min, Max: max}, nil
}

// PooledRange is the range of all given series taken together.
func PooledRange(series ...[]float64) (Range, error) {
	return RangeOf(slices.Concat(series...))
}

func Normalize(value, min, max float64) (float64, error) {
	if min == max {
		return 0, fmt.Errorf("Normalize: value %v; min %v; max %v; %w", value, min, max, DegenerateRangeError)
	}
	return (value - min) / (max - min), nil
}

// ConvertBetweenAxes maps value linearly from src onto dst. Values outside
// src land outside dst; nothing is clamped.
func ConvertBetweenAxes(value float64, src, dst Range) (float64, error) {
	n, e := Normalize(value, src.Min, src.Max)
	if e != nil {
		return 0, fmt.Errorf("ConvertBetweenAxes: %w", e)
	}
	return dst.Min + n*(dst.Max-dst.Min), nil
}
