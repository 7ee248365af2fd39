package zsplit

import (
	"fmt"
	"slices"

	"github.com/jgbaldwinbrown/iterh"
)

const DefaultThreshold = 1.0

// Point is one raw value together with its z-score.
type Point struct {
	Value float64
	Z     float64
}

func PointValues(pts []Point) []float64 {
	return slices.Collect(iterh.Transform(slices.Values(pts), func(p Point) float64 {
		return p.Value
	}))
}

func PointZs(pts []Point) []float64 {
	return slices.Collect(iterh.Transform(slices.Values(pts), func(p Point) float64 {
		return p.Z
	}))
}

// offsetAt maps thresholdZ from z-space into value-space and returns its
// inverted position along the value range, i.e. the distance from the top of
// a vertical gradient.
func offsetAt(thresholdZ float64, zr, vr Range) (float64, error) {
	mapped, e := ConvertBetweenAxes(thresholdZ, zr, vr)
	if e != nil {
		return 0, e
	}
	n, e := Normalize(mapped, vr.Min, vr.Max)
	if e != nil {
		return 0, e
	}
	return 1 - n, nil
}

// GradientOffset takes both the value range and the z-score range over pts.
// The result is not clamped to [0, 1].
func GradientOffset(pts []Point, thresholdZ float64) (float64, error) {
	vr, e := RangeOf(PointValues(pts))
	if e != nil {
		return 0, fmt.Errorf("GradientOffset: %w", e)
	}
	zr, e := RangeOf(PointZs(pts))
	if e != nil {
		return 0, fmt.Errorf("GradientOffset: %w", e)
	}
	off, e := offsetAt(thresholdZ, zr, vr)
	if e != nil {
		return 0, fmt.Errorf("GradientOffset: %w", e)
	}
	return off, nil
}

// PooledGradientOffset takes the value range over the values of pts and
// others pooled together, but the z-score range over pts alone. One offset
// computed this way is shared by the lines of both series.
func PooledGradientOffset(pts []Point, others []float64, thresholdZ float64) (float64, error) {
	vr, e := PooledRange(PointValues(pts), others)
	if e != nil {
		return 0, fmt.Errorf("PooledGradientOffset: %w", e)
	}
	zr, e := RangeOf(PointZs(pts))
	if e != nil {
		return 0, fmt.Errorf("PooledGradientOffset: %w", e)
	}
	off, e := offsetAt(thresholdZ, zr, vr)
	if e != nil {
		return 0, fmt.Errorf("PooledGradientOffset: %w", e)
	}
	return off, nil
}
