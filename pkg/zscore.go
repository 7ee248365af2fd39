package zsplit

import (
	"errors"
	"fmt"

	"github.com/jgbaldwinbrown/csvh"
)

var DegenerateDistributionError = errors.New("degenerate distribution: standard deviation is zero")

// ZScore never substitutes a sentinel: a zero standard deviation is an error
// whatever the relation between value and mean.
func ZScore(value, mean, sd float64) (float64, error) {
	if sd == 0 {
		return 0, fmt.Errorf("ZScore: value %v; mean %v; %w", value, mean, DegenerateDistributionError)
	}
	return (value - mean) / sd, nil
}

// ZScoreOf recomputes the mean and standard deviation of series on every call.
func ZScoreOf(value float64, series []float64) (float64, error) {
	h := csvh.Handle0("ZScoreOf: %w")
	s, e := Summarize(series)
	if e != nil {
		return 0, h(e)
	}
	z, e := s.ZScore(value)
	if e != nil {
		return 0, h(e)
	}
	return z, nil
}

func Zscores(fs []float64) ([]float64, error) {
	s, e := Summarize(fs)
	if e != nil {
		return nil, e
	}
	out := make([]float64, 0, len(fs))
	for _, f := range fs {
		z, e := s.ZScore(f)
		if e != nil {
			return nil, e
		}
		out = append(out, z)
	}
	return out, nil
}
