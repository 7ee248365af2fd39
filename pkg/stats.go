package zsplit

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

var EmptyInputError = errors.New("empty input")

// Summary holds the mean and the population standard deviation of a series.
type Summary struct {
	Mean              float64
	StandardDeviation float64
}

func Average(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("Average: %w", EmptyInputError)
	}
	mean, e := stats.Mean(series)
	if e != nil {
		return 0, fmt.Errorf("Average: %w", e)
	}
	return mean, nil
}

// StandardDeviation divides by N, not N-1.
func StandardDeviation(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("StandardDeviation: %w", EmptyInputError)
	}
	sd, e := stats.StandardDeviationPopulation(series)
	if e != nil {
		return 0, fmt.Errorf("StandardDeviation: %w", e)
	}
	return sd, nil
}

func Summarize(series []float64) (Summary, error) {
	mean, e := Average(series)
	if e != nil {
		return Summary{}, e
	}
	sd, e := StandardDeviation(series)
	if e != nil {
		return Summary{}, e
	}
	return Summary{Mean: mean, StandardDeviation: sd}, nil
}

func (s Summary) ZScore(value float64) (float64, error) {
	return ZScore(value, s.Mean, s.StandardDeviation)
}
