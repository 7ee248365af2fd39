package zsplit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

var uvSeries = []float64{3000, 2000, 2780, 1890, 2390, 3490}

func TestAverage_Fixture(t *testing.T) {
	t.Parallel()

	got, err := Average(uvSeries)
	require.NoError(t, err)
	assert.InDelta(t, 2591.67, got, 0.01)
}

// Population formula; the sample formula would give ~615.2.
func TestStandardDeviation_FixtureIsPopulation(t *testing.T) {
	t.Parallel()

	got, err := StandardDeviation(uvSeries)
	require.NoError(t, err)
	assert.InDelta(t, 561.5875, got, 0.001)
}

func TestStatistics_MatchGonum(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for range 20 {
		series := make([]float64, 1+r.Intn(40))
		for i := range series {
			series[i] = r.Float64()*2000 - 1000
		}

		s, err := Summarize(series)
		require.NoError(t, err)
		assert.InDelta(t, stat.Mean(series, nil), s.Mean, 1e-9)
		assert.InDelta(t, math.Sqrt(stat.PopVariance(series, nil)), s.StandardDeviation, 1e-9)
	}
}

func TestStatistics_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Average(nil)
	require.ErrorIs(t, err, EmptyInputError)

	_, err = StandardDeviation([]float64{})
	require.ErrorIs(t, err, EmptyInputError)

	_, err = Summarize(nil)
	require.ErrorIs(t, err, EmptyInputError)
}

func TestStatistics_ConstantSeries(t *testing.T) {
	t.Parallel()

	for _, c := range []float64{0, 7, -3, 1e6} {
		series := []float64{c, c, c, c}

		avg, err := Average(series)
		require.NoError(t, err)
		assert.Equal(t, c, avg)

		sd, err := StandardDeviation(series)
		require.NoError(t, err)
		assert.Zero(t, sd)
	}
}

func TestAverage_PermutationInvariant(t *testing.T) {
	t.Parallel()

	want, err := Average(uvSeries)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(42))
	shuffled := append([]float64(nil), uvSeries...)
	for range 50 {
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got, err := Average(shuffled)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestStandardDeviation_NonNegative(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	for range 100 {
		series := make([]float64, 1+r.Intn(10))
		for i := range series {
			series[i] = r.NormFloat64() * 100
		}

		sd, err := StandardDeviation(series)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sd, 0.0)
	}
}
