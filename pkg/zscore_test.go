package zsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZScore_Scenario(t *testing.T) {
	t.Parallel()

	got, err := ZScore(3490, 2591.67, 564.19)
	require.NoError(t, err)
	assert.InDelta(t, 1.592, got, 0.001)
}

func TestZScore_MeanIsZero(t *testing.T) {
	t.Parallel()

	for _, sd := range []float64{0.5, 1, 564.19} {
		got, err := ZScore(2591.67, 2591.67, sd)
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}

func TestZScore_SingleElementIsDegenerate(t *testing.T) {
	t.Parallel()

	sd, err := StandardDeviation([]float64{5})
	require.NoError(t, err)
	assert.Zero(t, sd)

	_, err = ZScore(5, 5, sd)
	require.ErrorIs(t, err, DegenerateDistributionError)

	_, err = ZScore(6, 5, 0)
	require.ErrorIs(t, err, DegenerateDistributionError)
}

func TestZScoreOf_MatchesSplitPath(t *testing.T) {
	t.Parallel()

	s, err := Summarize(uvSeries)
	require.NoError(t, err)

	for _, v := range uvSeries {
		want, err := ZScore(v, s.Mean, s.StandardDeviation)
		require.NoError(t, err)

		got, err := ZScoreOf(v, uvSeries)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestZScoreOf_Errors(t *testing.T) {
	t.Parallel()

	_, err := ZScoreOf(1, nil)
	require.ErrorIs(t, err, EmptyInputError)

	_, err = ZScoreOf(1, []float64{2, 2, 2})
	require.ErrorIs(t, err, DegenerateDistributionError)
}

func TestZscores_Standardized(t *testing.T) {
	t.Parallel()

	zs, err := Zscores(uvSeries)
	require.NoError(t, err)
	require.Len(t, zs, len(uvSeries))

	s, err := Summarize(zs)
	require.NoError(t, err)
	assert.InDelta(t, 0, s.Mean, 1e-12)
	assert.InDelta(t, 1, s.StandardDeviation, 1e-12)
	assert.InDelta(t, 1.5996, zs[5], 1e-4)
}
