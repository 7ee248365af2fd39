package zsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Endpoints(t *testing.T) {
	t.Parallel()

	for _, r := range []Range{{0, 1}, {1890, 3490}, {-5, 5}, {-2.3, 12.8}} {
		lo, err := Normalize(r.Min, r.Min, r.Max)
		require.NoError(t, err)
		assert.Zero(t, lo)

		hi, err := Normalize(r.Max, r.Min, r.Max)
		require.NoError(t, err)
		assert.Equal(t, 1.0, hi)
	}
}

func TestNormalize_Scenario(t *testing.T) {
	t.Parallel()

	got, err := Normalize(2000, 1890, 3490)
	require.NoError(t, err)
	assert.InDelta(t, 0.0688, got, 0.0001)
}

func TestNormalize_DegenerateRange(t *testing.T) {
	t.Parallel()

	_, err := Normalize(5, 5, 5)
	require.ErrorIs(t, err, DegenerateRangeError)

	_, err = ConvertBetweenAxes(5, Range{3, 3}, Range{0, 1})
	require.ErrorIs(t, err, DegenerateRangeError)
}

func TestConvertBetweenAxes_Extrapolates(t *testing.T) {
	t.Parallel()

	got, err := ConvertBetweenAxes(2, Range{0, 1}, Range{10, 20})
	require.NoError(t, err)
	assert.InDelta(t, 30, got, 1e-12)

	got, err = ConvertBetweenAxes(-1, Range{0, 1}, Range{10, 20})
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-12)
}

func TestConvertBetweenAxes_RoundTrip(t *testing.T) {
	t.Parallel()

	a := Range{-1.2494, 1.5996}
	b := Range{1890, 3490}
	for _, x := range []float64{-3, -1.2494, 0, 0.5, 1, 1.5996, 4} {
		there, err := ConvertBetweenAxes(x, a, b)
		require.NoError(t, err)

		back, err := ConvertBetweenAxes(there, b, a)
		require.NoError(t, err)
		assert.InDelta(t, x, back, 1e-9)
	}
}

func TestRangeOf(t *testing.T) {
	t.Parallel()

	r, err := RangeOf(uvSeries)
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1890, Max: 3490}, r)
	assert.Equal(t, 1600.0, r.Span())
	assert.False(t, r.Degenerate())

	single, err := RangeOf([]float64{5})
	require.NoError(t, err)
	assert.True(t, single.Degenerate())

	_, err = RangeOf(nil)
	require.ErrorIs(t, err, EmptyInputError)
}

func TestPooledRange(t *testing.T) {
	t.Parallel()

	r, err := PooledRange(uvSeries, []float64{1398, 9800, 3908})
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1398, Max: 9800}, r)

	_, err = PooledRange(nil, nil)
	require.ErrorIs(t, err, EmptyInputError)
}
