package tempseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, values ...float64) *Series {
	t.Helper()
	s, err := New(values)
	require.NoError(t, err)
	return s
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"fractional", []float64{0.1, 0.2, 0.3}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, err := mustNew(t, tt.values...).Average()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, avg, 1e-10)
		})
	}
}

func TestDeviation(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"three readings", []float64{10, 20, 30}, 100.0},
		{"textbook", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 4.571428571428571},
		{"constant", []float64{7, 7, 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, err := mustNew(t, tt.values...).Deviation()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, dev, 1e-10)
		})
	}
}

func TestDeviationSingleReadingIsNaN(t *testing.T) {
	dev, err := mustNew(t, 42).Deviation()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(dev), "expected NaN, got %f", dev)
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max float64
	}{
		{"positive", []float64{10, 20, 30}, 10, 30},
		{"unordered", []float64{5, 2, 8, 1, 9, 3}, 1, 9},
		{"negative", []float64{-5, -15, -1}, -15, -1},
		{"single", []float64{-7.5}, -7.5, -7.5},
		{"duplicates", []float64{3, 3, 3}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, tt.values...)

			lo, err := s.Min()
			require.NoError(t, err)
			assert.Equal(t, tt.min, lo)

			hi, err := s.Max()
			require.NoError(t, err)
			assert.Equal(t, tt.max, hi)
		})
	}
}

func TestMinMaxSkipNonFiniteReadings(t *testing.T) {
	s := mustNew(t, 1, -4)
	s.AddTemps(math.Inf(1), math.Inf(-1), math.NaN(), 2)

	hi, err := s.Max()
	require.NoError(t, err)
	assert.Equal(t, 2.0, hi)

	lo, err := s.Min()
	require.NoError(t, err)
	assert.Equal(t, -4.0, lo)
}

func TestSummaryStatistics(t *testing.T) {
	s := mustNew(t, 10, 20, 30)

	sum, err := s.SummaryStatistics()
	require.NoError(t, err)

	assert.InDelta(t, 20.0, sum.Average, 1e-10)
	assert.InDelta(t, 100.0, sum.Deviation, 1e-10)
	assert.Equal(t, 10.0, sum.Min)
	assert.Equal(t, 30.0, sum.Max)
}

func TestSummaryStatisticsReflectsAppends(t *testing.T) {
	s := mustNew(t, 10, 20, 30)
	before, err := s.SummaryStatistics()
	require.NoError(t, err)

	s.AddTemps(-10, 70)

	after, err := s.SummaryStatistics()
	require.NoError(t, err)

	assert.Equal(t, 30.0, before.Max)
	assert.InDelta(t, 24.0, after.Average, 1e-10)
	assert.Equal(t, -10.0, after.Min)
	assert.Equal(t, 70.0, after.Max)
}

func TestStatisticsOnEmptySeries(t *testing.T) {
	s := NewEmpty()

	_, err := s.Average()
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = s.Deviation()
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = s.Min()
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = s.Max()
	assert.ErrorIs(t, err, ErrEmptySeries)

	sum, err := s.SummaryStatistics()
	assert.ErrorIs(t, err, ErrEmptySeries)
	assert.Equal(t, SummaryStatistics{}, sum)
}

func TestQueriesAreIdempotent(t *testing.T) {
	s := mustNew(t, -1, 0, 1, -2, 12.5)

	first, err := s.SummaryStatistics()
	require.NoError(t, err)
	second, err := s.SummaryStatistics()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lessFirst, err := s.FindTempsLessThan(0)
	require.NoError(t, err)
	lessSecond, err := s.FindTempsLessThan(0)
	require.NoError(t, err)
	assert.Equal(t, lessFirst, lessSecond)

	assert.Equal(t, s.FindTempClosestToValue(6), s.FindTempClosestToValue(6))
	assert.Equal(t, []float64{-1, 0, 1, -2, 12.5}, s.Values())
}
