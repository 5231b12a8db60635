package tempseries

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Average returns the arithmetic mean of the readings.
func (s *Series) Average() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}
	return stat.Mean(s.readings(), nil), nil
}

// Deviation returns the sample variance of the readings using Bessel's
// correction, sum((x - mean)^2) / (n - 1).
//
// A series with a single reading divides by zero and yields NaN.
func (s *Series) Deviation() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}
	return stat.Variance(s.readings(), nil), nil
}

// Min returns the lowest reading.
// A -Inf or NaN reading other than the first is skipped, since its distance
// to -Inf is NaN.
func (s *Series) Min() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}
	return s.FindTempClosestToValue(math.Inf(-1)), nil
}

// Max returns the highest reading.
// A +Inf or NaN reading other than the first is skipped, since its distance
// to +Inf is NaN.
func (s *Series) Max() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}
	return s.FindTempClosestToValue(math.Inf(1)), nil
}

// SummaryStatistics computes average, deviation, min and max of the current
// readings. Each figure is computed by its own pass over the data.
func (s *Series) SummaryStatistics() (SummaryStatistics, error) {
	if err := s.checkNotEmpty(); err != nil {
		return SummaryStatistics{}, err
	}

	avg, err := s.Average()
	if err != nil {
		return SummaryStatistics{}, err
	}
	dev, err := s.Deviation()
	if err != nil {
		return SummaryStatistics{}, err
	}
	lo, err := s.Min()
	if err != nil {
		return SummaryStatistics{}, err
	}
	hi, err := s.Max()
	if err != nil {
		return SummaryStatistics{}, err
	}

	return SummaryStatistics{
		Average:   avg,
		Deviation: dev,
		Min:       lo,
		Max:       hi,
	}, nil
}

func (s *Series) checkNotEmpty() error {
	if s.n == 0 {
		return ErrEmptySeries
	}
	return nil
}
