package tempseries

import (
	"math"
)

// FindTempClosestToZero returns the reading nearest to 0.
// Equally distant readings resolve to the first one seen.
func (s *Series) FindTempClosestToZero() float64 {
	return s.FindTempClosestToValue(0)
}

// FindTempClosestToValue returns the reading nearest to target, or 0 for an
// empty series.
//
// When two readings are equally distant, a positive target prefers the larger
// reading and a negative target the smaller one. A zero target keeps the first
// reading seen.
//
// The scan is seeded with the first reading, so an infinite target, where
// every distance is +Inf, still resolves through the tie-break rules. A NaN
// target has no closest reading and returns 0.
func (s *Series) FindTempClosestToValue(target float64) float64 {
	readings := s.readings()
	if len(readings) == 0 || math.IsNaN(target) {
		return 0
	}

	closest := readings[0]
	minDiff := math.Abs(closest - target)

	for _, v := range readings[1:] {
		diff := math.Abs(v - target)
		switch {
		case diff < minDiff:
			minDiff = diff
			closest = v
		case diff == minDiff && target > 0 && v > closest:
			closest = v
		case diff == minDiff && target < 0 && v < closest:
			closest = v
		}
	}

	return closest
}

// FindTempsLessThan returns the readings strictly below threshold, in
// insertion order.
func (s *Series) FindTempsLessThan(threshold float64) ([]float64, error) {
	return s.filter(func(v float64) bool { return v < threshold })
}

// FindTempsGreaterThan returns the readings strictly above threshold, in
// insertion order.
func (s *Series) FindTempsGreaterThan(threshold float64) ([]float64, error) {
	return s.filter(func(v float64) bool { return v > threshold })
}

// filter counts the matches first so the result is allocated at its exact
// size. No match gives an empty, non-nil slice.
func (s *Series) filter(match func(float64) bool) ([]float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return nil, err
	}

	count := 0
	for _, v := range s.readings() {
		if match(v) {
			count++
		}
	}

	result := make([]float64, count)
	j := 0
	for _, v := range s.readings() {
		if match(v) {
			result[j] = v
			j++
		}
	}

	return result, nil
}
