// Package tempseries provides an in-memory series of temperature readings.
package tempseries

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AbsoluteZero is the physical floor in degrees Celsius. Readings passed to
// New must be strictly greater than it.
const AbsoluteZero = -273.0

// Series is an ordered, growable sequence of temperature readings.
//
// The backing buffer is sized to the storage capacity; only the first n
// entries are readings. A Series is not safe for concurrent use.
type Series struct {
	buf []float64
	n   int
}

// NewEmpty creates a series with no readings and no reserved storage.
func NewEmpty() *Series {
	return &Series{}
}

// New creates a series from an initial set of readings.
// Every reading is checked before anything is copied, so a failed call
// returns a nil series and an *InvalidTemperatureError for the first
// offending reading.
func New(values []float64) (*Series, error) {
	for i, v := range values {
		if !isValidTemperature(v) {
			return nil, &InvalidTemperatureError{Index: i, Value: v}
		}
	}

	buf := make([]float64, len(values))
	copy(buf, values)

	return &Series{
		buf: buf,
		n:   len(values),
	}, nil
}

func isValidTemperature(v float64) bool {
	return v > AbsoluteZero
}

// Len returns the number of readings in the series.
func (s *Series) Len() int {
	return s.n
}

// Cap returns the number of readings the series can hold before it grows.
func (s *Series) Cap() int {
	return len(s.buf)
}

// Values returns a copy of the readings in insertion order.
func (s *Series) Values() []float64 {
	values := make([]float64, s.n)
	copy(values, s.buf[:s.n])
	return values
}

// AddTemps appends readings in order and returns the sum of every reading in
// the series after the append, truncated toward zero.
//
// Appended readings are not checked against AbsoluteZero. When the buffer is
// full its capacity is doubled before the next write. A NaN sum returns 0 and
// a sum outside the int range saturates at math.MaxInt or math.MinInt.
func (s *Series) AddTemps(temps ...float64) int {
	for _, t := range temps {
		if s.n == len(s.buf) {
			s.grow()
		}
		s.buf[s.n] = t
		s.n++
	}
	return truncate(floats.Sum(s.readings()))
}

// truncate converts f to int toward zero, saturating at the int bounds.
func truncate(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// grow doubles the storage capacity. An unallocated series grows to one slot.
func (s *Series) grow() {
	size := len(s.buf) * 2
	if size == 0 {
		size = 1
	}
	extended := make([]float64, size)
	copy(extended, s.buf)
	s.buf = extended
}

// readings returns the logical readings without copying.
func (s *Series) readings() []float64 {
	return s.buf[:s.n]
}
