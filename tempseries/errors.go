package tempseries

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptySeries is returned by statistic and filter queries on a series
	// with no readings.
	ErrEmptySeries = errors.New("temperature series is empty")

	// ErrInvalidTemperature matches any *InvalidTemperatureError.
	ErrInvalidTemperature = errors.New("invalid temperature")
)

// InvalidTemperatureError reports a reading at or below absolute zero
// supplied when constructing a series.
type InvalidTemperatureError struct {
	Index int
	Value float64
}

func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("invalid temperature %g at index %d: must be greater than %g", e.Value, e.Index, AbsoluteZero)
}

// Is reports whether target is ErrInvalidTemperature.
func (e *InvalidTemperatureError) Is(target error) bool {
	return target == ErrInvalidTemperature
}
