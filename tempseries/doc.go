// Package tempseries provides an in-memory series of temperature readings
// and descriptive statistics over it.
//
// # Creating a Series
//
// Create a series from readings in degrees Celsius. Every reading must be
// above absolute zero (-273 °C) or construction fails as a whole:
//
//	series, err := tempseries.New([]float64{3.5, -2.0, 7.25})
//	if errors.Is(err, tempseries.ErrInvalidTemperature) {
//	    // nothing was constructed
//	}
//
// Or start empty:
//
//	series := tempseries.NewEmpty()
//
// # Statistics
//
// Queries on an empty series return ErrEmptySeries:
//
//	avg, err := series.Average()
//	dev, err := series.Deviation()    // sample variance, n-1 denominator
//	lo, err := series.Min()
//	hi, err := series.Max()
//	sum, err := series.SummaryStatistics()
//
// # Searching and Filtering
//
//	zero := series.FindTempClosestToZero()
//	near := series.FindTempClosestToValue(5)
//	cold, err := series.FindTempsLessThan(0)
//	warm, err := series.FindTempsGreaterThan(20)
//
// The closest-value searches return 0 on an empty series instead of an error.
//
// # Appending
//
// AddTemps appends readings, doubling storage when it runs out, and returns
// the truncated sum of all readings:
//
//	total := series.AddTemps(5.0, 5.0)
//
// Appended readings are not checked against absolute zero.
package tempseries
