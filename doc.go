// Package gotempseries provides in-memory analysis of temperature readings.
//
// # Features
//
//   - Growable series of readings in degrees Celsius, validated against absolute zero
//   - Descriptive statistics: average, sample variance, min and max
//   - Closest-reading search with direction-aware tie-breaking
//   - Threshold filters that keep insertion order
//   - Amortized append with capacity doubling
//
// # Quick Start
//
//	series, err := tempseries.New([]float64{10, 20, 30})
//	if err != nil {
//	    return err
//	}
//	summary, _ := series.SummaryStatistics()
//	// summary.Average == 20, summary.Deviation == 100
//
//	total := series.AddTemps(-5, 12.5)
//
// # Packages
//
//   - tempseries: the Series type, SummaryStatistics and errors
//
// The demo command prints a report for readings given on the command line
// or loaded from a CSV file.
package gotempseries
