// Package main demonstrates temperature series analysis on readings given
// as arguments or loaded from a CSV file.
//
// Usage:
//
//	demo [-config demo.yaml] [-input readings.csv] [-target 5] [-threshold 0] [reading ...]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/gotempseries/tempseries"
)

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		slog.Error("failed to parse flags", "error", err)
		os.Exit(2)
	}

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	opts.apply(cfg)

	logger := newLogger(cfg, os.Stderr)
	logger.Debug("configuration loaded", "config", cfg.String())

	if err := run(cfg, opts.readings, os.Stdout, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath string
	readings   []string
	overrides  []func(*Config)
}

// apply copies explicitly set flags onto cfg so they win over the config file.
func (o *cliOptions) apply(cfg *Config) {
	for _, override := range o.overrides {
		override(cfg)
	}
}

// parseFlags parses argv. Usage and errors are written to errOut.
func parseFlags(argv []string, errOut io.Writer) (*cliOptions, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	configPath := fs.String("config", "", "YAML configuration file")
	input := fs.String("input", "", "CSV file of readings")
	target := fs.Float64("target", 0, "value for the closest-reading search")
	threshold := fs.Float64("threshold", 0, "split point for the below/above filters")

	if err := fs.Parse(argv); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	opts := &cliOptions{
		configPath: *configPath,
		readings:   fs.Args(),
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			opts.overrides = append(opts.overrides, func(c *Config) { c.Input = *input })
		case "target":
			opts.overrides = append(opts.overrides, func(c *Config) { c.Target = *target })
		case "threshold":
			opts.overrides = append(opts.overrides, func(c *Config) { c.Threshold = *threshold })
		}
	})

	return opts, nil
}

// run builds the series, prints the report and then exercises AddTemps by
// appending the readings a second time.
func run(cfg *Config, args []string, out io.Writer, logger *slog.Logger) error {
	series, err := loadSeries(cfg, args)
	if err != nil {
		return err
	}
	logger.Info("series loaded", "readings", series.Len())

	writeReport(out, series, cfg)

	total := series.AddTemps(series.Values()...)
	fmt.Fprintf(out, "\n%s\nAPPEND\n%s\n", banner(), banner())
	fmt.Fprintf(out, "Appended readings again: count=%d capacity=%d total=%d\n",
		series.Len(), series.Cap(), total)

	return nil
}

// loadSeries reads the CSV input when configured, otherwise parses args.
func loadSeries(cfg *Config, args []string) (*tempseries.Series, error) {
	if cfg.Input != "" {
		opts := DefaultCSVOptions()
		opts.ValueColumn = cfg.Column
		return LoadCSV(cfg.Input, opts)
	}

	values, err := parseReadings(args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return tempseries.NewEmpty(), nil
	}
	series, err := tempseries.New(values)
	if err != nil {
		return nil, errors.Wrap(err, "build series")
	}
	return series, nil
}

// writeReport prints the statistics of series to out.
func writeReport(out io.Writer, series *tempseries.Series, cfg *Config) {
	fmt.Fprintf(out, "%s\nTemperature Series Analysis\n%s\n", banner(), banner())
	fmt.Fprintf(out, "Readings:   %d (capacity %d)\n", series.Len(), series.Cap())

	summary, err := series.SummaryStatistics()
	fmt.Fprintf(out, "Average:    %s\n", formatStat(summary.Average, err))
	fmt.Fprintf(out, "Deviation:  %s\n", formatStat(summary.Deviation, err))
	fmt.Fprintf(out, "Min:        %s\n", formatStat(summary.Min, err))
	fmt.Fprintf(out, "Max:        %s\n", formatStat(summary.Max, err))

	fmt.Fprintf(out, "Closest to zero:   %.4f\n", series.FindTempClosestToZero())
	fmt.Fprintf(out, "Closest to %g: %.4f\n", cfg.Target, series.FindTempClosestToValue(cfg.Target))

	below, err := series.FindTempsLessThan(cfg.Threshold)
	fmt.Fprintf(out, "Below %g: %s\n", cfg.Threshold, formatList(below, err))
	above, err := series.FindTempsGreaterThan(cfg.Threshold)
	fmt.Fprintf(out, "Above %g: %s\n", cfg.Threshold, formatList(above, err))
}

func formatStat(v float64, err error) string {
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

func formatList(values []float64, err error) string {
	if err != nil {
		return "n/a"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func banner() string {
	return strings.Repeat("=", 60)
}
