package main

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/sartorproj/gotempseries/tempseries"
)

// CSVOptions holds options for reading temperature readings from CSV.
type CSVOptions struct {
	ValueColumn string // Column name for readings (default: "temp")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "temp",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV reads a temperature series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*tempseries.Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open readings")
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader reads a temperature series from r. Blank and NA cells
// are skipped; any reading at or below absolute zero fails the whole load.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*tempseries.Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	values, err := readCSVValues(r, opts)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New("no valid readings found in CSV")
	}

	series, err := tempseries.New(values)
	if err != nil {
		return nil, errors.Wrap(err, "build series")
	}
	return series, nil
}

func readCSVValues(r io.Reader, opts *CSVOptions) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrap(err, "skip rows")
		}
	}

	valueIdx := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, errors.Wrap(err, "read header")
		}
		valueIdx = findColumn(header, opts.ValueColumn)
		if valueIdx == -1 {
			return nil, errors.Errorf("column %q not found in header", opts.ValueColumn)
		}
	}

	var values []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		if valueIdx >= len(record) {
			continue
		}

		cell := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if isMissing(cell) {
			continue
		}
		v, err := cast.ToFloat64E(cell)
		if err != nil {
			continue // Skip unparseable cells
		}
		values = append(values, v)
	}

	return values, nil
}

// findColumn returns the index of name in header, falling back to the
// common temperature column names when name is empty.
func findColumn(header []string, name string) int {
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if name != "" && h == name {
			return i
		}
	}
	if name != "" {
		return -1
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.Trim(h, "\""))) {
		case "temp", "temperature", "value", "y":
			return i
		}
	}
	return -1
}

func isMissing(cell string) bool {
	switch cell {
	case "", "NA", "NaN", "null":
		return true
	}
	return false
}

// parseReadings converts command-line arguments into readings.
func parseReadings(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := cast.ToFloat64E(strings.TrimSpace(arg))
		if err != nil {
			return nil, errors.Wrapf(err, "parse reading %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}
