// SPDX-License-Identifier: MIT
// Package dataio: calibration curve import.

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/strata/calib"
)

// ReadCurveCSV parses a calibration curve and densifies it with calib.NewCurve.
// Columns are calendar_year, carbon_year, carbon_error; further columns are
// ignored. The first row is treated as a header when its first field is not
// a number.
//
// Errors: ErrMalformedRow (with the line number), csv read errors,
// calib.ErrEmptyCurve / calib.ErrBadCurvePoint.
func ReadCurveCSV(r io.Reader) (*calib.Curve, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var points []calib.Point
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading curve: %w", err)
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: %d fields: %w", line, len(record), ErrMalformedRow)
		}
		year, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			if line == 1 {
				continue // header
			}

			return nil, fmt.Errorf("line %d: calendar year %q: %w", line, record[0], ErrMalformedRow)
		}
		if year != math.Trunc(year) {
			return nil, fmt.Errorf("line %d: calendar year %v is not whole: %w", line, year, ErrMalformedRow)
		}
		c14, err1 := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		sigma, err2 := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("line %d: %w", line, ErrMalformedRow)
		}
		points = append(points, calib.Point{Year: int(year), CarbonYear: c14, CarbonError: sigma})
	}

	return calib.NewCurve(points)
}
