// SPDX-License-Identifier: MIT
// Package dataio: result table export.

package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/strata/calib"
	"github.com/katalvlaran/strata/hpd"
	"github.com/katalvlaran/strata/mcmc"
)

// WriteHPDCSV writes one line per row: label, lower_1, upper_1, lower_2, …
// Rows with fewer intervals than the widest row leave their tail empty.
func WriteHPDCSV(w io.Writer, rows []hpd.Row) error {
	widest := 0
	for _, r := range rows {
		widest = max(widest, len(r.Intervals)/2)
	}
	header := make([]string, 1, 1+2*widest)
	header[0] = "label"
	for k := 1; k <= widest; k++ {
		header = append(header, "lower_"+strconv.Itoa(k), "upper_"+strconv.Itoa(k))
	}

	out := csv.NewWriter(w)
	if err := out.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, r := range rows {
		clear(record)
		record[0] = r.Label
		for i, v := range r.Intervals {
			record[1+i] = formatFloat(v)
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()

	return out.Error()
}

// WriteSamplesCSV writes one column per parameter (contexts, then
// boundaries) and one row per iteration. With accepted false the per-move
// histories are written instead, four rows per iteration.
//
// Errors: ErrNoHistory when moves were requested but not recorded.
func WriteSamplesCSV(w io.Writer, res *mcmc.Result, accepted bool) error {
	params := res.Params()
	series := make([][]float64, len(params))
	header := make([]string, len(params))
	rows := -1
	for i, tr := range params {
		header[i] = tr.Label
		series[i] = tr.Accepted
		if !accepted {
			series[i] = tr.Moves
		}
		if rows < 0 || len(series[i]) < rows {
			rows = len(series[i])
		}
	}
	if !accepted && rows <= 0 && res.Iterations > 0 {
		return fmt.Errorf("per-move samples: %w", ErrNoHistory)
	}

	out := csv.NewWriter(w)
	if err := out.Write(header); err != nil {
		return err
	}
	record := make([]string, len(params))
	for it := 0; it < rows; it++ {
		for i := range series {
			record[i] = formatFloat(series[i][it])
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()

	return out.Error()
}

// WriteLikelihoodCSV writes a calibrated determination as year,density rows
// on the table's grid.
func WriteLikelihoodCSV(w io.Writer, t *calib.Table) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"year", "density"}); err != nil {
		return err
	}
	dens := t.Density()
	for i, y := range t.Years() {
		if err := out.Write([]string{formatFloat(y), formatFloat(dens[i])}); err != nil {
			return err
		}
	}
	out.Flush()

	return out.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
