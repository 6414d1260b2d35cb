// SPDX-License-Identifier: MIT
// Package calib: dense annual calibration curve.

package calib

import (
	"fmt"
	"math"
	"sort"
)

// Point is one calibration curve row.
type Point struct {
	// Year is the calendar year in Cal BP.
	Year int

	// CarbonYear is the radiocarbon age (BP) the curve assigns to Year.
	CarbonYear float64

	// CarbonError is the curve's own 1σ uncertainty at Year.
	CarbonError float64
}

// Curve is an immutable annual calibration table covering [First, Last].
// Lookups are O(1) array reads.
type Curve struct {
	first int
	c14   []float64
	sigma []float64
}

// NewCurve builds a dense annual Curve from points given in any order.
// Gaps between consecutive tabulated years are filled by linear interpolation
// of both the carbon age and its error, so 5-year or 20-year published curves
// are accepted as-is.
//
// Errors:
//   - ErrEmptyCurve if points is empty.
//   - ErrBadCurvePoint for NaN/Inf values, negative errors or duplicate years.
//
// Complexity: O(k log k + (Last−First)) for k points.
func NewCurve(points []Point) (*Curve, error) {
	if len(points) == 0 {
		return nil, ErrEmptyCurve
	}

	// Stage 1: validate and sort a private copy.
	pts := make([]Point, len(points))
	copy(pts, points)
	for _, p := range pts {
		if !finite(p.CarbonYear) || !finite(p.CarbonError) || p.CarbonError < 0 {
			return nil, fmt.Errorf("year %d: %w", p.Year, ErrBadCurvePoint)
		}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
	for i := 1; i < len(pts); i++ {
		if pts[i].Year == pts[i-1].Year {
			return nil, fmt.Errorf("duplicate year %d: %w", pts[i].Year, ErrBadCurvePoint)
		}
	}

	// Stage 2: densify to one row per year.
	first, last := pts[0].Year, pts[len(pts)-1].Year
	n := last - first + 1
	c := &Curve{
		first: first,
		c14:   make([]float64, n),
		sigma: make([]float64, n),
	}
	for k := 0; k < len(pts); k++ {
		cur := pts[k]
		c.c14[cur.Year-first] = cur.CarbonYear
		c.sigma[cur.Year-first] = cur.CarbonError
		if k == len(pts)-1 {
			break
		}
		next := pts[k+1]
		gap := float64(next.Year - cur.Year)
		for y := cur.Year + 1; y < next.Year; y++ {
			w := float64(y-cur.Year) / gap
			c.c14[y-first] = cur.CarbonYear + w*(next.CarbonYear-cur.CarbonYear)
			c.sigma[y-first] = cur.CarbonError + w*(next.CarbonError-cur.CarbonError)
		}
	}

	return c, nil
}

// Flat returns a constant curve over [first, last]. It is mostly useful for
// tests and for uncalibrated (calendar-dated) determinations.
func Flat(first, last int, carbonYear, carbonError float64) *Curve {
	if last < first {
		first, last = last, first
	}
	n := last - first + 1
	c := &Curve{first: first, c14: make([]float64, n), sigma: make([]float64, n)}
	for i := 0; i < n; i++ {
		c.c14[i] = carbonYear
		c.sigma[i] = carbonError
	}

	return c
}

// First returns the youngest tabulated calendar year.
func (c *Curve) First() int { return c.first }

// Last returns the oldest tabulated calendar year.
func (c *Curve) Last() int { return c.first + len(c.c14) - 1 }

// Covers reports whether every integer year in [a, p) is tabulated.
func (c *Curve) Covers(a, p int) bool {
	return a >= c.First() && p-1 <= c.Last()
}

// At returns the carbon age and curve error tabulated for year.
// ok is false when year lies outside the curve.
func (c *Curve) At(year int) (carbonYear, carbonError float64, ok bool) {
	i := year - c.first
	if i < 0 || i >= len(c.c14) {
		return 0, 0, false
	}

	return c.c14[i], c.sigma[i], true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
