// SPDX-License-Identifier: MIT
// Package calib: likelihood construction and the read-only Table.

package calib

import (
	"fmt"
	"math"
	"sort"
)

// Resolution is the spacing of the fine grid produced by Likelihood (years).
const Resolution = 0.1

// stepsPerYear is 1/Resolution as an integer.
const stepsPerYear = 10

// gridEps absorbs float noise when mapping a window edge onto grid indices.
const gridEps = 1e-9

// Table is a normalized calendar-date likelihood on a 0.1-year grid.
// It is immutable once built and safe for concurrent readers.
type Table struct {
	start float64   // calendar year of grid point 0
	years []float64 // grid years, ascending
	dens  []float64 // normalized density, Σ dens = 1
	cum   []float64 // prefix sums: cum[i] = Σ dens[0:i], len = len(dens)+1
}

// Likelihood calibrates one determination against curve over the horizon [a, p).
//
// Implementation:
//   - Stage 1: for each integer year y in [a, p) evaluate the Gaussian-form
//     density exp(−(age−c14(y))²/2v)/√v with v = err² + curveErr(y)².
//   - Stage 2: upsample the annual step sequence to Resolution by linear
//     interpolation over [a, p−1].
//   - Stage 3: normalize so the densities sum to 1 and build prefix sums.
//
// A flat curve (constant carbon age and error) yields a uniform table.
//
// Errors:
//   - ErrBadHorizon if p−a < 2.
//   - ErrBadError if err is not positive and finite.
//   - ErrCurveCoverage if curve misses any year of [a, p).
//   - ErrZeroLikelihood if every density underflows.
//
// Complexity: Time O((p−a)·10), Space O((p−a)·10).
func Likelihood(age, err float64, a, p int, curve *Curve) (*Table, error) {
	if p-a < 2 {
		return nil, fmt.Errorf("[%d, %d): %w", a, p, ErrBadHorizon)
	}
	if !finite(err) || err <= 0 {
		return nil, fmt.Errorf("error %v: %w", err, ErrBadError)
	}
	if curve == nil || !curve.Covers(a, p) {
		return nil, fmt.Errorf("[%d, %d): %w", a, p, ErrCurveCoverage)
	}

	// Stage 1: annual densities.
	n := p - a
	annual := make([]float64, n)
	for k := 0; k < n; k++ {
		c14, sigma, _ := curve.At(a + k)
		v := err*err + sigma*sigma
		d := age - c14
		annual[k] = math.Exp(-d*d/(2*v)) / math.Sqrt(v)
	}

	// Stage 2: linear upsampling.
	m := (n-1)*stepsPerYear + 1
	t := &Table{
		start: float64(a),
		years: make([]float64, m),
		dens:  make([]float64, m),
		cum:   make([]float64, m+1),
	}
	for j := 0; j < m; j++ {
		k, r := j/stepsPerYear, j%stepsPerYear
		t.years[j] = float64(a) + float64(j)/stepsPerYear
		if r == 0 {
			t.dens[j] = annual[k]
			continue
		}
		w := float64(r) / stepsPerYear
		t.dens[j] = annual[k] + w*(annual[k+1]-annual[k])
	}

	// Stage 3: normalize.
	var total float64
	for _, d := range t.dens {
		total += d
	}
	if total == 0 || !finite(total) {
		return nil, fmt.Errorf("age %v±%v: %w", age, err, ErrZeroLikelihood)
	}
	for j := range t.dens {
		t.dens[j] /= total
		t.cum[j+1] = t.cum[j] + t.dens[j]
	}

	return t, nil
}

// Len returns the number of grid points.
func (t *Table) Len() int { return len(t.dens) }

// Lo returns the youngest grid year.
func (t *Table) Lo() float64 { return t.years[0] }

// Hi returns the oldest grid year.
func (t *Table) Hi() float64 { return t.years[len(t.years)-1] }

// Years returns a copy of the grid years.
func (t *Table) Years() []float64 {
	out := make([]float64, len(t.years))
	copy(out, t.years)

	return out
}

// Density returns a copy of the normalized densities.
func (t *Table) Density() []float64 {
	out := make([]float64, len(t.dens))
	copy(out, t.dens)

	return out
}

// Contains reports whether theta maps onto a grid point.
func (t *Table) Contains(theta float64) bool {
	_, ok := t.index(theta)

	return ok
}

// At returns the density of the grid point nearest to theta, or 0 when theta
// lies outside the tabulated horizon.
// Complexity: O(1).
func (t *Table) At(theta float64) float64 {
	i, ok := t.index(theta)
	if !ok {
		return 0
	}

	return t.dens[i]
}

// Mass sums the densities of every grid point inside [lo, hi] and reports how
// many points were summed. An inverted or disjoint window yields (0, 0).
// Complexity: O(1).
func (t *Table) Mass(lo, hi float64) (mass float64, points int) {
	i, j, ok := t.window(lo, hi)
	if !ok {
		return 0, 0
	}

	return t.cum[j+1] - t.cum[i], j - i + 1
}

// QuantileIn maps u ∈ [0, 1) onto a grid year inside [lo, hi], distributed
// according to the table restricted to that window (inverse-CDF sampling).
// ok is false when the window holds no grid point or no probability mass.
// Complexity: O(log n).
func (t *Table) QuantileIn(lo, hi, u float64) (year float64, ok bool) {
	i, j, ok := t.window(lo, hi)
	if !ok {
		return 0, false
	}
	base, mass := t.cum[i], t.cum[j+1]-t.cum[i]
	if mass <= 0 {
		return 0, false
	}
	target := base + u*mass
	// first k with cum[k+1] > target
	k := sort.Search(len(t.cum), func(x int) bool { return t.cum[x] > target }) - 1
	if k < i {
		k = i
	}
	if k > j {
		k = j
	}

	return t.years[k], true
}

// index maps theta onto the nearest grid index.
func (t *Table) index(theta float64) (int, bool) {
	if math.IsNaN(theta) {
		return 0, false
	}
	f := (theta - t.start) * stepsPerYear
	if f < -0.5 || f > float64(len(t.dens))-0.5 {
		return 0, false
	}
	i := int(math.Round(f))
	if i < 0 || i >= len(t.dens) {
		return 0, false
	}

	return i, true
}

// window maps [lo, hi] onto the inclusive index range of grid points it holds.
func (t *Table) window(lo, hi float64) (int, int, bool) {
	if math.IsNaN(lo) || math.IsNaN(hi) || hi < lo {
		return 0, 0, false
	}
	fi := math.Ceil((lo-t.start)*stepsPerYear - gridEps)
	fj := math.Floor((hi-t.start)*stepsPerYear + gridEps)
	if fi < 0 {
		fi = 0
	}
	if last := float64(len(t.dens) - 1); fj > last {
		fj = last
	}
	if fj < fi {
		return 0, 0, false
	}

	return int(fi), int(fj), true
}
