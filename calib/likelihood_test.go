package calib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/calib"
)

// linearCurve mimics a calibration curve with a constant slope of one carbon
// year per calendar year and a mild wiggle.
func linearCurve(t *testing.T, first, last int) *calib.Curve {
	t.Helper()
	pts := make([]calib.Point, 0, last-first+1)
	for y := first; y <= last; y += 5 {
		pts = append(pts, calib.Point{
			Year:        y,
			CarbonYear:  float64(y) + 15*math.Sin(float64(y)/40),
			CarbonError: 12,
		})
	}
	c, err := calib.NewCurve(pts)
	require.NoError(t, err)

	return c
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}

// TestLikelihood_SumsToOne checks normalization across a spread of inputs.
func TestLikelihood_SumsToOne(t *testing.T) {
	curve := linearCurve(t, 0, 6000)
	cases := []struct {
		name     string
		age, err float64
		a, p     int
	}{
		{"centred", 3000, 30, 2000, 4000},
		{"narrow", 1500, 5, 1000, 2000},
		{"wide error", 4200, 250, 3000, 5800},
		{"edge of horizon", 2010, 40, 2000, 2600},
		{"short horizon", 500, 20, 480, 482},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab, err := calib.Likelihood(tc.age, tc.err, tc.a, tc.p, curve)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, sum(tab.Density()), 1e-9)
			assert.Equal(t, float64(tc.a), tab.Lo())
			assert.Equal(t, float64(tc.p-1), tab.Hi())
			assert.Equal(t, (tc.p-tc.a-1)*10+1, tab.Len())
		})
	}
}

// TestLikelihood_FlatCurveIsUniform verifies that a flat curve carries no
// information about the calendar date.
func TestLikelihood_FlatCurveIsUniform(t *testing.T) {
	curve := calib.Flat(0, 1000, 2500, 20)
	tab, err := calib.Likelihood(2400, 35, 100, 300, curve)
	require.NoError(t, err)

	dens := tab.Density()
	want := 1.0 / float64(len(dens))
	for i, d := range dens {
		require.InDelta(t, want, d, 1e-12, "grid point %d", i)
	}
}

// TestLikelihood_PeaksNearMeasuredAge checks the mode sits where the curve
// maps the measured age.
func TestLikelihood_PeaksNearMeasuredAge(t *testing.T) {
	pts := []calib.Point{
		{Year: 0, CarbonYear: 0, CarbonError: 0},
		{Year: 2000, CarbonYear: 2000, CarbonError: 0},
	}
	curve, err := calib.NewCurve(pts)
	require.NoError(t, err)

	tab, err := calib.Likelihood(1200, 25, 1000, 1400, curve)
	require.NoError(t, err)

	years, dens := tab.Years(), tab.Density()
	best := 0
	for i := range dens {
		if dens[i] > dens[best] {
			best = i
		}
	}
	assert.InDelta(t, 1200, years[best], 0.05)
}

// TestLikelihood_Errors covers every sentinel returned by Likelihood.
func TestLikelihood_Errors(t *testing.T) {
	curve := calib.Flat(0, 100, 50, 10)

	_, err := calib.Likelihood(50, 10, 10, 11, curve)
	assert.ErrorIs(t, err, calib.ErrBadHorizon)

	_, err = calib.Likelihood(50, 10, 20, 10, curve)
	assert.ErrorIs(t, err, calib.ErrBadHorizon)

	_, err = calib.Likelihood(50, 0, 10, 50, curve)
	assert.ErrorIs(t, err, calib.ErrBadError)

	_, err = calib.Likelihood(50, math.NaN(), 10, 50, curve)
	assert.ErrorIs(t, err, calib.ErrBadError)

	_, err = calib.Likelihood(50, 10, 50, 200, curve)
	assert.ErrorIs(t, err, calib.ErrCurveCoverage)

	_, err = calib.Likelihood(50, 10, 0, 50, nil)
	assert.ErrorIs(t, err, calib.ErrCurveCoverage)

	sharp := calib.Flat(0, 100, 0, 0)
	_, err = calib.Likelihood(1e6, 1, 0, 50, sharp)
	assert.ErrorIs(t, err, calib.ErrZeroLikelihood)
}

// TestTable_AtAndMass exercises point and window lookups on a uniform table.
func TestTable_AtAndMass(t *testing.T) {
	tab, err := calib.Likelihood(10, 1, 0, 11, calib.Flat(0, 20, 10, 1))
	require.NoError(t, err)
	require.Equal(t, 101, tab.Len())

	p := 1.0 / 101
	assert.InDelta(t, p, tab.At(5.02), 1e-12)
	assert.Zero(t, tab.At(-0.2))
	assert.Zero(t, tab.At(10.2))
	assert.True(t, tab.Contains(10.04))
	assert.False(t, tab.Contains(10.06))

	mass, n := tab.Mass(2, 3)
	assert.Equal(t, 11, n)
	assert.InDelta(t, 11*p, mass, 1e-12)

	mass, n = tab.Mass(-100, 100)
	assert.Equal(t, 101, n)
	assert.InDelta(t, 1, mass, 1e-12)

	mass, n = tab.Mass(3.01, 3.09)
	assert.Zero(t, n)
	assert.Zero(t, mass)

	mass, n = tab.Mass(4, 2)
	assert.Zero(t, n)
	assert.Zero(t, mass)
}

// TestTable_QuantileIn checks restricted inverse-CDF sampling stays inside
// its window and honours the distribution.
func TestTable_QuantileIn(t *testing.T) {
	tab, err := calib.Likelihood(10, 1, 0, 11, calib.Flat(0, 20, 10, 1))
	require.NoError(t, err)

	for _, u := range []float64{0, 0.1, 0.5, 0.9, 0.999999} {
		y, ok := tab.QuantileIn(2, 4, u)
		require.True(t, ok)
		assert.GreaterOrEqual(t, y, 2.0)
		assert.LessOrEqual(t, y, 4.0)
	}

	y, ok := tab.QuantileIn(2, 4, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 3.0, y, 0.11)

	_, ok = tab.QuantileIn(3.01, 3.09, 0.5)
	assert.False(t, ok)
}

// TestNewCurve_Densifies checks interpolation between sparse rows and the
// validation of bad rows.
func TestNewCurve_Densifies(t *testing.T) {
	c, err := calib.NewCurve([]calib.Point{
		{Year: 110, CarbonYear: 200, CarbonError: 20},
		{Year: 100, CarbonYear: 100, CarbonError: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, c.First())
	assert.Equal(t, 110, c.Last())
	assert.True(t, c.Covers(100, 111))
	assert.False(t, c.Covers(99, 105))

	c14, sigma, ok := c.At(104)
	require.True(t, ok)
	assert.InDelta(t, 140, c14, 1e-12)
	assert.InDelta(t, 14, sigma, 1e-12)

	_, _, ok = c.At(111)
	assert.False(t, ok)

	_, err = calib.NewCurve(nil)
	assert.ErrorIs(t, err, calib.ErrEmptyCurve)

	_, err = calib.NewCurve([]calib.Point{{Year: 1, CarbonYear: math.Inf(1)}})
	assert.ErrorIs(t, err, calib.ErrBadCurvePoint)

	_, err = calib.NewCurve([]calib.Point{{Year: 1}, {Year: 1}})
	assert.ErrorIs(t, err, calib.ErrBadCurvePoint)
}
