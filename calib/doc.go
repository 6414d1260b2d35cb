// Package calib turns radiocarbon determinations into calendar-date
// likelihoods.
//
// What:
//
//   - Curve: a dense, annual calibration table calendar_year → (carbon_year,
//     carbon_error). Sparse published curves (5-year or 20-year steps) are
//     densified once by linear interpolation in NewCurve.
//   - Likelihood: combines one determination (age ± error) with the curve
//     over a working horizon [A, P) and returns a normalized Table on a
//     0.1-year grid.
//   - Table: read-only probability table with O(1) point and window-mass
//     queries (prefix sums) and inverse-CDF sampling restricted to a window.
//
// Axis:
//
//	All calendar values are Cal BP (years before present, larger = older).
//	A horizon [A, P) therefore runs from the youngest to the oldest year the
//	sampler may visit.
//
// Errors:
//
//   - ErrBadHorizon     A >= P, or the horizon is too short to tabulate
//   - ErrBadError       measurement error is not a positive finite number
//   - ErrCurveCoverage  the curve does not cover the requested horizon
//   - ErrZeroLikelihood every tabulated density underflowed to zero
//   - ErrEmptyCurve     NewCurve received no usable points
//
// Complexity:
//
//   - Likelihood: Time O((P−A)·10), Memory O((P−A)·10)
//   - Table.At / Table.Mass: O(1); Table.QuantileIn: O(log n)
package calib
