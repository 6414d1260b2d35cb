// SPDX-License-Identifier: MIT
// Package calib: sentinel error set.
//
// Every message is prefixed with "calib: ". Callers match with errors.Is;
// implementations attach context with fmt.Errorf("...: %w", ErrX).

package calib

import "errors"

var (
	// ErrBadHorizon indicates an empty or inverted working horizon (A >= P),
	// or one too short to hold a single interpolation step.
	ErrBadHorizon = errors.New("calib: invalid horizon")

	// ErrBadError indicates a measurement error that is zero, negative, NaN or Inf.
	ErrBadError = errors.New("calib: measurement error must be positive and finite")

	// ErrCurveCoverage indicates the curve does not tabulate every year of the horizon.
	ErrCurveCoverage = errors.New("calib: curve does not cover horizon")

	// ErrZeroLikelihood indicates every density in the horizon underflowed to zero,
	// typically because the measured age lies far outside the curve's range.
	ErrZeroLikelihood = errors.New("calib: likelihood is zero over the horizon")

	// ErrEmptyCurve indicates NewCurve received no usable points.
	ErrEmptyCurve = errors.New("calib: curve has no points")

	// ErrBadCurvePoint indicates a NaN/Inf value or a negative error in a curve row.
	ErrBadCurvePoint = errors.New("calib: invalid curve point")
)
