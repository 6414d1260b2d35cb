// SPDX-License-Identifier: MIT
// Package hpd: sentinel error set.

package hpd

import "errors"

var (
	// ErrTooFewSamples indicates an empty sample set, or a burn-in that
	// consumes every sample.
	ErrTooFewSamples = errors.New("hpd: too few samples")

	// ErrBadLevel indicates a credibility level outside (0, 1].
	ErrBadLevel = errors.New("hpd: level must be in (0, 1]")

	// ErrBadSample indicates a NaN or infinite sample.
	ErrBadSample = errors.New("hpd: sample is not finite")
)
