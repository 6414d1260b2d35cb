// SPDX-License-Identifier: MIT
// Package dataio: sentinel error set.

package dataio

import "errors"

var (
	// ErrMalformedRow indicates a CSV row with missing or non-numeric fields.
	ErrMalformedRow = errors.New("dataio: malformed row")

	// ErrBadModelFile indicates a model document that decodes but cannot be
	// mapped onto a model (unknown enum value, missing id, bad deposition).
	ErrBadModelFile = errors.New("dataio: invalid model document")

	// ErrNoHistory indicates a sample export asked for per-move histories
	// that were not recorded.
	ErrNoHistory = errors.New("dataio: history not recorded")
)
