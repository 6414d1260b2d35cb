// SPDX-License-Identifier: MIT
// Package mcmc: sentinel errors and the typed run-level failure.

package mcmc

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates NewSampler received a nil model.
	ErrNilModel = errors.New("mcmc: model is nil")

	// ErrUnsupportedRelationship indicates a group declares a relationship
	// combination the boundary-limit table has no cell for (for example an
	// upper boundary whose previous relationship is "end").
	ErrUnsupportedRelationship = errors.New("mcmc: unsupported group relationship")

	// ErrInconsistentModel indicates the initial-state sampler met an empty
	// window, i.e. the declared stratigraphy and group relationships cannot
	// all hold at once.
	ErrInconsistentModel = errors.New("mcmc: constraints leave an empty window")

	// ErrNotConverged indicates every permitted attempt ended with an
	// acceptance rate outside the configured bounds.
	ErrNotConverged = errors.New("mcmc: chain did not mix within the restart budget")
)

// ConvergenceError reports the last failed attempt of Run. It matches
// ErrNotConverged with errors.Is.
type ConvergenceError struct {
	Attempts  int     // attempts made, including the first run
	Parameter string  // label of the first offending parameter
	Rate      float64 // its acceptance rate
	Cause     error   // ErrInconsistentModel when the last attempt could not start
}

// Error implements error.
func (e *ConvergenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v after %d attempts: %v", ErrNotConverged, e.Attempts, e.Cause)
	}

	return fmt.Sprintf("%v after %d attempts: %s acceptance %.4f", ErrNotConverged, e.Attempts, e.Parameter, e.Rate)
}

// Is makes errors.Is(err, ErrNotConverged) true.
func (e *ConvergenceError) Is(target error) bool { return target == ErrNotConverged }

// Unwrap exposes the cause, if any.
func (e *ConvergenceError) Unwrap() error { return e.Cause }
