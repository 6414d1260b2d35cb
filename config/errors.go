// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

// ErrInvalid indicates a run file whose values cannot drive a run.
var ErrInvalid = errors.New("config: invalid run settings")
