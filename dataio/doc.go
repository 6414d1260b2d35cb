// Package dataio reads the sampler's inputs and writes its result tables.
//
// Formats:
//
//   - Curve CSV: calendar_year, carbon_year, carbon_error. A header row is
//     optional; blank lines and lines starting with '#' are skipped.
//   - Model YAML: groups (oldest first), contexts, and either date-axis
//     above/below lists or physical deposition records ("upper lies on
//     lower").
//   - HPD CSV: label, lower_1, upper_1, lower_2, upper_2, …
//   - Samples CSV: one column per parameter, one row per iteration (or per
//     move).
package dataio
