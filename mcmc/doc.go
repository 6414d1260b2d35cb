// Package mcmc samples the joint posterior of context dates and group
// boundaries under stratigraphic and phase constraints.
//
// What:
//
//   - Sampler: built once from a model.Model, a calibration curve and a
//     horizon [A, P). It owns one likelihood table per context and the static
//     layout of the boundary vector.
//   - State: the mutable dates θ, boundaries φ and per-context posterior
//     terms of one chain.
//   - Run: a Metropolis–Hastings chain of four moves per iteration (single
//     date, single boundary, global shift, global scale), followed by an
//     acceptance-rate check that restarts the whole run when a parameter mixes
//     badly.
//   - Diagnose: two independent chains in parallel and their Gelman–Rubin
//     statistic.
//
// Axis:
//
//	Dates are Cal BP (larger = older). Each group g has an upper boundary
//	α_g (its start) and a lower boundary β_g (its end), α_g ≥ β_g. Groups run
//	oldest → youngest, and abutting neighbours share one boundary parameter.
//
// Context types:
//
//	normal     bounded by both group boundaries and every neighbour
//	residual   may be younger than its material: ignores lower bounds
//	intrusive  may be older than its cut: ignores upper bounds
//
// Determinism:
//
//	Every chain draws from its own *rand.Rand seeded from Options.Seed; a
//	restart or a second diagnostic chain uses a derived seed. Equal options
//	give equal results.
//
// Errors:
//
//   - ErrNilModel                 nil model
//   - ErrUnsupportedRelationship  a group's (prev, next) pair has no limit cell
//   - ErrInconsistentModel        the initial state found an empty window
//   - ErrNotConverged             wrapped in *ConvergenceError after MaxRestarts
package mcmc
