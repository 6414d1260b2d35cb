// Package strata dates stratified archaeological sequences: radiocarbon
// determinations are calibrated against a curve and squeezed by the order
// in which their contexts were deposited.
//
// 🚀 What is strata?
//
//	A pure-Go Bayesian chronology toolkit that brings together:
//		• Calibration: densified curves and per-determination likelihood tables
//		• Stratigraphy: context graphs, deposition records, topological order
//		• Phases: groups with start/end boundaries that abut, overlap or leave gaps
//		• Sampling: a Metropolis–Hastings chain with restart on poor mixing
//		• Summaries: HPD regions, phase lengths, a two-chain R-hat check
//
// Under the hood, everything is organized in small packages:
//
//	calib/  - calibration curves and likelihood tables
//	core/   - directed graph storage
//	dfs/    - topological sort and cycle detection over core graphs
//	strat/  - stratigraphic graph, cycle detection, topological order
//	model/  - contexts, groups and relationships; validation
//	mcmc/   - the sampler, its options, results and diagnostic
//	hpd/    - highest posterior density regions
//	dataio/ - curve CSV, model YAML, result tables
//	config/ - run files for the command
//
// Axis convention: years are Cal BP, larger is older. A context "below"
// another on the date axis is younger; physical deposition records are
// converted by strat.FromDeposition.
//
//	               ┌ alpha (start) ┐
//	  older  ──▶   │  floor        │
//	               │  hearth       │   ◀── younger
//	               └ beta (end)    ┘
//
//	go install github.com/katalvlaran/strata/cmd/strata@latest
package strata
