// Package config loads the YAML run file of the strata command.
//
// A run file names the inputs and the sampler settings:
//
//	curve: intcal.csv
//	model: trench3.yaml
//	horizon: {young: 2000, old: 4000}
//	chain_length: 60000
//	burn_in: 1000
//	level: 0.95
//	seed: 7
//	acceptance: {low: 0.01, high: 0.70}
//	max_restarts: 20
//
// Missing keys keep the values of Default. Relative paths resolve against
// the run file's directory.
package config
