// SPDX-License-Identifier: MIT
// Package mcmc: deterministic random streams.
//
// Every chain owns one *rand.Rand; nothing draws from a global source.
// math/rand.Rand is not goroutine-safe, so parallel chains get independent
// streams derived from the configured seed.

package mcmc

import "math/rand"

// defaultRNGSeed replaces a zero seed so the default configuration is
// reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 uses defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer,
// so restart k and chain k see unrelated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// uniform draws from [lo, hi], never past hi after rounding.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	v := lo + rng.Float64()*(hi-lo)
	if v > hi {
		return hi
	}

	return v
}
