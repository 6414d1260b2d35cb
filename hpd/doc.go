// Package hpd extracts highest-posterior-density intervals from MCMC samples.
//
// Samples are binned into one-year bins between their minimum and maximum.
// Bins are taken greedily by descending count until the requested mass is
// covered; the chosen bins are then sorted and adjacent ones merged. The
// result is a flat, ascending slice [l1, u1, l2, u2, …], one pair per
// disjoint interval, so a bimodal posterior yields two pairs.
//
// Because a higher level selects a superset of the bins chosen at a lower
// level, Width is non-decreasing in the level.
package hpd
