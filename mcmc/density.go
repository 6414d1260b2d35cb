// Package mcmc: posterior density evaluation.

package mcmc

import "math"

// contribution returns the likelihood of context c at its current date and
// its term in the joint posterior:
//
//	L(θ) / (α − β) · mass(ordering window) / mass(group window)
//
// Both windows are type-aware. A window holding no grid point falls back to
// L(θ). A date outside the table or outside its ordering window, a degenerate
// group, or an empty mass yields (0, 0).
//
// Complexity: O(deg(c)).
func (s *Sampler) contribution(st *State, c int) (lik, term float64) {
	ci := &s.ctx[c]
	theta := st.Theta[c]
	if !ci.table.Contains(theta) {
		return 0, 0
	}
	lik = ci.table.At(theta)

	lo, hi := s.orderBounds(st, c)
	if theta < lo || theta > hi {
		return 0, 0
	}
	wlo, whi := s.groupWindow(st, c)

	narrow, n := ci.table.Mass(lo, hi)
	if n == 0 {
		narrow = lik
	}
	wide, n := ci.table.Mass(wlo, whi)
	if n == 0 {
		wide = lik
	}
	grp := &s.groups[ci.group]
	length := st.Phi[grp.alpha] - st.Phi[grp.beta]
	if narrow == 0 || wide == 0 || !(length > 0) {
		return 0, 0
	}

	return lik, lik / length * narrow / wide
}

// evaluate recomputes every term of st.
func (s *Sampler) evaluate(st *State) {
	for c := range s.ctx {
		_, st.Terms[c] = s.contribution(st, c)
	}
}

// logRatio returns log(Π next / Π prev). ok is false when any term on either
// side is zero, which makes the ratio zero and the move rejected.
func logRatio(next, prev []float64) (lr float64, ok bool) {
	for i := range next {
		if next[i] == 0 || prev[i] == 0 {
			return 0, false
		}
		lr += math.Log(next[i]) - math.Log(prev[i])
	}

	return lr, true
}

// accept applies the Metropolis–Hastings rule to a log acceptance ratio.
func accept(u, logAlpha float64) bool {
	if logAlpha >= 0 {
		return true
	}

	return math.Log(u) < logAlpha
}
