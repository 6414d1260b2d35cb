// SPDX-License-Identifier: MIT
// Package mcmc: the four Metropolis–Hastings moves of one iteration.
//
// Every move works on a *State and a scratch snapshot owned by the chain.
// A move saves the vectors it may touch, mutates in place, re-evaluates the
// joint posterior and either keeps the result or restores the saved copies.

package mcmc

import (
	"math"
	"math/rand"
)

// move identifies one of the four steps.
type move int

const (
	moveDate move = iota
	moveBoundary
	moveShift
	moveScale
	numMoves
)

// outcome reports which parameter a single-parameter move touched (param is
// −1 for the global moves) and whether the proposal was kept.
type outcome struct {
	param    int // index into the combined θ ++ φ parameter list
	accepted bool
}

// stepper bundles the per-chain scratch space of the moves.
type stepper struct {
	s     *Sampler
	rng   *rand.Rand
	saved *snapshot
}

func (s *Sampler) newStepper(st *State, rng *rand.Rand) *stepper {
	return &stepper{
		s:     s,
		rng:   rng,
		saved: newSnapshot(st),
	}
}

// finish evaluates the proposal held in st against the saved state and keeps
// or rolls it back. extra is the log proposal correction.
func (sp *stepper) finish(st *State, extra float64) bool {
	sp.s.evaluate(st)
	lr, ok := logRatio(st.Terms, sp.saved.terms)
	if ok && !math.IsNaN(extra) && !math.IsInf(extra, -1) && accept(sp.rng.Float64(), lr+extra) {
		return true
	}
	sp.saved.restore(st)

	return false
}

// stepDate redraws one uniformly chosen date uniformly within its ordering
// window.
func (sp *stepper) stepDate(st *State) outcome {
	s := sp.s
	c := sp.rng.Intn(len(s.ctx))
	sp.saved.save(st)
	lo, hi := s.orderBounds(st, c)
	if lo > hi {
		return outcome{param: c}
	}
	st.Theta[c] = uniform(sp.rng, lo, hi)

	return outcome{param: c, accepted: sp.finish(st, 0)}
}

// stepBoundary picks one of the M+1 junctions uniformly, then one of its
// parameters, and redraws it uniformly within its limits. The limits of a
// parameter never depend on its own value, so the proposal is symmetric and
// only the span prior enters the ratio.
func (sp *stepper) stepBoundary(st *State) outcome {
	s := sp.s
	j := s.junctions[sp.rng.Intn(len(s.junctions))]
	k := j[sp.rng.Intn(len(j))]
	param := len(s.ctx) + k

	sp.saved.save(st)
	lo, hi := s.boundaryLimits(st, k)
	if lo > hi {
		return outcome{param: param}
	}
	before := s.spanPrior(s.outerSpan(st))
	st.Phi[k] = uniform(sp.rng, lo, hi)
	after := s.spanPrior(s.outerSpan(st))

	return outcome{param: param, accepted: sp.finish(st, after-before)}
}

// spanPrior returns log(span^(2−B) / (R − span)) for B boundary parameters,
// −Inf outside (0, R). B boundaries spread over a span s occupy a volume
// proportional to s^(B−2)·(R − s), so this weight leaves the span itself
// uniform on (0, R) and the joint density integrable as the chain contracts.
func (s *Sampler) spanPrior(span float64) float64 {
	if !(span > 0) || !(span < s.span) {
		return math.Inf(-1)
	}
	b := float64(len(s.bounds))

	return (2-b)*math.Log(span) - math.Log(s.span-span)
}

// stepShift translates every date and boundary by one U(−S, S) offset, S being
// the largest measurement error. Leaving the horizon rejects the move.
func (sp *stepper) stepShift(st *State) outcome {
	sp.saved.save(st)
	d := uniform(sp.rng, -sp.s.maxErr, sp.s.maxErr)
	for i := range st.Theta {
		st.Theta[i] += d
	}
	for i := range st.Phi {
		st.Phi[i] += d
	}
	if !sp.s.withinHorizon(st) {
		sp.saved.restore(st)

		return outcome{param: -1}
	}

	return outcome{param: -1, accepted: sp.finish(st, 0)}
}

// stepScale rescales every date and boundary about their common mean by ρ,
// with log ρ uniform on [−log c, log c]. Leaving the horizon rejects the move.
//
// The map keeps the mean and scales the K−1 directions orthogonal to it, K
// being the number of dates plus boundaries, so the ratio carries the volume
// factor ρ^(K−1) and the span prior at the post-scale span s' = ρ·s:
//
//	log α = Δ log posterior + (K−1)·log ρ + (2−B)·log ρ + log((R − s'/ρ)/(R − s'))
func (sp *stepper) stepScale(st *State) outcome {
	s := sp.s
	sp.saved.save(st)

	k := len(st.Theta) + len(st.Phi)
	var sum float64
	for _, v := range st.Theta {
		sum += v
	}
	for _, v := range st.Phi {
		sum += v
	}
	mean := sum / float64(k)

	logC := math.Log(s.opts.ScaleLimit)
	logRho := uniform(sp.rng, -logC, logC)
	rho := math.Exp(logRho)

	before := s.spanPrior(s.outerSpan(st))
	for i := range st.Theta {
		st.Theta[i] = mean + rho*(st.Theta[i]-mean)
	}
	for i := range st.Phi {
		st.Phi[i] = mean + rho*(st.Phi[i]-mean)
	}
	after := s.spanPrior(s.outerSpan(st))
	if !s.withinHorizon(st) || math.IsInf(after, -1) {
		sp.saved.restore(st)

		return outcome{param: -1}
	}
	extra := float64(k-1)*logRho + after - before

	return outcome{param: -1, accepted: sp.finish(st, extra)}
}

// step runs move m once.
func (sp *stepper) step(st *State, m move) outcome {
	switch m {
	case moveDate:
		return sp.stepDate(st)
	case moveBoundary:
		return sp.stepBoundary(st)
	case moveShift:
		return sp.stepShift(st)
	default:
		return sp.stepScale(st)
	}
}
