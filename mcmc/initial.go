// SPDX-License-Identifier: MIT
// Package mcmc: initial-state sampler.

package mcmc

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/strata/model"
)

// initialState draws a starting point satisfying every ordering constraint.
//
// Implementation:
//   - Stage 1: walk groups oldest → youngest and their members in
//     stratigraphic order. Each date is drawn by inverse CDF from its
//     likelihood restricted to [max drawn enforced younger neighbour,
//     min(drawn enforced older neighbours, group ceiling)]; a window without
//     mass falls back to a uniform draw. The ceiling of a group is the
//     youngest lower-enforcing date of every earlier group that is followed,
//     possibly through a run of overlaps, by a gap or an abutting boundary:
//     an overlap ties β_{g+1} ≤ β_g, so the junction after it inherits the
//     bound of every group in the run. Intrusive contexts ignore the ceiling.
//   - Stage 2: seed every boundary with its smallest feasible value,
//     youngest first, using the limit table's lower sides.
//   - Stage 3: draw boundaries oldest first, uniformly within their limits.
//     A gap junction takes two independent draws from the common interval
//     and sorts them; an abutting junction is a single shared draw.
//
// Errors: ErrInconsistentModel when any window is empty.
func (s *Sampler) initialState(rng *rand.Rand) (*State, error) {
	st := s.newState()
	drawn := make([]bool, len(s.ctx))

	// Stage 1: dates.
	ceiling, pending := s.p, math.Inf(1)
	for gi := range s.groups {
		grp := &s.groups[gi]
		for _, c := range grp.members {
			ci := &s.ctx[c]
			lo, hi := s.a, s.p
			if ci.typ.EnforcesUpper() {
				hi = ceiling
			}
			for _, b := range ci.below {
				if drawn[b] {
					lo = math.Max(lo, st.Theta[b])
				}
			}
			for _, a := range ci.above {
				if drawn[a] {
					hi = math.Min(hi, st.Theta[a])
				}
			}
			if lo > hi {
				return nil, fmt.Errorf("context %q window [%.1f, %.1f]: %w", ci.id, lo, hi, ErrInconsistentModel)
			}
			theta, ok := ci.table.QuantileIn(lo, hi, rng.Float64())
			if !ok {
				theta = uniform(rng, lo, hi)
			}
			st.Theta[c] = theta
			drawn[c] = true
		}
		pending = math.Min(pending, s.lowerTheta(st, gi))
		if grp.next == model.Gap || grp.next == model.Abutting {
			ceiling = math.Min(ceiling, pending)
			pending = math.Inf(1)
		}
	}

	// Stage 2: smallest feasible boundaries.
	for k := len(s.bounds) - 1; k >= 0; k-- {
		lo, _ := s.boundaryLimits(st, k)
		st.Phi[k] = lo
	}

	// Stage 3: draws.
	for k := 0; k < len(s.bounds); k++ {
		lo, hi := s.boundaryLimits(st, k)
		if lo > hi {
			return nil, fmt.Errorf("boundary %s window [%.1f, %.1f]: %w", s.bounds[k].label, lo, hi, ErrInconsistentModel)
		}
		b := &s.bounds[k]
		if b.lowerOf >= 0 && b.lowerOf+1 < len(s.groups) && s.groups[b.lowerOf].next == model.Gap {
			// β_g and α_{g+1} share [lo(α_{g+1}), hi(β_g)]
			next := s.groups[b.lowerOf+1].alpha
			v1, v2 := uniform(rng, lo, hi), uniform(rng, lo, hi)
			st.Phi[k], st.Phi[next] = math.Max(v1, v2), math.Min(v1, v2)
			k = next

			continue
		}
		st.Phi[k] = uniform(rng, lo, hi)
	}

	s.evaluate(st)

	return st, nil
}
