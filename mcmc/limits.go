// SPDX-License-Identifier: MIT
// Package mcmc: boundary-limit table.
//
// A boundary's admissible interval depends on its role (upper α or lower β of
// its group) and on the relationships the group has with its neighbours.
// The table is keyed by (role, prev, next) and holds one closed-form
// function per valid combination. Sides that are decided by the other group
// of an abutting pair return ±Inf; a shared parameter intersects both cells.
//
// Upper role (α_g):
//
//	lo = max(oldest upper-enforcing θ in g, β_g, α_{g+1} if next is overlap)
//	hi = P (start) | β_{g−1} (gap) | α_{g−1} (overlap) | +Inf (abutting)
//
// Lower role (β_g):
//
//	hi = min(youngest lower-enforcing θ in g, α_g, β_{g−1} if prev is overlap)
//	lo = A (end) | α_{g+1} (gap) | β_{g+1} (overlap) | −Inf (abutting)

package mcmc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strata/model"
)

type role int

const (
	upperRole role = iota
	lowerRole
	numRoles
)

func (r role) String() string {
	if r == upperRole {
		return "upper"
	}

	return "lower"
}

// limitFunc returns the (lo, hi) limits of group g's boundary in one role.
type limitFunc func(s *Sampler, st *State, g int) (lo, hi float64)

type limitTable [numRoles][model.NumRelationships][model.NumRelationships]limitFunc

// validCell reports whether a group with relationships (prev, next) exists.
func validCell(prev, next model.Relationship) bool {
	return prev != model.End && next != model.Start
}

// newLimitTable fills every valid cell and checks that each group resolves
// to a cell in both roles.
func newLimitTable(groups []groupInfo) (*limitTable, error) {
	var t limitTable
	for prev := model.Relationship(0); int(prev) < model.NumRelationships; prev++ {
		for next := model.Relationship(0); int(next) < model.NumRelationships; next++ {
			if !validCell(prev, next) {
				continue
			}
			t[upperRole][prev][next] = upperCell(prev, next)
			t[lowerRole][prev][next] = lowerCell(prev, next)
		}
	}

	last := len(groups) - 1
	for i, g := range groups {
		if int(g.prev) < 0 || int(g.prev) >= model.NumRelationships ||
			int(g.next) < 0 || int(g.next) >= model.NumRelationships {
			return nil, fmt.Errorf("group %q (%d, %d): %w", g.id, g.prev, g.next, ErrUnsupportedRelationship)
		}
		// cells index their neighbours, so start and end must sit at the ends
		if (i == 0) != (g.prev == model.Start) || (i == last) != (g.next == model.End) ||
			(i < last && g.next != groups[i+1].prev) {
			return nil, fmt.Errorf("group %q (%s, %s) at position %d: %w", g.id, g.prev, g.next, i, ErrUnsupportedRelationship)
		}
		for r := upperRole; r < numRoles; r++ {
			if t[r][g.prev][g.next] == nil {
				return nil, fmt.Errorf("group %q %s boundary (%s, %s): %w", g.id, r, g.prev, g.next, ErrUnsupportedRelationship)
			}
		}
	}

	return &t, nil
}

func upperCell(prev, next model.Relationship) limitFunc {
	return func(s *Sampler, st *State, g int) (float64, float64) {
		grp := &s.groups[g]
		lo := math.Max(s.upperTheta(st, g), st.Phi[grp.beta])
		if next == model.Overlap {
			lo = math.Max(lo, st.Phi[s.groups[g+1].alpha])
		}

		var hi float64
		switch prev {
		case model.Start:
			hi = s.p
		case model.Gap:
			hi = st.Phi[s.groups[g-1].beta]
		case model.Overlap:
			hi = st.Phi[s.groups[g-1].alpha]
		default: // abutting: the older group's lower cell decides
			hi = math.Inf(1)
		}

		return lo, hi
	}
}

func lowerCell(prev, next model.Relationship) limitFunc {
	return func(s *Sampler, st *State, g int) (float64, float64) {
		grp := &s.groups[g]
		hi := math.Min(s.lowerTheta(st, g), st.Phi[grp.alpha])
		if prev == model.Overlap {
			hi = math.Min(hi, st.Phi[s.groups[g-1].beta])
		}

		var lo float64
		switch next {
		case model.End:
			lo = s.a
		case model.Gap:
			lo = st.Phi[s.groups[g+1].alpha]
		case model.Overlap:
			lo = st.Phi[s.groups[g+1].beta]
		default: // abutting
			lo = math.Inf(-1)
		}

		return lo, hi
	}
}

// boundaryLimits resolves the admissible interval of boundary parameter k,
// intersecting the cells of every group it bounds and clamping to [A, P].
// An empty interval is reported as lo > hi.
func (s *Sampler) boundaryLimits(st *State, k int) (lo, hi float64) {
	lo, hi = s.a, s.p
	b := &s.bounds[k]
	if g := b.lowerOf; g >= 0 {
		l, h := s.limits[lowerRole][s.groups[g].prev][s.groups[g].next](s, st, g)
		lo, hi = math.Max(lo, l), math.Min(hi, h)
	}
	if g := b.upperOf; g >= 0 {
		l, h := s.limits[upperRole][s.groups[g].prev][s.groups[g].next](s, st, g)
		lo, hi = math.Max(lo, l), math.Min(hi, h)
	}

	return lo, hi
}
