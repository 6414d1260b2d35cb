// Package mcmc: chain state and the ordering model.

package mcmc

import "math"

// State is the mutable part of one chain. It is owned by a single goroutine
// and passed by reference to every step.
type State struct {
	Theta []float64 // context dates, model order
	Phi   []float64 // boundary vector, see Sampler.bounds
	Terms []float64 // per-context posterior contribution at the current state
}

func (s *Sampler) newState() *State {
	return &State{
		Theta: make([]float64, len(s.ctx)),
		Phi:   make([]float64, len(s.bounds)),
		Terms: make([]float64, len(s.ctx)),
	}
}

// snapshot holds the saved vectors a rejected move is rolled back to.
type snapshot struct {
	theta, phi, terms []float64
}

func newSnapshot(st *State) *snapshot {
	return &snapshot{
		theta: make([]float64, len(st.Theta)),
		phi:   make([]float64, len(st.Phi)),
		terms: make([]float64, len(st.Terms)),
	}
}

func (sn *snapshot) save(st *State) {
	copy(sn.theta, st.Theta)
	copy(sn.phi, st.Phi)
	copy(sn.terms, st.Terms)
}

// restore copies the saved vectors back, so a rejected move leaves the state
// bit-identical.
func (sn *snapshot) restore(st *State) {
	copy(st.Theta, sn.theta)
	copy(st.Phi, sn.phi)
	copy(st.Terms, sn.terms)
}

// orderBounds returns the closed interval context c may occupy given the
// current state: its group window narrowed by every enforced neighbour.
// Residual contexts ignore lower bounds and intrusive ones ignore upper bounds.
func (s *Sampler) orderBounds(st *State, c int) (lo, hi float64) {
	ci := &s.ctx[c]
	lo, hi = s.groupWindow(st, c)
	for _, b := range ci.below {
		lo = math.Max(lo, st.Theta[b])
	}
	for _, a := range ci.above {
		hi = math.Min(hi, st.Theta[a])
	}

	return lo, hi
}

// groupWindow returns the type-aware group interval of context c.
func (s *Sampler) groupWindow(st *State, c int) (lo, hi float64) {
	ci := &s.ctx[c]
	grp := &s.groups[ci.group]
	lo, hi = s.a, s.p
	if ci.typ.EnforcesLower() {
		lo = st.Phi[grp.beta]
	}
	if ci.typ.EnforcesUpper() {
		hi = st.Phi[grp.alpha]
	}

	return lo, hi
}

// upperTheta returns the oldest date among the group's members that must lie
// below alpha, or −Inf when none does.
func (s *Sampler) upperTheta(st *State, g int) float64 {
	v := math.Inf(-1)
	for _, c := range s.groups[g].members {
		if s.ctx[c].typ.EnforcesUpper() {
			v = math.Max(v, st.Theta[c])
		}
	}

	return v
}

// lowerTheta returns the youngest date among the group's members that must
// lie above beta, or +Inf when none does.
func (s *Sampler) lowerTheta(st *State, g int) float64 {
	v := math.Inf(1)
	for _, c := range s.groups[g].members {
		if s.ctx[c].typ.EnforcesLower() {
			v = math.Min(v, st.Theta[c])
		}
	}

	return v
}

// outerSpan returns the distance between the oldest and youngest boundary.
func (s *Sampler) outerSpan(st *State) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range st.Phi {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return hi - lo
}

// withinHorizon reports whether every date and boundary lies in [A, P].
func (s *Sampler) withinHorizon(st *State) bool {
	for _, v := range st.Theta {
		if v < s.a || v > s.p {
			return false
		}
	}
	for _, v := range st.Phi {
		if v < s.a || v > s.p {
			return false
		}
	}

	return true
}
