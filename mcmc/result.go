// Package mcmc: chain output.

package mcmc

import (
	"github.com/katalvlaran/strata/hpd"
	"github.com/katalvlaran/strata/model"
)

// Trace is the recorded history of one parameter.
type Trace struct {
	Label string

	// Accepted holds the value after each iteration (one entry per iteration).
	Accepted []float64

	// Moves holds the value after each of the four moves of every iteration,
	// accepted or carried forward. Empty when WithoutMoveHistory is set.
	Moves []float64

	// Proposed and Kept count the single-parameter proposals that targeted
	// this parameter and how many were accepted.
	Proposed, Kept int
}

// Rate returns Kept/Proposed, or 0 when the parameter was never proposed.
func (t *Trace) Rate() float64 {
	if t.Proposed == 0 {
		return 0
	}

	return float64(t.Kept) / float64(t.Proposed)
}

// GroupTrace points at the two boundary traces of a group. Abutting groups
// share one Trace, so their β and the next group's α are the same slice.
type GroupTrace struct {
	ID          model.GroupID
	Alpha, Beta *Trace
}

// Result is the outcome of a converged run.
type Result struct {
	Contexts   []Trace // model order
	Boundaries []Trace // boundary vector order, oldest first
	Groups     []GroupTrace
	Iterations int
	Restarts   int   // restarts performed before this chain converged
	Seed       int64 // stream seed of the converged attempt

	// id → index, filled by the sampler; nil for hand-built results
	contextAt map[model.ContextID]int
	groupAt   map[model.GroupID]int
}

// Context returns the trace of context id.
func (r *Result) Context(id model.ContextID) (*Trace, bool) {
	if r.contextAt != nil {
		i, ok := r.contextAt[id]
		if !ok {
			return nil, false
		}

		return &r.Contexts[i], true
	}
	for i := range r.Contexts {
		if r.Contexts[i].Label == string(id) {
			return &r.Contexts[i], true
		}
	}

	return nil, false
}

// Group returns the boundary traces of group id.
func (r *Result) Group(id model.GroupID) (GroupTrace, bool) {
	if r.groupAt != nil {
		i, ok := r.groupAt[id]
		if !ok {
			return GroupTrace{}, false
		}

		return r.Groups[i], true
	}
	for _, g := range r.Groups {
		if g.ID == id {
			return g, true
		}
	}

	return GroupTrace{}, false
}

// Params returns every trace, dates first, then boundaries.
func (r *Result) Params() []*Trace {
	out := make([]*Trace, 0, len(r.Contexts)+len(r.Boundaries))
	for i := range r.Contexts {
		out = append(out, &r.Contexts[i])
	}
	for i := range r.Boundaries {
		out = append(out, &r.Boundaries[i])
	}

	return out
}

// PhaseLength returns α − β of group id over the per-move histories, or over
// the accepted histories when moves were not recorded.
func (r *Result) PhaseLength(id model.GroupID) ([]float64, bool) {
	g, ok := r.Group(id)
	if !ok {
		return nil, false
	}
	a, b := g.Alpha.Moves, g.Beta.Moves
	if len(a) == 0 {
		a, b = g.Alpha.Accepted, g.Beta.Accepted
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, true
}

// HPD summarizes the accepted histories after discarding burnIn iterations:
// one row per context, then an α and a β row per group.
//
// Errors: hpd.ErrTooFewSamples when burnIn leaves nothing, other hpd errors.
func (r *Result) HPD(burnIn int, level float64, opts ...hpd.Option) ([]hpd.Row, error) {
	labels := make([]string, 0, len(r.Contexts)+2*len(r.Groups))
	series := make([][]float64, 0, cap(labels))
	for i := range r.Contexts {
		labels = append(labels, r.Contexts[i].Label)
		series = append(series, r.Contexts[i].Accepted)
	}
	for _, g := range r.Groups {
		labels = append(labels, "alpha_"+string(g.ID), "beta_"+string(g.ID))
		series = append(series, g.Alpha.Accepted, g.Beta.Accepted)
	}

	return hpd.Table(labels, series, burnIn, level, opts...)
}
