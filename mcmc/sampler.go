// SPDX-License-Identifier: MIT
// Package mcmc: sampler construction.
//
// NewSampler flattens a model.Model into index-addressed slices: contexts,
// groups and boundary parameters all live in arrays and refer to each other by
// position. Nothing built here is mutated by a run, so one Sampler can serve
// several chains concurrently.

package mcmc

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/strata/calib"
	"github.com/katalvlaran/strata/model"
)

// ctxInfo is the static view of one context.
type ctxInfo struct {
	id    model.ContextID
	group int
	typ   model.ContextType
	table *calib.Table
	err   float64
	above []int // older neighbours whose relation is enforced
	below []int // younger neighbours whose relation is enforced
}

// groupInfo is the static view of one group.
type groupInfo struct {
	id         model.GroupID
	members    []int // oldest → youngest
	prev, next model.Relationship
	alpha      int // boundary index of the upper (older) boundary
	beta       int // boundary index of the lower (younger) boundary
}

// boundary is one entry of the boundary vector. A parameter shared by two
// abutting groups is the beta of one and the alpha of the next.
type boundary struct {
	label   string
	upperOf int // group whose alpha this is, or -1
	lowerOf int // group whose beta this is, or -1
}

// junction groups the parameters that meet between two consecutive groups
// (or at either end of the sequence).
type junction []int

// Sampler runs the squeeze sampler for one model over one horizon.
type Sampler struct {
	opts   Options
	log    *zap.Logger
	a, p   float64 // horizon, A < P
	span   float64 // P − A
	maxErr float64 // shift half-width

	ctx       []ctxInfo
	groups    []groupInfo
	bounds    []boundary
	junctions []junction
	limits    *limitTable
}

// NewSampler calibrates every context over the horizon [a, p) and builds the
// static parameter layout. The model is read, never modified; it should
// already satisfy model.Validate (see model.Prepare).
//
// Implementation:
//   - Stage 1: index the model, order contexts oldest → youngest.
//   - Stage 2: build one likelihood table per context.
//   - Stage 3: keep the stratigraphic relations whose ordering is enforced
//     given the context types.
//   - Stage 4: lay out the boundary vector, sharing one parameter between
//     abutting groups, and resolve each group's limit-table cells.
//
// Errors: ErrNilModel, model index errors, calib errors wrapped with the
// context id, ErrUnsupportedRelationship.
//
// Complexity: O(N·(P−A)·10 + E).
func NewSampler(m *model.Model, curve *calib.Curve, a, p int, opts ...Option) (*Sampler, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: index and order.
	ix, err := m.Index()
	if err != nil {
		return nil, err
	}
	if len(m.Contexts) == 0 || len(m.Groups) == 0 {
		return nil, model.ErrEmptyModel
	}
	g, err := m.Graph()
	if err != nil {
		return nil, err
	}
	order := m.Order
	if len(order) == 0 {
		ids, err := g.TopologicalOrder()
		if err != nil {
			return nil, err
		}
		order = make([]model.ContextID, len(ids))
		for i, id := range ids {
			order[i] = model.ContextID(id)
		}
	}
	rank := make([]int, len(m.Contexts))
	for i, id := range order {
		rank[ix.Context[id]] = i
	}

	s := &Sampler{
		opts: o,
		log:  o.Logger,
		a:    float64(a),
		p:    float64(p),
		span: float64(p - a),
		ctx:  make([]ctxInfo, len(m.Contexts)),
	}

	// Stage 2: likelihood tables.
	for i, c := range m.Contexts {
		t, err := calib.Likelihood(c.Date.Age, c.Date.Error, a, p, curve)
		if err != nil {
			return nil, fmt.Errorf("context %q: %w", c.ID, err)
		}
		s.ctx[i] = ctxInfo{
			id:    c.ID,
			group: ix.Group[c.Group],
			typ:   c.Type,
			table: t,
			err:   c.Date.Error,
		}
		s.maxErr = math.Max(s.maxErr, c.Date.Error)
	}

	// Stage 3: enforced relations. "x below y" binds iff x is not intrusive
	// and y is not residual.
	for i := range s.ctx {
		id := string(s.ctx[i].id)
		above, _ := g.Above(id)
		for _, aid := range above {
			j := ix.Context[model.ContextID(aid)]
			if s.ctx[i].typ.EnforcesUpper() && s.ctx[j].typ.EnforcesLower() {
				s.ctx[i].above = append(s.ctx[i].above, j)
				s.ctx[j].below = append(s.ctx[j].below, i)
			}
		}
	}

	// Stage 4: groups and boundaries.
	s.groups = make([]groupInfo, len(m.Groups))
	for gi, grp := range m.Groups {
		s.groups[gi] = groupInfo{id: grp.ID, prev: grp.Prev, next: grp.Next}
	}
	for i := range s.ctx {
		gi := s.ctx[i].group
		s.groups[gi].members = append(s.groups[gi].members, i)
	}
	for gi := range s.groups {
		mem := s.groups[gi].members
		sort.Slice(mem, func(x, y int) bool { return rank[mem[x]] < rank[mem[y]] })
	}
	s.layoutBoundaries()

	if s.limits, err = newLimitTable(s.groups); err != nil {
		return nil, err
	}

	return s, nil
}

// layoutBoundaries assigns boundary indices oldest → youngest (alpha before
// beta within a group) and records the junctions used by the boundary move.
func (s *Sampler) layoutBoundaries() {
	add := func(label string) int {
		s.bounds = append(s.bounds, boundary{label: label, upperOf: -1, lowerOf: -1})

		return len(s.bounds) - 1
	}
	last := len(s.groups) - 1
	for gi := range s.groups {
		grp := &s.groups[gi]
		if gi > 0 && grp.prev == model.Abutting {
			grp.alpha = s.groups[gi-1].beta
			b := &s.bounds[grp.alpha]
			b.label += "=alpha_" + string(grp.id)
		} else {
			grp.alpha = add("alpha_" + string(grp.id))
		}
		s.bounds[grp.alpha].upperOf = gi
		grp.beta = add("beta_" + string(grp.id))
		s.bounds[grp.beta].lowerOf = gi
	}

	s.junctions = append(s.junctions, junction{s.groups[0].alpha})
	for gi := 0; gi < last; gi++ {
		older, younger := s.groups[gi].beta, s.groups[gi+1].alpha
		if older == younger {
			s.junctions = append(s.junctions, junction{older})
			continue
		}
		s.junctions = append(s.junctions, junction{older, younger})
	}
	s.junctions = append(s.junctions, junction{s.groups[last].beta})
}

// Len returns the number of contexts.
func (s *Sampler) Len() int { return len(s.ctx) }

// Boundaries returns the number of distinct boundary parameters.
func (s *Sampler) Boundaries() int { return len(s.bounds) }

// Table returns the likelihood table of context i (model order).
func (s *Sampler) Table(i int) *calib.Table { return s.ctx[i].table }
