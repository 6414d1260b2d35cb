// SPDX-License-Identifier: MIT
// Package model: indexing, normalization and validation.

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strata/strat"
)

// Index maps typed ids to their positions in Model.Contexts and Model.Groups.
type Index struct {
	Context map[ContextID]int
	Group   map[GroupID]int
}

// Index builds the id → position maps.
//
// Errors:
//   - ErrDuplicateID if two contexts or two groups share an id.
//   - ErrUnknownGroup if a context names an undeclared group.
//   - ErrUnknownContext if a relation, a group member or Order references an
//     undeclared context.
//
// Complexity: O(V + E).
func (m *Model) Index() (*Index, error) {
	ix := &Index{
		Context: make(map[ContextID]int, len(m.Contexts)),
		Group:   make(map[GroupID]int, len(m.Groups)),
	}
	for i, g := range m.Groups {
		if _, dup := ix.Group[g.ID]; dup {
			return nil, fmt.Errorf("group %q: %w", g.ID, ErrDuplicateID)
		}
		ix.Group[g.ID] = i
	}
	for i, c := range m.Contexts {
		if _, dup := ix.Context[c.ID]; dup {
			return nil, fmt.Errorf("context %q: %w", c.ID, ErrDuplicateID)
		}
		ix.Context[c.ID] = i
	}
	for _, c := range m.Contexts {
		if _, ok := ix.Group[c.Group]; !ok {
			return nil, fmt.Errorf("context %q group %q: %w", c.ID, c.Group, ErrUnknownGroup)
		}
		for _, ref := range append(append([]ContextID(nil), c.Above...), c.Below...) {
			if _, ok := ix.Context[ref]; !ok {
				return nil, fmt.Errorf("context %q relation %q: %w", c.ID, ref, ErrUnknownContext)
			}
		}
	}
	for _, g := range m.Groups {
		for _, id := range g.Members {
			if _, ok := ix.Context[id]; !ok {
				return nil, fmt.Errorf("group %q member %q: %w", g.ID, id, ErrUnknownContext)
			}
		}
	}
	for _, id := range m.Order {
		if _, ok := ix.Context[id]; !ok {
			return nil, fmt.Errorf("order entry %q: %w", id, ErrUnknownContext)
		}
	}

	return ix, nil
}

// Graph returns the stratigraphic graph implied by every Above and Below list.
func (m *Model) Graph() (*strat.Graph, error) {
	g := strat.New()
	for _, c := range m.Contexts {
		if err := g.AddContext(string(c.ID)); err != nil {
			return nil, err
		}
		for _, a := range c.Above {
			if err := g.AddRelation(string(c.ID), string(a)); err != nil {
				return nil, err
			}
		}
		for _, b := range c.Below {
			if err := g.AddRelation(string(b), string(c.ID)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Prepare normalizes a model assembled by a collaborator:
//   - Above/Below lists are made symmetric and sorted.
//   - Order is computed oldest → youngest when empty.
//   - Group members are rebuilt from the contexts' Group fields, in Order.
//
// It then runs Validate.
func (m *Model) Prepare() error {
	ix, err := m.Index()
	if err != nil {
		return err
	}
	g, err := m.Graph()
	if err != nil {
		return err
	}
	for i := range m.Contexts {
		id := string(m.Contexts[i].ID)
		above, _ := g.Above(id)
		below, _ := g.Below(id)
		m.Contexts[i].Above = toIDs(above)
		m.Contexts[i].Below = toIDs(below)
	}
	if len(m.Order) == 0 {
		order, err := g.TopologicalOrder()
		if err != nil {
			return err
		}
		m.Order = toIDs(order)
	}

	members := make(map[GroupID][]ContextID, len(m.Groups))
	for _, id := range m.Order {
		gid := m.Contexts[ix.Context[id]].Group
		members[gid] = append(members[gid], id)
	}
	for gi := range m.Groups {
		m.Groups[gi].Members = members[m.Groups[gi].ID]
	}

	return m.Validate()
}

// Validate checks the consistency conditions the sampler relies on but does
// not verify itself.
//
// Errors: ErrEmptyModel, ErrDuplicateID, ErrUnknownGroup, ErrUnknownContext,
// ErrBadDetermination, ErrEmptyGroup, ErrRelationshipMismatch,
// ErrAsymmetricRelation, ErrOrderMismatch, strat.ErrCycleDetected.
func (m *Model) Validate() error {
	if len(m.Contexts) == 0 || len(m.Groups) == 0 {
		return ErrEmptyModel
	}
	ix, err := m.Index()
	if err != nil {
		return err
	}

	for _, c := range m.Contexts {
		d := c.Date
		if math.IsNaN(d.Age) || math.IsInf(d.Age, 0) || !(d.Error > 0) || math.IsInf(d.Error, 0) {
			return fmt.Errorf("context %q: %w", c.ID, ErrBadDetermination)
		}
		for _, a := range c.Above {
			if !contains(m.Contexts[ix.Context[a]].Below, c.ID) {
				return fmt.Errorf("%q above %q: %w", a, c.ID, ErrAsymmetricRelation)
			}
		}
		for _, b := range c.Below {
			if !contains(m.Contexts[ix.Context[b]].Above, c.ID) {
				return fmt.Errorf("%q below %q: %w", b, c.ID, ErrAsymmetricRelation)
			}
		}
	}

	if err := m.validateRelationships(); err != nil {
		return err
	}

	seen := make(map[ContextID]bool, len(m.Contexts))
	for _, g := range m.Groups {
		if len(g.Members) == 0 {
			return fmt.Errorf("group %q: %w", g.ID, ErrEmptyGroup)
		}
		for _, id := range g.Members {
			if m.Contexts[ix.Context[id]].Group != g.ID || seen[id] {
				return fmt.Errorf("group %q member %q: %w", g.ID, id, ErrUnknownContext)
			}
			seen[id] = true
		}
	}
	if len(seen) != len(m.Contexts) {
		return fmt.Errorf("%d contexts not listed as group members: %w", len(m.Contexts)-len(seen), ErrUnknownContext)
	}

	g, err := m.Graph()
	if err != nil {
		return err
	}
	if cycle, ok := g.FindCycle(); ok {
		return fmt.Errorf("%v: %w", cycle, strat.ErrCycleDetected)
	}

	return m.validateOrder()
}

func (m *Model) validateRelationships() error {
	last := len(m.Groups) - 1
	for i, g := range m.Groups {
		if (i == 0) != (g.Prev == Start) {
			return fmt.Errorf("group %q prev %s: %w", g.ID, g.Prev, ErrRelationshipMismatch)
		}
		if (i == last) != (g.Next == End) {
			return fmt.Errorf("group %q next %s: %w", g.ID, g.Next, ErrRelationshipMismatch)
		}
		if g.Prev == End || g.Next == Start {
			return fmt.Errorf("group %q: %w", g.ID, ErrRelationshipMismatch)
		}
		if i < last && g.Next != m.Groups[i+1].Prev {
			return fmt.Errorf("groups %q/%q disagree (%s vs %s): %w",
				g.ID, m.Groups[i+1].ID, g.Next, m.Groups[i+1].Prev, ErrRelationshipMismatch)
		}
	}

	return nil
}

func (m *Model) validateOrder() error {
	if len(m.Order) != len(m.Contexts) {
		return fmt.Errorf("order has %d entries for %d contexts: %w", len(m.Order), len(m.Contexts), ErrOrderMismatch)
	}
	rank := make(map[ContextID]int, len(m.Order))
	for i, id := range m.Order {
		if _, dup := rank[id]; dup {
			return fmt.Errorf("order repeats %q: %w", id, ErrOrderMismatch)
		}
		rank[id] = i
	}
	for _, c := range m.Contexts {
		for _, a := range c.Above {
			if rank[a] > rank[c.ID] {
				return fmt.Errorf("%q ordered before older %q: %w", c.ID, a, ErrOrderMismatch)
			}
		}
	}

	return nil
}

func contains(ids []ContextID, id ContextID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}

func toIDs(ss []string) []ContextID {
	out := make([]ContextID, len(ss))
	for i, s := range ss {
		out[i] = ContextID(s)
	}

	return out
}
