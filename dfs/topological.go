// SPDX-License-Identifier: MIT
// Package dfs: topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for every
// directed edge u→v, u appears before v. Roots are tried in sorted order and
// neighbours are followed in sorted order, so equal graphs give equal orders.
//
// Complexity:
//
//   - Time:   O(V log V + E log E) (sorted neighbour lists)
//   - Memory: O(V)                 (recursion stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/strata/core"
)

// topoSorter encapsulates the state of one topological traversal.
type topoSorter struct {
	graph *core.Graph
	state map[string]int // White, Gray or Black
	order []string       // post-order
}

// TopologicalSort returns every vertex of g ordered along its edges.
//
// Steps:
//  1. Reject a nil graph (ErrGraphNil) and an undirected one (ErrUndirected).
//  2. Run a DFS from every White vertex, in sorted order.
//  3. A Gray neighbour is a back-edge: stop with ErrCycleDetected.
//  4. Reverse the post-order.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected, ErrNeighborFetch.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores id depth-first and appends it once every descendant is done.
func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("at %q: %w", id, ErrCycleDetected)
	case Black:
		return nil
	}
	t.state[id] = Gray

	next, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, v := range next {
		if err = t.visit(v); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
