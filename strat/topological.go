// SPDX-License-Identifier: MIT
// Package strat: oldest-first topological ordering and cycle reporting.
//
// Both queries run the dfs package over the underlying graph, whose edges
// point from older to younger contexts.

package strat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strata/dfs"
)

// TopologicalOrder returns every context ordered oldest → youngest, so each
// context follows all of its Above neighbours.
//
// Steps:
//  1. Sort the graph topologically along its older → younger edges; roots
//     and neighbours are taken in id order, so the result is deterministic.
//  2. On a back-edge, look up one offending cycle and report it.
//
// Errors:
//   - ErrCycleDetected (wrapped with the offending cycle) if the relations
//     cannot all hold at once.
//
// Complexity: Time O(V log V + E log E), Memory O(V).
func (g *Graph) TopologicalOrder() ([]string, error) {
	order, err := dfs.TopologicalSort(g.g)
	if errors.Is(err, dfs.ErrCycleDetected) {
		cycle, _ := g.FindCycle()

		return nil, fmt.Errorf("%v: %w", cycle, ErrCycleDetected)
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// FindCycle returns one cycle (each context once, starting at its smallest
// id and following older → younger) and true, or nil and false for an
// acyclic graph.
func (g *Graph) FindCycle() ([]string, bool) {
	found, cycles, err := dfs.DetectCycles(g.g)
	if err != nil || !found {
		return nil, false
	}
	c := cycles[0]

	return c[:len(c)-1], true
}
