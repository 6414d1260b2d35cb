// SPDX-License-Identifier: MIT
// Package dfs: cycle detection.
//
// DetectCycles walks the graph with three-colour marking and records the
// cycle closed by every back-edge. Each cycle is rotated to start at its
// smallest vertex (in an undirected graph the reversed walk is considered
// too), so the same loop reached from different roots is reported once.
//
// Complexity:
//
//   - Time:   O(V + E + C·L) (C cycles of average length L)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/strata/core"
)

// cycleFinder holds the state of one DetectCycles run.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int
	path   []string            // current DFS stack
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// DetectCycles reports every cycle closed by a back-edge of a DFS over g.
// Each cycle is closed, [v0, v1, …, v0], and the list is sorted by signature.
// A nil graph has no cycles.
//
// Steps:
//  1. Start a DFS from every White vertex, in sorted order.
//  2. Push each vertex on the path while it is Gray.
//  3. A Gray neighbour closes the path segment from it to the current vertex.
//  4. Canonicalize the segment and keep it if its signature is new.
//  5. Sort the kept cycles.
//
// Errors: neighbour lookup failures, wrapped.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}
	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v, ""); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(f.cycles, func(i, j int) bool {
		return JoinSig(f.cycles[i]) < JoinSig(f.cycles[j])
	})

	return true, f.cycles, nil
}

func (f *cycleFinder) visit(id, parent string) error {
	f.state[id] = Gray
	f.path = append(f.path, id)

	next, err := f.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	for _, v := range next {
		// an undirected edge straight back to the parent is not a cycle
		if !f.graph.Directed() && v == parent {
			continue
		}
		switch f.state[v] {
		case White:
			if err = f.visit(v, id); err != nil {
				return err
			}
		case Gray:
			f.record(v)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record closes the path segment starting at start.
func (f *cycleFinder) record(start string) {
	seq := append([]string(nil), f.path[IndexOf(f.path, start):]...)
	sig, closed := canonical(seq, f.graph.Directed())
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}

// canonical rotates the open cycle base to its minimal rotation, also trying
// the reversed walk when the graph is undirected, and returns the signature
// and the closed cycle.
func canonical(base []string, directed bool) (string, []string) {
	pick := MinimalRotation(base)
	if !directed {
		if rev := MinimalRotation(Reverse(base)); Compare(rev, pick) < 0 {
			pick = rev
		}
	}
	closed := append(append([]string(nil), pick...), pick[0])

	return JoinSig(closed), closed
}
