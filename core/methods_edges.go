// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and queries.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID.
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates an edge from → to and returns its ID. Missing endpoints are
// registered on the fly.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure both endpoints via AddVertex.
//  3. Under muEdgeAdj, check the multi-edge policy.
//  4. Store the edge and link it in out[from][to] and in[to][from].
//  5. Undirected and not a loop ⇒ link the mirror orientation too.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	link(g.out, from, to, eid)
	link(g.in, to, from, eid)
	if !g.directed && from != to {
		link(g.out, to, from, eid)
		link(g.in, from, to, eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge leads from → to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// Edges returns every edge sorted by ID. Treat the returned edges as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
