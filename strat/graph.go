// SPDX-License-Identifier: MIT
// Package strat: graph storage and relation queries.

package strat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strata/core"
)

var (
	// ErrEmptyID indicates a context id is the empty string.
	ErrEmptyID = errors.New("strat: context id is empty")

	// ErrSelfRelation indicates a context was related to itself.
	ErrSelfRelation = errors.New("strat: context cannot bound itself")

	// ErrUnknownContext indicates a query referenced a context not in the graph.
	ErrUnknownContext = errors.New("strat: unknown context")

	// ErrCycleDetected indicates the relations contain a cycle, so no date
	// assignment can satisfy them.
	ErrCycleDetected = errors.New("strat: cycle detected")
)

// Graph stores contexts and their date-axis relations as a directed
// core.Graph whose edges run older → younger: the in-neighbours of a context
// are its older (Above) neighbours, the out-neighbours its younger (Below) ones.
// Graph is safe for concurrent use.
type Graph struct {
	g *core.Graph
}

// Deposition is one physical excavation record: Upper lies directly on top
// of Lower, so Upper was deposited after Lower.
type Deposition struct {
	Upper string
	Lower string
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{g: core.NewGraph(core.WithDirected(true))}
}

// FromDeposition builds a Graph from physical records. The physically upper
// context is the younger one, so it bounds the lower context from below on
// the date axis.
func FromDeposition(records []Deposition) (*Graph, error) {
	g := New()
	for _, r := range records {
		if err := g.AddRelation(r.Upper, r.Lower); err != nil {
			return nil, fmt.Errorf("deposition %q on %q: %w", r.Upper, r.Lower, err)
		}
	}

	return g, nil
}

// AddContext registers id with no relations. Adding an existing id is a no-op.
// Complexity: O(1).
func (g *Graph) AddContext(id string) error {
	if err := g.g.AddVertex(id); err != nil {
		return ErrEmptyID
	}

	return nil
}

// AddRelation records that below is bounded from above by above, i.e.
// date(below) <= date(above).
//
// Implementation:
//   - Stage 1: Reject empty ids (ErrEmptyID) and a context bounding itself
//     (ErrSelfRelation).
//   - Stage 2: Add the edge above → below; missing contexts are registered
//     on the fly.
//   - Stage 3: A repeated relation hits the multi-edge policy of the
//     underlying graph and is stored once.
//
// Complexity: O(1).
func (g *Graph) AddRelation(below, above string) error {
	if below == "" || above == "" {
		return ErrEmptyID
	}
	if below == above {
		return fmt.Errorf("%q: %w", below, ErrSelfRelation)
	}
	if _, err := g.g.AddEdge(above, below); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return err
	}

	return nil
}

// HasContext reports whether id is registered.
func (g *Graph) HasContext(id string) bool { return g.g.HasVertex(id) }

// Len returns the number of contexts.
func (g *Graph) Len() int { return g.g.VertexCount() }

// Contexts returns every context id, sorted.
func (g *Graph) Contexts() []string { return g.g.Vertices() }

// Above returns the sorted older neighbours of id.
func (g *Graph) Above(id string) ([]string, error) {
	ids, err := g.g.InNeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownContext)
	}

	return ids, nil
}

// Below returns the sorted younger neighbours of id.
func (g *Graph) Below(id string) ([]string, error) {
	ids, err := g.g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownContext)
	}

	return ids, nil
}
