// Package dfs provides the depth-first traversals strat relies on:
// topological sorting and cycle detection over a directed core.Graph.
package dfs

import "errors"

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirected is returned when TopologicalSort receives an undirected graph.
	ErrUndirected = errors.New("dfs: TopologicalSort requires directed graph")

	// ErrCycleDetected indicates a back-edge was met during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbours from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
