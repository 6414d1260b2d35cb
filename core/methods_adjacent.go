// File: methods_adjacent.go
// Role: neighbourhood queries and adjacency bookkeeping.
//
// Adjacency policy:
//   - Directed graphs: Neighbors and NeighborIDs follow outgoing edges,
//     InNeighborIDs follows incoming ones.
//   - Undirected graphs: every incident edge counts in both directions.

package core

import "sort"

// Neighbors returns the edges leaving id (every incident edge when
// undirected), sorted by Edge.ID.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	seen := make(map[string]struct{})
	for _, set := range g.out[id] {
		for eid := range set {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge, sorted.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k log k) for k neighbours.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(g.out, id)
}

// InNeighborIDs returns the unique IDs with an edge into id, sorted. For an
// undirected graph this equals NeighborIDs.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k log k) for k neighbours.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(g.in, id)
}

func (g *Graph) adjacentIDs(index map[string]map[string]map[string]struct{}, id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(index[id]))
	for other, set := range index[id] {
		if len(set) > 0 {
			out = append(out, other)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ensureBucket makes index[id] non-nil. Caller holds muEdgeAdj.
func ensureBucket(index map[string]map[string]map[string]struct{}, id string) {
	if index[id] == nil {
		index[id] = make(map[string]map[string]struct{})
	}
}

// link records edge eid under index[a][b]. Caller holds muEdgeAdj.
func link(index map[string]map[string]map[string]struct{}, a, b, eid string) {
	ensureBucket(index, a)
	if index[a][b] == nil {
		index[a][b] = make(map[string]struct{})
	}
	index[a][b][eid] = struct{}{}
}
