// Package strat models the stratigraphic relations between excavation
// contexts as a directed acyclic graph and derives the orderings the sampler
// needs.
//
// What:
//
//   - Graph: contexts plus "a is below b" relations, expressed on the Cal BP
//     date axis (Above = older neighbour, Below = younger neighbour).
//   - TopologicalOrder: oldest → youngest linear order in which every context
//     follows all of its Above neighbours; ErrCycleDetected when the relations
//     are contradictory.
//   - FindCycle: reports one offending cycle for diagnostics.
//   - FromDeposition: converts physical excavation records ("X lies on top of
//     Y", so X was deposited later and is younger) into axis relations.
//
// Convention:
//
//	Excavators speak of layers physically above or below each other; the
//	sampler speaks of dates bounding each other from above or below. The two
//	run in opposite directions on the Cal BP axis, so this package keeps them
//	apart: Graph always stores the date-axis view and FromDeposition is the
//	only place the physical view is translated.
//
// Storage:
//
//	Graph wraps a directed core.Graph with one edge per relation, pointing
//	from the older context to the younger one. Ordering and cycle reports
//	come from dfs.TopologicalSort and dfs.DetectCycles over that graph.
//
// Complexity:
//
//   - AddRelation: O(1)
//   - TopologicalOrder / FindCycle: O(V log V + E log E) (sorted iteration)
package strat
