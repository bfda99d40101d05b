// Package dfs provides depth-first spanning-tree traversal over a
// graph.Graph capability, returning visit order and parent links for
// path reconstruction.
//
// What
//
//   - Explore every vertex reachable from a source, visiting each
//     exactly once, following each branch as deep as possible before
//     backtracking.
//   - Returns a Result with Order (visit sequence) and Parent (the
//     spanning tree; the source has no entry, that absence is the root
//     sentinel), plus Result.PathTo(v) for source→v reconstruction.
//   - Optional hooks: OnVisit (may abort with an error) and
//     FilterNeighbor (skip individual edges).
//
// Mechanics
//
//	The frontier is a LIFO stack of pending edges, seeded with one
//	sentinel edge into the source. Each iteration pops an edge; an
//	already-visited destination is discarded, otherwise the destination
//	is visited, its parent recorded, and a pending edge pushed for every
//	unvisited successor. The LIFO discipline is the only difference from
//	the bfs package: the most recently discovered edge is crossed first,
//	so among a vertex's successors the last reported one is entered
//	first.
//
// Complexity (V = |vertices|, E = |edges| reachable from the source)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) frontier worst case, O(V) result
//
// Errors
//
//   - ErrGraphNil if the graph capability is nil.
//   - ErrUnreachableVertex from PathTo on a vertex the run never reached.
//   - graph.ErrVertexNotFound (wrapped, errors.Is-compatible) if the
//     graph reports an unknown vertex — including an unknown source.
//   - Wrapped user-supplied OnVisit errors.
package dfs
