// Package bfs provides breadth-first spanning-tree traversal over a
// graph.Graph capability, returning visit order and parent links for
// path reconstruction.
//
// What
//
//   - Explore every vertex reachable from a source, visiting each
//     exactly once in non-decreasing distance (edge count).
//   - Returns a Result containing:
//   - Order:  vertices in visit sequence
//   - Parent: map from vertex → its predecessor in the spanning tree
//     (the source has no entry; that absence is the root sentinel)
//   - Result.PathTo(v) walks Parent links backward to rebuild the
//     source→v path; PathTo(source) is the one-vertex path [source].
//   - Optional hooks: OnVisit (may abort with an error) and
//     FilterNeighbor (skip individual edges).
//
// Why
//
//   - Compute unweighted shortest paths and reachable sets in O(V + E).
//   - The parent-pointer spanning tree reconstructs any root-to-vertex
//     path without storing whole paths per vertex.
//
// Mechanics
//
//	The frontier is a FIFO queue of pending edges, seeded with one
//	sentinel edge into the source. Each iteration pops an edge; an
//	already-visited destination is discarded, otherwise the destination
//	is visited, its parent recorded, and a pending edge pushed for every
//	unvisited successor. The FIFO discipline is the only difference from
//	the dfs package.
//
// Determinism
//
//	Visit order follows the successor order reported by the graph; over
//	a graph with deterministic successor order (such as
//	graph.AdjacencyGraph) the traversal is fully reproducible.
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
package bfs
