// Package graph defines the graph capabilities consumed by the traversal
// and shortest-path packages, plus map-backed reference implementations.
//
// What
//
//   - Graph[V]: the minimal traversal capability — Successors(v) lists
//     the vertices directly reachable from v.
//   - WeightedGraph[V]: successors paired with int64 edge weights, plus
//     the full vertex set.
//   - AdjacencyGraph / WeightedAdjacencyGraph: simple adjacency-map
//     implementations of those capabilities, suitable for tests,
//     examples, and small in-memory graphs.
//
// Why
//
//   - The algorithms in bfs, dfs, and dijkstra only ever ask a graph one
//     question ("who follows v?"); keeping the capability this small lets
//     any vertex store answer it without adapting to a concrete type.
//
// Determinism
//
//	The reference implementations report successors and vertices in
//	insertion order, never map-iteration order, so every traversal over
//	them is reproducible.
//
// Errors
//
//   - ErrVertexNotFound when Successors is asked about a vertex the
//     graph does not contain. Algorithm packages propagate it so that
//     errors.Is(err, graph.ErrVertexNotFound) holds for their callers.
//
// Graphs are treated as read-only while an algorithm runs; mutating one
// concurrently is not supported.
package graph
