// Package dijkstra implements single-source shortest paths over a
// graph.WeightedGraph capability, using a lazy-deletion priority queue
// of path extensions.
//
// What
//
//   - Dijkstra(g, source): map from each reachable vertex to its
//     minimum path cost from source.
//   - DijkstraPaths(g, source): the same costs, each paired with the
//     full source-first vertex sequence of one cheapest path.
//
// Why
//
//   - A vertex's cost is proven minimal the moment it is finalized:
//     with non-negative weights, no path through a not-yet-finalized
//     vertex can ever undercut it. Processing extensions in ascending
//     cost order therefore finalizes every reachable vertex exactly
//     once, at its true shortest-path cost.
//
// Mechanics
//
//	The queue holds extensions — candidate moves from a finalized vertex
//	to one of its successors, keyed by total cost from the source. It is
//	seeded with one extension per direct successor of the source. Each
//	round pops the cheapest extension; if its destination is already
//	finalized the entry is stale and is discarded (lazy deletion — stale
//	entries are never updated or removed early, so the queue may hold up
//	to O(E) superseded entries). Otherwise the destination is finalized
//	and one extension is pushed per successor not yet finalized. The run
//	ends when the queue drains or no unfinalized vertex remains;
//	unreachable vertices are simply absent from the result.
//
// Precondition
//
//	All edge weights must be non-negative. This is not checked; negative
//	weights silently produce wrong costs.
//
// Determinism
//
//	Extensions with equal total cost pop in enqueue order (each carries
//	a per-run sequence number), so over a graph with deterministic
//	successor order the finalization order and the reported paths are
//	reproducible.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O((V + E) log E) with the mergeable-heap queue
//   - Memory: O(E) queue worst case; DijkstraPaths additionally carries
//     an O(V) path per extension, O(V·E) worst case, acceptable at the
//     scale this package targets — a reimplementation chasing large
//     graphs should store parent pointers and reconstruct lazily as the
//     bfs package does.
//
// Errors
//
//   - ErrGraphNil if the graph capability is nil.
//   - Unknown-vertex errors from the graph collaborator propagate
//     unchanged.
package dijkstra
