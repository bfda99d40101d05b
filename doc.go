// Package lvlmerge is a small, self-contained library of mergeable
// priority structures and the graph algorithms built on them.
//
// 🚀 What is lvlmerge?
//
//	A single-threaded, zero-dependency library that brings together:
//		• Maxiphobic heap: a binary-tree mergeable heap with O(log n)
//		  insert / delete-minimum and O(n) bulk construction
//		• Priority queue: a thin enqueue/first/dequeue adapter over the heap,
//		  tolerant of duplicate and stale entries
//		• Traversals: breadth- and depth-first spanning-tree walks with
//		  parent-pointer path reconstruction
//		• Shortest paths: lazy-deletion Dijkstra over non-negative weights,
//		  cost-only and path-carrying variants
//
// ✨ Why choose lvlmerge?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps
//   - Caller-supplied ordering – any total order, any element type
//   - Capability-based graphs – bring your own graph behind two small
//     interfaces, or use the bundled adjacency implementations
//
// Under the hood, everything is organized under flat subpackages:
//
//	order/    — Comparator[T] total orders (Natural, Reversed, By)
//	heap/     — maxiphobic mergeable heap
//	pqueue/   — priority-queue adapter over heap/
//	graph/    — Graph / WeightedGraph capabilities + adjacency reference impls
//	bfs/      — breadth-first spanning-tree traversal with PathTo
//	dfs/      — depth-first spanning-tree traversal with PathTo
//	dijkstra/ — single-source shortest paths (Dijkstra, DijkstraPaths)
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	dijkstra.Dijkstra from A finds B at 1, D at 3, C at 4.
//
// All structures are exclusively owned by one invocation and are not safe
// for concurrent use; graphs are treated as read-only during a run.
//
//	go get github.com/katalvlaran/lvlmerge
package lvlmerge
