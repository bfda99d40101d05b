package graph

import "errors"

// ErrVertexNotFound is returned by Successors for a vertex absent from
// the graph.
var ErrVertexNotFound = errors.New("graph: vertex not found")

// Graph is the traversal capability consumed by bfs and dfs: a read-only
// view of the vertices directly reachable from a given vertex.
type Graph[V comparable] interface {
	// Successors returns the direct successors of v, or ErrVertexNotFound
	// if v is not a vertex of the graph. The returned slice is owned by
	// the caller of Successors only for reading.
	Successors(v V) ([]V, error)
}

// Successor is one outgoing edge of a weighted graph: the vertex it
// leads to and the weight of the connecting edge.
type Successor[V comparable] struct {
	Vertex V
	Weight int64
}

// WeightedGraph is the capability consumed by dijkstra: weighted
// successors plus the full vertex set.
type WeightedGraph[V comparable] interface {
	// Successors returns the weighted outgoing edges of v, or
	// ErrVertexNotFound if v is not a vertex of the graph.
	Successors(v V) ([]Successor[V], error)

	// Vertices returns every vertex of the graph.
	Vertices() []V
}
