package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph capability is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrUnreachableVertex is returned by PathTo for a vertex the
	// traversal never visited.
	ErrUnreachableVertex = errors.New("bfs: vertex not reached from source")
)

// Option configures BFS behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds callbacks customizing BFS execution.
type Options[V comparable] struct {
	// OnVisit is called when a vertex is visited. If it returns an
	// error, the traversal aborts and propagates that error.
	OnVisit func(v V) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool
}

// DefaultOptions returns Options with no-op hooks and no filtering.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		OnVisit:        func(V) error { return nil },
		FilterNeighbor: func(V, V) bool { return true },
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from the callback stops the traversal.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one traversal:
//   - Source: the vertex the run started from.
//   - Order:  vertices visited, in visit sequence.
//   - Parent: map from vertex to its predecessor in the spanning tree.
//     The source carries no entry; that absence marks the root.
type Result[V comparable] struct {
	Source V
	Order  []V
	Parent map[V]V
}

// PathTo reconstructs the source→dest path from the spanning tree.
// Returns ErrUnreachableVertex if dest was never visited; for the source
// itself the path is the single vertex [source].
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Parent[dest]; !ok && dest != r.Source {
		return nil, fmt.Errorf("%w: %v", ErrUnreachableVertex, dest)
	}

	// Walk parent links backward, then reverse into source-first order.
	var path []V
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
