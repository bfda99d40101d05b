package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlmerge/graph"
)

// pendingEdge is one frontier entry: the edge waiting to be crossed.
// The sentinel edge seeds the traversal and has no real source.
type pendingEdge[V comparable] struct {
	source   V
	dest     V
	sentinel bool
}

// walker encapsulates mutable DFS state for one run.
type walker[V comparable] struct {
	graph    graph.Graph[V]
	opts     Options[V]
	frontier []pendingEdge[V] // LIFO stack
	visited  map[V]bool
	res      *Result[V]
}

// DFS runs depth-first traversal on g from source, applying any number
// of functional Options. Every vertex reachable from source is visited
// exactly once; the returned Result carries the visit order and the
// parent-pointer spanning tree.
//
// Returns ErrGraphNil for a nil graph, a wrapped graph.ErrVertexNotFound
// if the graph reports an unknown vertex, or any OnVisit hook error.
func DFS[V comparable](g graph.Graph[V], source V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[V]{
		graph:   g,
		opts:    o,
		visited: make(map[V]bool),
		res: &Result[V]{
			Source: source,
			Parent: make(map[V]V),
		},
	}
	// Seed the frontier with the sentinel edge into the source.
	w.frontier = append(w.frontier, pendingEdge[V]{dest: source, sentinel: true})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop processes the frontier until it empties or an error aborts.
func (w *walker[V]) loop() error {
	for len(w.frontier) > 0 {
		top := len(w.frontier) - 1
		edge := w.frontier[top]
		w.frontier = w.frontier[:top]

		// A destination may be stacked more than once; only the first
		// pop visits it.
		if w.visited[edge.dest] {
			continue
		}
		if err := w.visit(edge); err != nil {
			return err
		}
		if err := w.expand(edge.dest); err != nil {
			return err
		}
	}

	return nil
}

// visit marks the edge's destination visited, records it in Order and
// the spanning tree, and calls OnVisit.
func (w *walker[V]) visit(edge pendingEdge[V]) error {
	w.visited[edge.dest] = true
	w.res.Order = append(w.res.Order, edge.dest)
	if !edge.sentinel {
		w.res.Parent[edge.dest] = edge.source
	}
	if err := w.opts.OnVisit(edge.dest); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", edge.dest, err)
	}

	return nil
}

// expand pushes a pending edge for every unvisited successor of v.
// Pushed in successor order, so the last successor is entered first.
func (w *walker[V]) expand(v V) error {
	successors, err := w.graph.Successors(v)
	if err != nil {
		return fmt.Errorf("dfs: successors of %v: %w", v, err)
	}
	for _, nbr := range successors {
		if !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		if w.visited[nbr] {
			continue
		}
		w.frontier = append(w.frontier, pendingEdge[V]{source: v, dest: nbr})
	}

	return nil
}
