package dijkstra

import (
	"github.com/katalvlaran/lvlmerge/graph"
	"github.com/katalvlaran/lvlmerge/pqueue"
)

// Dijkstra computes the minimum path cost from source to every vertex
// reachable from it in g. Edge weights must be non-negative (unchecked).
//
// The result maps each reachable vertex, the source included (at cost
// 0), to its shortest-path cost; unreachable vertices are absent.
// Unknown-vertex errors from the graph propagate unchanged.
func Dijkstra[V comparable](g graph.WeightedGraph[V], source V) (map[V]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	costs := make(map[V]int64)
	r := newRunner(g, false, func(v V, cost int64, _ []V) {
		costs[v] = cost
	})
	if err := r.run(source); err != nil {
		return nil, err
	}

	return costs, nil
}

// DijkstraPaths computes, for every vertex reachable from source, the
// minimum path cost together with the vertex sequence of one cheapest
// path. Edge weights must be non-negative (unchecked).
//
// Each extension carries its accumulated path, so memory is O(V) per
// queue entry; prefer Dijkstra plus separate reconstruction when only
// costs are needed. Unknown-vertex errors from the graph propagate
// unchanged.
func DijkstraPaths[V comparable](g graph.WeightedGraph[V], source V) (map[V]Route[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	routes := make(map[V]Route[V])
	r := newRunner(g, true, func(v V, cost int64, path []V) {
		routes[v] = Route[V]{Cost: cost, Path: path}
	})
	if err := r.run(source); err != nil {
		return nil, err
	}

	return routes, nil
}

// runner holds the mutable state of a single run.
type runner[V comparable] struct {
	g         graph.WeightedGraph[V]
	queue     *pqueue.Queue[extension[V]]
	finalized map[V]bool
	remaining int // unfinalized vertex count
	seq       uint64
	carryPath bool
	record    func(v V, cost int64, path []V)
}

func newRunner[V comparable](g graph.WeightedGraph[V], carryPath bool, record func(V, int64, []V)) *runner[V] {
	return &runner[V]{
		g:         g,
		queue:     pqueue.New(byCost[V]()),
		finalized: make(map[V]bool),
		carryPath: carryPath,
		record:    record,
	}
}

// run finalizes the source at cost zero, seeds the queue with its
// direct successors, and processes extensions in ascending cost order.
func (r *runner[V]) run(source V) error {
	for _, v := range r.g.Vertices() {
		if v != source {
			r.remaining++
		}
	}
	r.finalized[source] = true

	var sourcePath []V
	if r.carryPath {
		sourcePath = []V{source}
	}
	r.record(source, 0, sourcePath)

	if err := r.relax(source, 0, sourcePath); err != nil {
		return err
	}

	return r.process()
}

// process pops extensions until no unfinalized vertex remains or the
// queue drains; the latter covers graphs with unreachable vertices.
func (r *runner[V]) process() error {
	for r.remaining > 0 && !r.queue.IsEmpty() {
		ext, err := r.queue.First()
		if err != nil {
			return err
		}
		if err = r.queue.Dequeue(); err != nil {
			return err
		}

		// Stale entry: the destination was finalized through a cheaper
		// extension after this one was enqueued. Discard without effect.
		if r.finalized[ext.dest] {
			continue
		}

		// At this instant ext.totalCost is the true shortest-path cost:
		// every cheaper extension has been processed, and non-negative
		// weights rule out cheaper paths through unfinalized vertices.
		r.finalized[ext.dest] = true
		r.remaining--
		r.record(ext.dest, ext.totalCost, ext.path)

		if err = r.relax(ext.dest, ext.totalCost, ext.path); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes one extension per not-yet-finalized successor of v, at
// cost base plus the edge weight.
func (r *runner[V]) relax(v V, base int64, path []V) error {
	successors, err := r.g.Successors(v)
	if err != nil {
		// Collaborator errors propagate unchanged.
		return err
	}
	for _, s := range successors {
		if r.finalized[s.Vertex] {
			continue
		}
		var extended []V
		if r.carryPath {
			extended = make([]V, len(path), len(path)+1)
			copy(extended, path)
			extended = append(extended, s.Vertex)
		}
		r.seq++
		r.queue.Enqueue(extension[V]{
			source:    v,
			dest:      s.Vertex,
			totalCost: base + s.Weight,
			seq:       r.seq,
			path:      extended,
		})
	}

	return nil
}
