package dijkstra

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/lvlmerge/order"
)

// ErrGraphNil is returned if a nil graph capability is passed.
var ErrGraphNil = errors.New("dijkstra: graph is nil")

// Route is one entry of a DijkstraPaths result: the minimum cost from
// the source and the vertex sequence of one cheapest path, source first,
// destination last. The source's own route is {0, [source]}.
type Route[V comparable] struct {
	Cost int64
	Path []V
}

// extension is a candidate shortest-path move: crossing one edge from a
// finalized source vertex to dest, for a total cost from the run's
// origin. Many extensions are created and discarded unused once their
// destination has been finalized through a cheaper entry.
//
// seq is a per-run enqueue counter breaking cost ties in insertion
// order, keeping pop order deterministic.
type extension[V comparable] struct {
	source    V
	dest      V
	totalCost int64
	seq       uint64
	path      []V // populated by DijkstraPaths only
}

// byCost orders extensions by ascending total cost, ties by enqueue
// sequence.
func byCost[V comparable]() order.Comparator[extension[V]] {
	return func(a, b extension[V]) int {
		if c := cmp.Compare(a.totalCost, b.totalCost); c != 0 {
			return c
		}

		return cmp.Compare(a.seq, b.seq)
	}
}
