package graph

// AdjacencyGraph is a map-backed directed graph implementing Graph[V].
// Vertices and successors are reported in insertion order. The zero
// value is not usable; construct with NewAdjacencyGraph.
type AdjacencyGraph[V comparable] struct {
	verts []V           // insertion order of vertices
	succ  map[V][]V     // adjacency, insertion order per vertex
	arcs  map[V]map[V]bool
}

// NewAdjacencyGraph creates an empty directed graph.
func NewAdjacencyGraph[V comparable]() *AdjacencyGraph[V] {
	return &AdjacencyGraph[V]{
		succ: make(map[V][]V),
		arcs: make(map[V]map[V]bool),
	}
}

// AddVertex inserts v if absent; adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *AdjacencyGraph[V]) AddVertex(v V) {
	if _, ok := g.succ[v]; ok {
		return
	}
	g.verts = append(g.verts, v)
	g.succ[v] = nil
	g.arcs[v] = make(map[V]bool)
}

// AddEdge inserts the directed arc from→to, auto-adding either endpoint
// if absent. A duplicate arc is a no-op.
// Complexity: O(1) amortized.
func (g *AdjacencyGraph[V]) AddEdge(from, to V) {
	g.AddVertex(from)
	g.AddVertex(to)
	if g.arcs[from][to] {
		return
	}
	g.arcs[from][to] = true
	g.succ[from] = append(g.succ[from], to)
}

// AddUndirectedEdge inserts both arcs u→v and v→u.
func (g *AdjacencyGraph[V]) AddUndirectedEdge(u, v V) {
	g.AddEdge(u, v)
	g.AddEdge(v, u)
}

// HasVertex reports whether v is a vertex of the graph.
func (g *AdjacencyGraph[V]) HasVertex(v V) bool {
	_, ok := g.succ[v]
	return ok
}

// Vertices returns every vertex in insertion order.
func (g *AdjacencyGraph[V]) Vertices() []V {
	out := make([]V, len(g.verts))
	copy(out, g.verts)

	return out
}

// Successors returns the direct successors of v in insertion order, or
// ErrVertexNotFound if v is absent.
func (g *AdjacencyGraph[V]) Successors(v V) ([]V, error) {
	nbrs, ok := g.succ[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]V, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// WeightedAdjacencyGraph is a map-backed directed weighted graph
// implementing WeightedGraph[V]. Vertices and successors are reported in
// insertion order. The zero value is not usable; construct with
// NewWeightedAdjacencyGraph.
type WeightedAdjacencyGraph[V comparable] struct {
	verts []V
	succ  map[V][]Successor[V]
	arcs  map[V]map[V]int // arc target → index into succ[v]
}

// NewWeightedAdjacencyGraph creates an empty directed weighted graph.
func NewWeightedAdjacencyGraph[V comparable]() *WeightedAdjacencyGraph[V] {
	return &WeightedAdjacencyGraph[V]{
		succ: make(map[V][]Successor[V]),
		arcs: make(map[V]map[V]int),
	}
}

// AddVertex inserts v if absent; adding an existing vertex is a no-op.
func (g *WeightedAdjacencyGraph[V]) AddVertex(v V) {
	if _, ok := g.succ[v]; ok {
		return
	}
	g.verts = append(g.verts, v)
	g.succ[v] = nil
	g.arcs[v] = make(map[V]int)
}

// AddEdge inserts the directed arc from→to with the given weight,
// auto-adding either endpoint if absent. Re-adding an existing arc
// overwrites its weight in place, keeping successor order stable.
// Complexity: O(1) amortized.
func (g *WeightedAdjacencyGraph[V]) AddEdge(from, to V, weight int64) {
	g.AddVertex(from)
	g.AddVertex(to)
	if i, ok := g.arcs[from][to]; ok {
		g.succ[from][i].Weight = weight
		return
	}
	g.arcs[from][to] = len(g.succ[from])
	g.succ[from] = append(g.succ[from], Successor[V]{Vertex: to, Weight: weight})
}

// AddUndirectedEdge inserts both arcs u→v and v→u with the same weight.
func (g *WeightedAdjacencyGraph[V]) AddUndirectedEdge(u, v V, weight int64) {
	g.AddEdge(u, v, weight)
	g.AddEdge(v, u, weight)
}

// HasVertex reports whether v is a vertex of the graph.
func (g *WeightedAdjacencyGraph[V]) HasVertex(v V) bool {
	_, ok := g.succ[v]
	return ok
}

// Vertices returns every vertex in insertion order.
func (g *WeightedAdjacencyGraph[V]) Vertices() []V {
	out := make([]V, len(g.verts))
	copy(out, g.verts)

	return out
}

// Successors returns the weighted outgoing edges of v in insertion
// order, or ErrVertexNotFound if v is absent.
func (g *WeightedAdjacencyGraph[V]) Successors(v V) ([]Successor[V], error) {
	nbrs, ok := g.succ[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Successor[V], len(nbrs))
	copy(out, nbrs)

	return out, nil
}
