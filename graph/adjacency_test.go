package graph_test

import (
	"testing"

	"github.com/katalvlaran/lvlmerge/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyGraph_InsertionOrder(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddEdge("A", "C")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddVertex("D")

	assert.Equal(t, []string{"A", "C", "B", "D"}, g.Vertices(),
		"vertices must appear in insertion order")

	succ, err := g.Successors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, succ, "successors must keep insertion order")
}

func TestAdjacencyGraph_DuplicateArcIgnored(t *testing.T) {
	g := graph.NewAdjacencyGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)

	succ, err := g.Successors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, succ)
}

func TestAdjacencyGraph_UnknownVertex(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddVertex("A")

	_, err := g.Successors("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.False(t, g.HasVertex("missing"))
	assert.True(t, g.HasVertex("A"))
}

func TestAdjacencyGraph_UndirectedEdge(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddUndirectedEdge("A", "B")

	fromA, err := g.Successors("A")
	require.NoError(t, err)
	fromB, err := g.Successors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, fromA)
	assert.Equal(t, []string{"A"}, fromB)
}

func TestWeightedAdjacencyGraph_EdgesAndWeights(t *testing.T) {
	g := graph.NewWeightedAdjacencyGraph[string]()
	g.AddEdge("A", "B", 3)
	g.AddEdge("A", "C", 7)

	succ, err := g.Successors("A")
	require.NoError(t, err)
	assert.Equal(t, []graph.Successor[string]{
		{Vertex: "B", Weight: 3},
		{Vertex: "C", Weight: 7},
	}, succ)
}

func TestWeightedAdjacencyGraph_ReAddOverwritesWeight(t *testing.T) {
	g := graph.NewWeightedAdjacencyGraph[string]()
	g.AddEdge("A", "B", 3)
	g.AddEdge("A", "C", 5)
	g.AddEdge("A", "B", 9)

	succ, err := g.Successors("A")
	require.NoError(t, err)
	assert.Equal(t, []graph.Successor[string]{
		{Vertex: "B", Weight: 9},
		{Vertex: "C", Weight: 5},
	}, succ, "overwriting an arc must keep successor order stable")
}

func TestWeightedAdjacencyGraph_UnknownVertex(t *testing.T) {
	g := graph.NewWeightedAdjacencyGraph[int]()
	_, err := g.Successors(42)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestWeightedAdjacencyGraph_Undirected(t *testing.T) {
	g := graph.NewWeightedAdjacencyGraph[string]()
	g.AddUndirectedEdge("A", "B", 4)

	fromB, err := g.Successors("B")
	require.NoError(t, err)
	assert.Equal(t, []graph.Successor[string]{{Vertex: "A", Weight: 4}}, fromB)
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestSuccessors_ReturnsCopy(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddEdge("A", "B")

	succ, err := g.Successors("A")
	require.NoError(t, err)
	succ[0] = "mutated"

	again, err := g.Successors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, again, "callers must not be able to mutate adjacency")
}
