package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlmerge/bfs"
	"github.com/katalvlaran/lvlmerge/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond returns the directed diamond A→{B,C}, B→D, C→D.
func buildDiamond() *graph.AdjacencyGraph[string] {
	g := graph.NewAdjacencyGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_UnknownSource(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddVertex("A")

	_, err := bfs.BFS[string](g, "missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound,
		"unknown-vertex failures must keep their identity through the traversal")
}

func TestBFS_VisitOrderLevelByLevel(t *testing.T) {
	res, err := bfs.BFS[string](buildDiamond(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
}

func TestBFS_EachReachableVertexOnce(t *testing.T) {
	// Cycle plus cross edges: every vertex still appears exactly once.
	g := graph.NewAdjacencyGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.AddEdge(2, 4)
	g.AddEdge(4, 2)
	g.AddVertex(99) // unreachable

	res, err := bfs.BFS[int](g, 1)
	require.NoError(t, err)

	seen := map[int]int{}
	for _, v := range res.Order {
		seen[v]++
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, seen,
		"traversal must contain exactly the reachable set, once each")
}

func TestBFS_PathToShortestInEdges(t *testing.T) {
	res, err := bfs.BFS[string](buildDiamond(), "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path, "BFS path must have the fewest edges")
}

func TestBFS_PathToSource(t *testing.T) {
	res, err := bfs.BFS[string](buildDiamond(), "A")
	require.NoError(t, err)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestBFS_PathToUnreachable(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddEdge("A", "B")
	g.AddVertex("Z")

	res, err := bfs.BFS[string](g, "A")
	require.NoError(t, err)

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, bfs.ErrUnreachableVertex)
}

func TestBFS_PathsAreGraphAdjacent(t *testing.T) {
	g := buildDiamond()
	res, err := bfs.BFS[string](g, "A")
	require.NoError(t, err)

	for _, v := range res.Order {
		path, err := res.PathTo(v)
		require.NoError(t, err)
		require.Equal(t, "A", path[0])
		require.Equal(t, v, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			succ, err := g.Successors(path[i-1])
			require.NoError(t, err)
			assert.Contains(t, succ, path[i],
				"consecutive path entries must be graph-adjacent")
		}
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS[string](buildDiamond(), "A",
		bfs.WithFilterNeighbor[string](func(curr, nbr string) bool {
			return !(curr == "A" && nbr == "B")
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, res.Order)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, path)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	boom := errors.New("stop here")
	var visited []string
	_, err := bfs.BFS[string](buildDiamond(), "A",
		bfs.WithOnVisit[string](func(v string) error {
			visited = append(visited, v)
			if v == "C" {
				return boom
			}
			return nil
		}))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B", "C"}, visited)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := graph.NewAdjacencyGraph[string]()
	g.AddVertex("solo")

	res, err := bfs.BFS[string](g, "solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, res.Order)
	assert.Empty(t, res.Parent, "the source carries no parent entry")
}
