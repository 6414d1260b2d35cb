package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/core"
	"github.com/katalvlaran/strata/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func directed(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// TestTopo_Rejects covers nil and undirected graphs.
func TestTopo_Rejects(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}

// TestTopo_Empty covers a directed graph with no vertices.
func TestTopo_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph(core.WithDirected(true)))
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_Diamond checks every edge points forward and the order is stable.
func TestTopo_Diamond(t *testing.T) {
	edges := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}}
	g := directed(t, edges...)
	_ = g.AddVertex("Z")

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "%s before %s", e[0], e[1])
	}
	again, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, order, again)
}

// TestTopo_Cycle stops at the back-edge.
func TestTopo_Cycle(t *testing.T) {
	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestDetectCycles_Directed finds each loop once, rotated to its smallest
// vertex and kept in edge direction.
func TestDetectCycles_Directed(t *testing.T) {
	g := directed(t,
		[2]string{"b", "a"}, [2]string{"a", "c"}, [2]string{"c", "b"},
		[2]string{"x", "y"}, [2]string{"y", "x"},
		[2]string{"z", "a"},
	)
	found, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]string{{"a", "c", "b", "a"}, {"x", "y", "x"}}, cycles)

	found, cycles, err = dfs.DetectCycles(directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycles)

	found, _, err = dfs.DetectCycles(nil)
	require.NoError(t, err)
	assert.False(t, found)
}

// TestDetectCycles_Undirected ignores the trivial walk back to the parent.
func TestDetectCycles_Undirected(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	found, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]string{{"a", "b", "c", "a"}}, cycles)
}

// TestMinimalRotation spot-checks Booth's algorithm.
func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dfs.MinimalRotation([]string{"b", "c", "a"}))
	assert.Equal(t, []string{"a", "a", "b"}, dfs.MinimalRotation([]string{"a", "b", "a"}))
	assert.Equal(t, []string{"x"}, dfs.MinimalRotation([]string{"x"}))
	assert.Equal(t, -1, dfs.IndexOf([]string{"a"}, "b"))
	assert.Equal(t, []string{"c", "b", "a"}, dfs.Reverse([]string{"a", "b", "c"}))
}
