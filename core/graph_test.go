package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/core"
)

// TestAddEdge_CreatesEndpoints verifies AddEdge inserts missing endpoints
// and keeps counts consistent across duplicates.
func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 7))

	assert.True(t, g.HasNode(3))
	assert.True(t, g.HasNode(7))
	assert.True(t, g.HasEdge(3, 7))
	assert.True(t, g.HasEdge(7, 3), "undirected edges must be symmetric")
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	// duplicate insert is a no-op
	require.NoError(t, g.AddEdge(7, 3))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_SelfLoop verifies loops are rejected with the sentinel.
func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	err := g.AddEdge(4, 4)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	assert.Equal(t, 0, g.NodeCount())
}

// TestAddNodeRange verifies the dense block insert and its validation.
func TestAddNodeRange(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeRange(4))
	assert.Equal(t, []core.NodeID{0, 1, 2, 3}, g.Nodes())

	// existing nodes survive a second range
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddNodeRange(2))
	assert.Equal(t, 1, g.EdgeCount())

	assert.ErrorIs(t, g.AddNodeRange(-1), core.ErrNegativeCount)
}

// TestOrdering verifies Nodes, Neighbors and Edges come back ascending.
func TestOrdering(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 1))
	require.NoError(t, g.AddEdge(5, 3))
	require.NoError(t, g.AddEdge(1, 3))
	g.AddNode(9)

	assert.Equal(t, []core.NodeID{1, 3, 5, 9}, g.Nodes())
	assert.Equal(t, []core.NodeID{1, 3}, g.Neighbors(5))
	assert.Equal(t, [][2]core.NodeID{{1, 3}, {1, 5}, {3, 5}}, g.Edges())
	assert.Empty(t, g.Neighbors(42), "absent node has no neighbors")
	assert.Equal(t, 0, g.Degree(42))
	assert.Equal(t, 2, g.Degree(1))
}

// TestClone verifies deep-copy semantics.
func TestClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, 1, g.EdgeCount(), "mutating the clone must not touch the source")
	assert.Equal(t, 2, c.EdgeCount())
}

// TestSubgraph verifies induced-subgraph semantics with original labels.
func TestSubgraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	sub := g.Subgraph([]core.NodeID{1, 2, 99, 2})
	assert.Equal(t, []core.NodeID{1, 2}, sub.Nodes(), "unknown and duplicate IDs collapse")
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge(1, 2))
	assert.False(t, sub.HasEdge(2, 3), "edges leaving the induced set are cut")
}

// TestRelabel verifies the dense copy and its bijection back to the
// original labels.
func TestRelabel(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(10, 30))
	require.NoError(t, g.AddEdge(30, 20))

	dense, originalOf := g.Relabel()

	assert.Equal(t, []core.NodeID{0, 1, 2}, dense.Nodes())
	assert.Equal(t, []core.NodeID{10, 20, 30}, originalOf)
	// 10-30 becomes 0-2, 30-20 becomes 2-1
	assert.True(t, dense.HasEdge(0, 2))
	assert.True(t, dense.HasEdge(1, 2))
	assert.False(t, dense.HasEdge(0, 1))
	assert.Equal(t, g.EdgeCount(), dense.EdgeCount())
}
