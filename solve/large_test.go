package solve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/gen"
	"github.com/katalvlaran/indset/partition"
	"github.com/katalvlaran/indset/solve"
)

// onePart reports the whole graph as a single community, forcing the
// partitioner onto its deterministic bisection path.
type onePart struct{}

func (onePart) Name() string { return "one" }

func (onePart) Detect(_ context.Context, g *core.Graph) ([][]core.NodeID, error) {
	return [][]core.NodeID{g.Nodes()}, nil
}

// takeAll is the ideal oracle for edge-free pieces: every node joins.
func takeAll(g *core.Graph, _ int) ([]core.NodeID, error) {
	return g.Nodes(), nil
}

// TestLarge_DelegatesWhenFits hands small graphs straight to Direct.
func TestLarge_DelegatesWhenFits(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	orc := &script{fn: func(*core.Graph, int) ([]core.NodeID, error) {
		return []core.NodeID{0, 2}, nil
	}}
	cfg := testCfg(2)
	cfg.MaxSubgraphSize = 100

	res, err := solve.Large(context.Background(), g, orc, cfg)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, res.Nodes)
	assert.Equal(t, 2, res.Attempts)
	assert.EqualValues(t, 2, orc.calls.Load())
}

// TestLarge_SplitsAndStitches covers the full pipeline on 10 isolated
// nodes with bound 4: pieces {0,1},{2,3,4},{5,6},{7,8,9}, each solved
// in dense labels, remapped, unioned into all ten originals.
func TestLarge_SplitsAndStitches(t *testing.T) {
	g, err := gen.Edgeless(10)
	require.NoError(t, err)

	orc := &script{fn: takeAll}
	cfg := testCfg(1)
	cfg.MaxSubgraphSize = 4

	res, err := solve.Large(context.Background(), g, orc, cfg)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), res.Nodes)
	assert.Equal(t, 10, res.Size)
	assert.Equal(t, 4, res.Attempts, "one attempt per piece")
}

// TestLarge_RepairsCrossPieceEdges wires two pieces with one edge
// between them; the union is infeasible until the final repair evicts
// the lower endpoint.
func TestLarge_RepairsCrossPieceEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeRange(6))
	require.NoError(t, g.AddEdge(0, 3))

	orc := &script{fn: takeAll}
	cfg := testCfg(1)
	cfg.MaxSubgraphSize = 3

	res, err := solve.Large(context.Background(), g, orc, cfg,
		partition.WithDetector(onePart{}), partition.WithFallback(onePart{}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3, 4, 5}, res.Nodes)
	assert.Equal(t, 5, res.Size)
}

// TestLarge_PieceFailureTolerated lets the first piece's whole round
// fail; the remaining pieces still deliver.
func TestLarge_PieceFailureTolerated(t *testing.T) {
	g, err := gen.Edgeless(10)
	require.NoError(t, err)

	orc := &script{}
	orc.fn = func(g *core.Graph, _ int) ([]core.NodeID, error) {
		// pieces solve sequentially with one attempt each, so the
		// first call is exactly the first piece
		if orc.calls.Load() == 1 {
			return nil, errors.New("piece imploded")
		}
		return g.Nodes(), nil
	}
	cfg := testCfg(1)
	cfg.MaxSubgraphSize = 4

	res, err := solve.Large(context.Background(), g, orc, cfg)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3, 4, 5, 6, 7, 8, 9}, res.Nodes)
	assert.Equal(t, 4, res.Attempts)
	assert.Equal(t, 3, res.Succeeded)
}

// TestLarge_ClampsAttemptsForPieces keeps pieces solvable even when the
// caller's config says zero attempts.
func TestLarge_ClampsAttemptsForPieces(t *testing.T) {
	g, err := gen.Edgeless(8)
	require.NoError(t, err)

	orc := &script{fn: takeAll}
	cfg := testCfg(0)
	cfg.MaxSubgraphSize = 4

	res, err := solve.Large(context.Background(), g, orc, cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Size)
	assert.EqualValues(t, 2, orc.calls.Load(), "one clamped attempt per piece")
}

// TestLarge_InvalidAndCancelled covers sentinels and dead contexts.
func TestLarge_InvalidAndCancelled(t *testing.T) {
	g, err := gen.Edgeless(10)
	require.NoError(t, err)
	orc := &script{fn: takeAll}
	cfg := testCfg(1)
	cfg.MaxSubgraphSize = 4

	_, err = solve.Large(context.Background(), nil, orc, cfg)
	assert.ErrorIs(t, err, solve.ErrGraphNil)

	_, err = solve.Large(context.Background(), g, nil, cfg)
	assert.ErrorIs(t, err, solve.ErrOracleNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solve.Large(ctx, g, orc, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}
