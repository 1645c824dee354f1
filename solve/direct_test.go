package solve_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/gen"
	"github.com/katalvlaran/indset/solve"
)

// script is a deterministic stand-in oracle driven by a plain function.
type script struct {
	calls atomic.Int64
	fn    func(g *core.Graph, attempt int) ([]core.NodeID, error)
}

func (s *script) Name() string { return "script" }

func (s *script) Solve(ctx context.Context, g *core.Graph, attempt int) ([]core.NodeID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.calls.Add(1)
	return s.fn(g, attempt)
}

// testCfg pins both pool knobs so completion order is launch order.
func testCfg(attempts int) config.Config {
	cfg := config.Default()
	cfg.MaxAttempts = attempts
	cfg.MaxWorkers = 1
	return cfg
}

// TestDirect_PicksLargest returns the biggest repaired candidate across
// attempts of unequal size.
func TestDirect_PicksLargest(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	orc := &script{fn: func(_ *core.Graph, attempt int) ([]core.NodeID, error) {
		switch attempt {
		case 0:
			return []core.NodeID{0}, nil
		case 1:
			return []core.NodeID{0, 2}, nil
		default:
			return nil, errors.New("oracle blew up")
		}
	}}

	res, err := solve.Direct(context.Background(), g, orc, testCfg(3))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, res.Nodes)
	assert.Equal(t, 2, res.Size)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 2, res.Succeeded)
}

// TestDirect_RepairsCandidates shows conflicting oracle output is
// repaired before selection: {0,1,2} on a 5-cycle survives as {0,2}.
func TestDirect_RepairsCandidates(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	orc := &script{fn: func(*core.Graph, int) ([]core.NodeID, error) {
		return []core.NodeID{0, 1, 2}, nil
	}}

	res, err := solve.Direct(context.Background(), g, orc, testCfg(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, res.Nodes)
}

// TestDirect_TieKeepsFirstObserved pins the selection rule: with a
// single worker attempts finish in launch order, and an equal-sized
// later candidate must not displace the earlier one.
func TestDirect_TieKeepsFirstObserved(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	orc := &script{fn: func(_ *core.Graph, attempt int) ([]core.NodeID, error) {
		if attempt == 0 {
			return []core.NodeID{0, 2}, nil
		}
		return []core.NodeID{1, 3}, nil
	}}

	res, err := solve.Direct(context.Background(), g, orc, testCfg(2))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, res.Nodes)
}

// TestDirect_AllFail yields the empty Result without an error; total
// failure is an answer, not a fault.
func TestDirect_AllFail(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	orc := &script{fn: func(*core.Graph, int) ([]core.NodeID, error) {
		return nil, errors.New("no convergence")
	}}

	res, err := solve.Direct(context.Background(), g, orc, testCfg(4))
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
	assert.NotNil(t, res.Nodes)
	assert.Zero(t, res.Size)
	assert.Equal(t, 4, res.Attempts)
	assert.Zero(t, res.Succeeded)
}

// TestDirect_FailureIsolation keeps siblings alive after one attempt
// dies: 4 attempts, one failure, best of the remaining three wins.
func TestDirect_FailureIsolation(t *testing.T) {
	g, err := gen.Cycle(6)
	require.NoError(t, err)

	orc := &script{fn: func(_ *core.Graph, attempt int) ([]core.NodeID, error) {
		if attempt == 1 {
			return nil, errors.New("transient")
		}
		if attempt == 2 {
			return []core.NodeID{0, 2, 4}, nil
		}
		return []core.NodeID{1, 3}, nil
	}}

	res, err := solve.Direct(context.Background(), g, orc, testCfg(4))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2, 4}, res.Nodes)
	assert.Equal(t, 3, res.Succeeded)
	assert.EqualValues(t, 4, orc.calls.Load())
}

// TestDirect_InvalidInputs covers the nil sentinels.
func TestDirect_InvalidInputs(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)
	orc := &script{fn: func(*core.Graph, int) ([]core.NodeID, error) { return nil, nil }}

	_, err = solve.Direct(context.Background(), nil, orc, testCfg(1))
	assert.ErrorIs(t, err, solve.ErrGraphNil)

	_, err = solve.Direct(context.Background(), g, nil, testCfg(1))
	assert.ErrorIs(t, err, solve.ErrOracleNil)
}

// TestDirect_Cancelled propagates a dead context instead of reporting
// all attempts as failed.
func TestDirect_Cancelled(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)
	orc := &script{fn: func(*core.Graph, int) ([]core.NodeID, error) {
		return []core.NodeID{0}, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = solve.Direct(ctx, g, orc, testCfg(2))
	assert.ErrorIs(t, err, context.Canceled)
}
