package community_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/community"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/gen"
)

// dumbbell builds two triangles joined by a single bridge edge, the
// textbook graph whose best modularity partition is the two triangles.
func dumbbell(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]core.NodeID{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func detectors() map[string]community.Detector {
	return map[string]community.Detector{
		"louvain": community.NewLouvain(community.DefaultSeed),
		"greedy":  community.NewGreedy(),
	}
}

// TestDetect_Dumbbell checks both detectors separate the two triangles.
func TestDetect_Dumbbell(t *testing.T) {
	for name, d := range detectors() {
		t.Run(name, func(t *testing.T) {
			got, err := d.Detect(context.Background(), dumbbell(t))
			require.NoError(t, err)
			want := [][]core.NodeID{{0, 1, 2}, {3, 4, 5}}
			assert.Equal(t, want, got)
		})
	}
}

// TestDetect_Edgeless checks an edge-free graph collapses to a single
// community, the signal the partitioner reads as "no structure".
func TestDetect_Edgeless(t *testing.T) {
	g, err := gen.Edgeless(6)
	require.NoError(t, err)
	for name, d := range detectors() {
		t.Run(name, func(t *testing.T) {
			got, err := d.Detect(context.Background(), g)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, g.Nodes(), got[0])
		})
	}
}

// TestDetect_EmptyAndNil covers the trivial and invalid graphs.
func TestDetect_EmptyAndNil(t *testing.T) {
	for name, d := range detectors() {
		t.Run(name, func(t *testing.T) {
			got, err := d.Detect(context.Background(), core.NewGraph())
			require.NoError(t, err)
			assert.Empty(t, got)

			_, err = d.Detect(context.Background(), nil)
			assert.ErrorIs(t, err, community.ErrGraphNil)
		})
	}
}

// TestDetect_PartitionValidity checks the structural contract on a
// random graph: disjoint cover in canonical order.
func TestDetect_PartitionValidity(t *testing.T) {
	g, err := gen.RandomSparse(80, 0.08, 7)
	require.NoError(t, err)

	for name, d := range detectors() {
		t.Run(name, func(t *testing.T) {
			parts, err := d.Detect(context.Background(), g)
			require.NoError(t, err)
			require.NotEmpty(t, parts)

			seen := make(map[core.NodeID]struct{}, g.NodeCount())
			prevFirst := core.NodeID(-1)
			for _, p := range parts {
				require.NotEmpty(t, p)
				assert.Greater(t, p[0], prevFirst, "communities must be ordered by smallest member")
				prevFirst = p[0]

				prev := core.NodeID(-1)
				for _, id := range p {
					assert.Greater(t, id, prev, "community must be ascending")
					prev = id
					_, dup := seen[id]
					require.False(t, dup, "node %d assigned twice", id)
					seen[id] = struct{}{}
				}
			}
			assert.Len(t, seen, g.NodeCount())
		})
	}
}

// TestDetect_Deterministic checks both detectors repeat themselves.
func TestDetect_Deterministic(t *testing.T) {
	g, err := gen.RandomSparse(60, 0.1, 3)
	require.NoError(t, err)

	for name, d := range detectors() {
		t.Run(name, func(t *testing.T) {
			first, err := d.Detect(context.Background(), g)
			require.NoError(t, err)
			second, err := d.Detect(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

// TestDetect_Cancelled checks a dead context aborts before any work.
func TestDetect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, d := range detectors() {
		t.Run(name, func(t *testing.T) {
			_, err := d.Detect(ctx, dumbbell(t))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}
