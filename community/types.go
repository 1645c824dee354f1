package community

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/indset/core"
)

// ErrGraphNil is returned when a nil *core.Graph is supplied.
var ErrGraphNil = errors.New("community: graph is nil")

// Default detector parameters.
const (
	// DefaultResolution is the modularity resolution; 1.0 is the classic
	// Newman-Girvan objective.
	DefaultResolution = 1.0

	// DefaultSeed feeds the Louvain random stream.
	DefaultSeed uint64 = 42

	// DefaultMaxPasses caps Greedy's local-move sweeps.
	DefaultMaxPasses = 100
)

// Detector partitions a graph's nodes into communities.
//
// Implementations return every node exactly once across the communities,
// each community in ascending NodeID order and the communities ordered by
// their smallest member. A partition of length one means the detector
// found no exploitable structure.
type Detector interface {
	// Name identifies the detector in logs.
	Name() string

	// Detect partitions g. It must not mutate g.
	Detect(ctx context.Context, g *core.Graph) ([][]core.NodeID, error)
}

// canonicalize sorts each community ascending and orders communities by
// their smallest member. Empty communities are dropped.
func canonicalize(parts [][]core.NodeID) [][]core.NodeID {
	out := parts[:0]
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		core.SortNodeIDs(p)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
