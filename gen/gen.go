package gen

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/indset/core"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewNodes is returned when n is below the topology's minimum.
	ErrTooFewNodes = errors.New("gen: too few nodes")

	// ErrBadProbability is returned when p is outside [0,1].
	ErrBadProbability = errors.New("gen: probability outside [0,1]")
)

// Cycle returns the cycle C_n over nodes 0..n-1 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewNodes
	}
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(core.NodeID(i), core.NodeID((i+1)%n))
	}
	return g, nil
}

// Complete returns the clique K_n over nodes 0..n-1 (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	g := core.NewGraph()
	_ = g.AddNodeRange(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			_ = g.AddEdge(core.NodeID(u), core.NodeID(v))
		}
	}
	return g, nil
}

// Edgeless returns n isolated nodes 0..n-1 (n ≥ 1).
// Complexity: O(n).
func Edgeless(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	g := core.NewGraph()
	_ = g.AddNodeRange(n)
	return g, nil
}

// RandomSparse returns an Erdős–Rényi-style graph over nodes 0..n-1:
// every unordered pair becomes an edge with probability p, drawn from a
// PCG stream seeded with seed. Deterministic per (n, p, seed).
// Complexity: O(n²).
func RandomSparse(n int, p float64, seed uint64) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := core.NewGraph()
	_ = g.AddNodeRange(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				_ = g.AddEdge(core.NodeID(u), core.NodeID(v))
			}
		}
	}
	return g, nil
}
