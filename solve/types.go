package solve

import (
	"errors"

	"github.com/katalvlaran/indset/core"
)

// Sentinel errors for invalid solver inputs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("solve: graph is nil")

	// ErrOracleNil is returned if no oracle is supplied.
	ErrOracleNil = errors.New("solve: oracle is nil")
)

// Result is the outcome of one solving round.
type Result struct {
	// Nodes is the independent set in ascending order. Empty, never
	// nil, when no attempt succeeded.
	Nodes []core.NodeID

	// Size is len(Nodes), carried explicitly so records and wire
	// responses need no recomputation.
	Size int

	// Attempts counts oracle calls launched across the round,
	// including per-piece calls under Large.
	Attempts int

	// Succeeded counts attempts that produced a repairable candidate.
	Succeeded int
}

// empty is the valid "no solution found" Result.
func empty(attempts int) Result {
	return Result{Nodes: []core.NodeID{}, Attempts: attempts}
}
