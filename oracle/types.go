package oracle

import (
	"context"
	"errors"

	"github.com/katalvlaran/indset/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("oracle: graph is nil")

// Oracle proposes candidate node subsets for a graph. Implementations
// may be expensive, stochastic, and failure-prone; callers own repair
// and failure isolation.
type Oracle interface {
	// Name identifies the oracle in logs and records.
	Name() string

	// Solve returns a candidate subset of g's nodes for the given attempt
	// index. The result need not be independent. Implementations honor
	// ctx on a best-effort basis; hard deadlines are enforced by the
	// caller's execution context, not here.
	Solve(ctx context.Context, g *core.Graph, attempt int) ([]core.NodeID, error)
}
