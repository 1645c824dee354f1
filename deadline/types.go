package deadline

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/indset/config"
	"github.com/katalvlaran/indset/core"
)

// Sentinel errors distinguishing the two failure families.
var (
	// ErrTimeout reports the deadline expired before the worker answered.
	ErrTimeout = errors.New("deadline: exceeded")

	// ErrWorker reports the worker crashed, failed, or answered garbage.
	ErrWorker = errors.New("deadline: worker failed")
)

// Mode selects the solving strategy on the worker side.
type Mode string

const (
	// ModeDirect runs the plain attempt round.
	ModeDirect Mode = "direct"

	// ModeLarge runs the partition-and-stitch solver.
	ModeLarge Mode = "large"
)

// Request is the wire form of one solving job. Graphs travel as a
// dense label block plus an edge list: everything downstream of
// instance parsing is normalized to labels 0..Nodes-1, so the count
// alone recovers the node set.
type Request struct {
	Mode   Mode             `json:"mode"`
	Nodes  int              `json:"nodes"`
	Edges  [][2]core.NodeID `json:"edges"`
	Config config.Config    `json:"config"`
}

// Response is the wire form of a solving outcome. A non-empty Error
// means the worker gave up; Size and Nodes are then meaningless.
type Response struct {
	Size  int           `json:"size"`
	Nodes []core.NodeID `json:"nodes"`
	Error string        `json:"error,omitempty"`
}

// Runner executes one request under a wall-clock budget.
type Runner interface {
	// Run returns the worker's response, ErrTimeout if d elapsed
	// first, or an ErrWorker-wrapped failure. A non-positive d expires
	// immediately.
	Run(ctx context.Context, req Request, d time.Duration) (Response, error)
}

// SolveFunc is the worker's brain: turn one request into a response.
type SolveFunc func(ctx context.Context, req Request) (Response, error)

// NewRequest snapshots g and cfg for the wire.
func NewRequest(mode Mode, g *core.Graph, cfg config.Config) Request {
	return Request{Mode: mode, Nodes: g.NodeCount(), Edges: g.Edges(), Config: cfg}
}

// Graph rebuilds the solving input on the worker side.
func (r Request) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	if err := g.AddNodeRange(r.Nodes); err != nil {
		return nil, err
	}
	for _, e := range r.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
