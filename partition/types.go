package partition

import (
	"context"
	"errors"

	"github.com/katalvlaran/indset/community"
	"github.com/katalvlaran/indset/core"
)

// Sentinel errors for invalid Split inputs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("partition: graph is nil")

	// ErrMaxSize is returned if the size bound is below 1.
	ErrMaxSize = errors.New("partition: maxSize must be at least 1")
)

// Piece is one partition element: an induced subgraph relabeled to the
// dense block 0..k-1, plus the bijection back.
type Piece struct {
	// Sub is the piece's subgraph over dense local indices.
	Sub *core.Graph

	// OriginalOf maps each local index to the original label;
	// OriginalOf[i] is the label of local node i.
	OriginalOf []core.NodeID
}

// Option configures Split via functional arguments.
type Option func(*Options)

// Options holds the detector chain and cancellation handle for a split.
type Options struct {
	// Ctx allows cancellation between recursion steps.
	Ctx context.Context

	// Detector is the primary community detector.
	Detector community.Detector

	// Fallback is consulted when Detector returns an error.
	Fallback community.Detector
}

// DefaultOptions returns Options with a background context, seeded
// Louvain as primary and the greedy detector as secondary.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Detector: community.NewLouvain(community.DefaultSeed),
		Fallback: community.NewGreedy(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDetector overrides the primary community detector.
func WithDetector(d community.Detector) Option {
	return func(o *Options) {
		if d != nil {
			o.Detector = d
		}
	}
}

// WithFallback overrides the secondary community detector.
func WithFallback(d community.Detector) Option {
	return func(o *Options) {
		if d != nil {
			o.Fallback = d
		}
	}
}
