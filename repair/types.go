package repair

import (
	"context"
	"errors"

	"github.com/katalvlaran/indset/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("repair: graph is nil")

// Option configures Repair via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a repair run.
type Options struct {
	// Ctx allows cancellation between removal iterations.
	Ctx context.Context

	// OnRemove is called after each removal with the evicted node and the
	// conflict count that condemned it.
	OnRemove func(id core.NodeID, conflicts int)
}

// DefaultOptions returns Options with a background context and a no-op
// removal hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnRemove: func(core.NodeID, int) {},
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

// WithOnRemove registers a callback observing each eviction.
func WithOnRemove(fn func(id core.NodeID, conflicts int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}
