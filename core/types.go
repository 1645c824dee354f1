package core

import "errors"

// NodeID identifies a node. It is an opaque integer: components never
// interpret its value beyond equality and ordering.
type NodeID int

// Sentinel errors for graph mutation.
var (
	// ErrSelfLoop is returned when an edge's endpoints are equal.
	ErrSelfLoop = errors.New("core: self-loop rejected")

	// ErrNegativeCount is returned when a node-range size is negative.
	ErrNegativeCount = errors.New("core: negative node count")
)
