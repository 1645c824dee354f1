package bench

import "errors"

// Sentinel errors for store parsing.
var (
	// ErrBadHeader is returned when the stats file's header row does
	// not match the expected schema.
	ErrBadHeader = errors.New("bench: unexpected stats header")

	// ErrBadRow is returned when a stats row cannot be parsed.
	ErrBadRow = errors.New("bench: malformed stats row")
)

// Record is one instance's persisted benchmark outcome.
type Record struct {
	// Graph is the instance name, the file's base without extension.
	Graph string

	// Nodes and Edges describe the parsed instance.
	Nodes int
	Edges int

	// OptSize is the externally known best size, 0 when unknown.
	OptSize int

	// Size is the achieved independent-set size.
	Size int

	// Ratio is Size/OptSize, 0 when OptSize is 0.
	Ratio float64

	// Time is the solving wall time in seconds. After a direct
	// timeout it covers the fallback window only.
	Time float64

	// Timeout marks a direct attempt stopped by the primary deadline.
	Timeout bool

	// Fallback marks that the divide-and-conquer stage ran.
	Fallback bool

	// FallbackTimeout marks a fallback stopped by the longer deadline,
	// which leaves the instance unsolved.
	FallbackTimeout bool
}
