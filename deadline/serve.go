package deadline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Serve is the worker half of the stdio protocol: decode one Request
// from r, apply fn, encode one Response to w. A solving failure is
// shipped back inside the Response so the parent can tell "worker gave
// up" from "worker crashed"; Serve itself errors only on transport
// problems.
func Serve(ctx context.Context, r io.Reader, w io.Writer, fn SolveFunc) error {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("deadline: decode request: %w", err)
	}

	resp, err := fn(ctx, req)
	if err != nil {
		resp = Response{Error: err.Error()}
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("deadline: encode response: %w", err)
	}
	return nil
}
