package deadline

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// InProcess runs requests on a goroutine in the current process. It
// can only cancel cooperatively: a Solve that ignores its context
// keeps the goroutine alive past the deadline, which is why the
// production chain uses Subprocess instead. Tests and trusted
// in-process solvers are its audience.
type InProcess struct {
	// Solve handles one request; it must honor ctx.
	Solve SolveFunc
}

// NewInProcess wraps fn as a Runner.
func NewInProcess(fn SolveFunc) *InProcess {
	return &InProcess{Solve: fn}
}

// Run implements Runner.
func (p *InProcess) Run(ctx context.Context, req Request, d time.Duration) (Response, error) {
	runCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		resp Response
		err  error
	}
	// buffered so a late finisher never blocks after we stop listening
	done := make(chan outcome, 1)
	go func() {
		resp, err := p.Solve(runCtx, req)
		done <- outcome{resp, err}
	}()

	select {
	case out := <-done:
		switch {
		case out.err == nil:
			return out.resp, nil
		case errors.Is(out.err, context.DeadlineExceeded):
			return Response{}, fmt.Errorf("%w after %s", ErrTimeout, d)
		case errors.Is(out.err, context.Canceled) && ctx.Err() != nil:
			return Response{}, ctx.Err()
		default:
			return Response{}, fmt.Errorf("%w: %v", ErrWorker, out.err)
		}
	case <-runCtx.Done():
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return Response{}, fmt.Errorf("%w after %s", ErrTimeout, d)
		}
		return Response{}, ctx.Err()
	}
}
