package deadline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Subprocess runs each request in a child process. Deadline expiry
// kills the child (SIGKILL via exec.CommandContext), so even oracle
// internals that never check a context are reclaimed on time.
type Subprocess struct {
	// Binary is the worker executable; empty re-executes os.Args[0].
	Binary string

	// Args is the worker invocation, typically the hidden worker
	// subcommand.
	Args []string

	// Env replaces the child environment when non-nil; nil inherits
	// the parent's.
	Env []string
}

// NewSubprocess returns a runner that re-executes the current binary
// with args.
func NewSubprocess(args ...string) *Subprocess {
	return &Subprocess{Args: args}
}

// Run implements Runner.
func (s *Subprocess) Run(ctx context.Context, req Request, d time.Duration) (Response, error) {
	runCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("deadline: encode request: %w", err)
	}

	bin := s.Binary
	if bin == "" {
		bin = os.Args[0]
	}

	cmd := exec.CommandContext(runCtx, bin, s.Args...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// worker logs stream through untouched
	cmd.Stderr = os.Stderr
	if s.Env != nil {
		cmd.Env = s.Env
	}
	// a killed worker can leave pipe readers mid-copy; don't let Wait
	// hang on them
	cmd.WaitDelay = time.Second

	runErr := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Response{}, fmt.Errorf("%w after %s", ErrTimeout, d)
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if runErr != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrWorker, runErr)
	}

	var resp Response
	if err := json.NewDecoder(&stdout).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("%w: bad response: %v", ErrWorker, err)
	}
	if resp.Error != "" {
		return Response{}, fmt.Errorf("%w: %s", ErrWorker, resp.Error)
	}
	return resp, nil
}
