// Package deadline bounds a solving call by wall-clock time with hard
// preemption: when the budget runs out, the work is torn down whether
// or not it ever looks at its context.
//
// What
//
//   - Runner is the contract: Run(ctx, req, d) either returns the
//     worker's Response within d or fails with ErrTimeout.
//   - Subprocess is the production runner. It launches a worker
//     process (by default the current binary re-executed with the
//     configured arguments), streams the Request as JSON over stdin,
//     and reads one JSON Response from stdout. Deadline expiry kills
//     the process group member outright, which is the only reliable
//     way to stop native computation that ignores cancellation.
//     Partial output from a killed worker is discarded.
//   - InProcess runs the request on a goroutine and trusts it to honor
//     context cancellation. It exists for tests and single-process
//     setups; a worker that ignores its context will leak past the
//     deadline, so it must not guard oracle calls in production.
//   - Serve is the worker-side half: decode one Request from stdin,
//     solve, encode one Response to stdout. Worker errors travel back
//     inside the Response rather than as broken pipes.
//
// Errors
//
//   - ErrTimeout when the deadline expires first; ErrWorker when the
//     worker crashes, reports an error, or emits garbage. The caller's
//     own context error passes through unchanged.
package deadline
