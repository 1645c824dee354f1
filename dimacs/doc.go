// Package dimacs reads DIMACS-style graph instances (.gph): `c` comment
// lines, a `p <kind> <n> [m]` header declaring nodes 0..n-1, and
// `e <u> <v>` edge lines with 1-based endpoints that are normalized to
// 0-based NodeIDs.
//
// The reader is tolerant the way the benchmark corpus requires: unknown
// line kinds are skipped, edges may precede the header, duplicate edges
// collapse. It is strict where silence would corrupt data: malformed
// header or edge records and endpoints outside the declared range are
// errors carrying the line number.
//
// Errors: ErrBadHeader, ErrBadEdge, ErrEdgeRange (wrapped with context;
// branch with errors.Is).
package dimacs
