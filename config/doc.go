// Package config defines the one immutable knob bundle shared by every
// indset component: oracle tuning, orchestration budgets, partitioning
// caps, benchmark deadlines and paths.
//
// Construction order is defaults → YAML file → CLI flags; after that the
// value never changes: components receive it by value and may not
// mutate it. Default() carries the reference benchmark constants, so a
// bare `indset bench` reproduces the canonical run.
//
// Durations are written as Go duration strings in YAML and JSON ("2h",
// "90m"); bare integers are accepted as seconds for compatibility with
// older configuration files.
package config
