// Package backend defines the adapter contract every simulation backend
// satisfies: construct once per (circuit, shots) pair, Execute exactly once,
// then project the raw result into the canonical outcome map.
package backend

import (
	"context"

	"qbench/core/outcome"
)

// Backend is implemented by all execution adapters. It is intentionally
// minimal so backends with very different native APIs can be swapped without
// touching orchestration.
//
// Lifecycle: Execute is the only call allowed to block for non-trivial time
// and must be invoked exactly once; Result is a pure projection of the stored
// raw result and may be called any number of times afterwards. Result before
// a successful Execute fails with ErrNotExecuted. Adapter instances are not
// safe for concurrent use; run parallel benchmarks on separate instances.
type Backend interface {
	Name() string
	Execute(ctx context.Context) error
	Result() (outcome.Map, error)
}
