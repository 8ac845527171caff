// SPDX-License-Identifier: MIT
// Package: parallel
//
// errors.go - sentinel errors for the parallel package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Causes are preserved next to the sentinel (fmt.Errorf("...: %w: %w", cause, ErrX)).
//   • Option constructors panic on programmer error; Multiply never panics.

package parallel

import "errors"

var (
	// ErrResourceAllocation indicates that the shared result region could not be allocated.
	ErrResourceAllocation = errors.New("parallel: result region allocation failed")

	// ErrSpawnFailure indicates that a worker could not be started. Workers
	// already started were joined and the region was released.
	ErrSpawnFailure = errors.New("parallel: worker spawn failed")

	// ErrWorkerFailure indicates that a worker terminated abnormally
	// (panic, non-zero exit status, or signal).
	ErrWorkerFailure = errors.New("parallel: worker failed")

	// ErrTimeout indicates that workers did not all join within the configured timeout.
	ErrTimeout = errors.New("parallel: join timed out")

	// ErrHandleConsumed indicates a second Wait on the same worker handle.
	ErrHandleConsumed = errors.New("parallel: worker handle already joined")

	// ErrWorkerSpec indicates malformed worker-process arguments.
	ErrWorkerSpec = errors.New("parallel: invalid worker arguments")
)
