// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/partition"
)

// Buffer is the result region as seen by the executor.
type Buffer interface {
	// Result returns the A.Rows()*B.Cols() row-major output cells.
	Result() []float32
	// Release frees the region. Called once, after every worker terminated.
	Release() error
}

// detacher is implemented by buffers whose result slice can be handed to the
// caller without a copy.
type detacher interface {
	Detach() []float32
}

// Job is one unit of work: rows [Rows.Start, Rows.End) of C.
type Job struct {
	Worker int
	Rows   partition.Range
	A, B   *matrix.Dense
	Buffer Buffer
}

// Handle identifies a spawned worker. Wait consumes it: a second call returns
// ErrHandleConsumed.
type Handle interface {
	Worker() int
	// Wait blocks until the worker terminates; abnormal termination is ErrWorkerFailure.
	Wait() error
	// Kill stops the worker; errors.ErrUnsupported if it cannot be preempted.
	Kill() error
}

// Spawner starts workers and owns the kind of region they share.
type Spawner interface {
	Name() string
	// Allocate creates the result region for a×b (shapes already validated).
	Allocate(a, b *matrix.Dense) (Buffer, error)
	// Spawn starts one worker without waiting for it.
	Spawn(ctx context.Context, job Job) (Handle, error)
}
