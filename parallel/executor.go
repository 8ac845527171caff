// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/partition"
)

const opMultiply = "Multiply"

// Executor runs row-partitioned products. It holds configuration only and is
// safe for concurrent use; every Multiply owns its own region and workers.
type Executor struct {
	workers int
	spawner Spawner
	timeout time.Duration
	log     *log.Logger
}

// New builds an Executor from DefaultWorkers, GoroutineSpawner, no timeout and
// a discarding logger, overridden by opts.
func New(opts ...Option) *Executor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Executor{workers: o.workers, spawner: o.spawner, timeout: o.timeout, log: o.logger}
}

// Workers returns the configured worker count.
func (e *Executor) Workers() int { return e.workers }

// Spawner returns the configured spawner.
func (e *Executor) Spawner() Spawner { return e.spawner }

// Multiply computes C = A × B across the configured workers.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible; empty outputs return without spawning.
//   - Stage 2: allocate and zero-fill the region, split rows.
//   - Stage 3: spawn one worker per range (ctx is checked before each spawn).
//   - Stage 4: join every handle, then materialize and release the region.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrReleased / ErrDimensionMismatch before any work.
//   - ErrResourceAllocation, ErrSpawnFailure, ErrWorkerFailure, ErrTimeout.
//
// A and B are never mutated. On error no matrix is returned.
func (e *Executor) Multiply(ctx context.Context, a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	m, n := a.Rows(), b.Cols()
	if m == 0 || n == 0 {
		return matrix.NewDense(m, n)
	}

	if _, ok := cellCount(m, n); !ok {
		return nil, fmt.Errorf("%s: result %dx%d overflows int: %w", opMultiply, m, n, ErrResourceAllocation)
	}
	buf, err := e.spawner.Allocate(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %s region of %d values: %w: %w", opMultiply, e.spawner.Name(), m*n, err, ErrResourceAllocation)
	}
	clear(buf.Result())
	e.log.Printf("allocated %s region %dx%d", e.spawner.Name(), m, n)

	parts, err := partition.Split(m, e.workers)
	if err == nil {
		err = partition.Validate(parts, m)
	}
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%s: %w", opMultiply, err), e.release(buf))
	}

	handles := make([]Handle, 0, len(parts))
	for p, r := range parts {
		var h Handle
		if err = ctx.Err(); err == nil {
			h, err = e.spawner.Spawn(ctx, Job{Worker: p, Rows: r, A: a, B: b, Buffer: buf})
		}
		if err != nil {
			return nil, e.abort(p, err, handles, buf)
		}
		e.log.Printf("spawned worker %d rows %s", p, r)
		handles = append(handles, h)
	}

	abandoned, err := e.join(handles)
	if err != nil {
		if abandoned {
			e.log.Printf("join timed out; leaving %s region to the collector", e.spawner.Name())
			return nil, fmt.Errorf("%s: %w", opMultiply, err)
		}
		return nil, errors.Join(fmt.Errorf("%s: %w", opMultiply, err), e.release(buf))
	}

	var data []float32
	if d, ok := buf.(detacher); ok {
		data = d.Detach()
	} else {
		data = make([]float32, m*n)
		copy(data, buf.Result())
	}
	if err = e.release(buf); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	return matrix.NewDenseFrom(m, n, data)
}

// abort implements the spawn-failure path for worker p: join 0..p-1,
// release the region, report ErrSpawnFailure.
func (e *Executor) abort(p int, cause error, handles []Handle, buf Buffer) error {
	e.log.Printf("spawn of worker %d failed: %v; joining %d started workers", p, cause, len(handles))
	joinErr := waitAll(handles)
	spawnErr := fmt.Errorf("%s: worker %d: %w: %w", opMultiply, p, cause, ErrSpawnFailure)

	return errors.Join(spawnErr, joinErr, e.release(buf))
}

// join waits for every handle. With a timeout configured the wait is bounded:
// on expiry all workers are killed and, when every kill succeeded, reaped.
// abandoned reports that some worker could not be stopped, so the region must
// not be released.
func (e *Executor) join(handles []Handle) (abandoned bool, err error) {
	if e.timeout <= 0 {
		return false, waitAll(handles)
	}

	done := make(chan error, 1)
	go func() { done <- waitAll(handles) }()

	timer := time.NewTimer(e.timeout)
	defer timer.Stop()
	select {
	case err = <-done:
		return false, err
	case <-timer.C:
	}

	stoppable := true
	for _, h := range handles {
		if kerr := h.Kill(); errors.Is(kerr, errors.ErrUnsupported) {
			stoppable = false
		}
	}
	timeoutErr := fmt.Errorf("after %s: %w", e.timeout, ErrTimeout)
	if !stoppable {
		return true, timeoutErr
	}
	<-done // killed workers are reaped; their exit status is superseded by the timeout

	return false, timeoutErr
}

// cellCount returns m*n, or ok=false when the product overflows int.
func cellCount(m, n int) (int, bool) {
	if n != 0 && m > math.MaxInt/n {
		return 0, false
	}

	return m * n, true
}

// waitAll consumes every handle once, in order, and joins their errors.
func waitAll(handles []Handle) error {
	errs := make([]error, 0, len(handles))
	for _, h := range handles {
		errs = append(errs, h.Wait())
	}

	return errors.Join(errs...)
}

func (e *Executor) release(buf Buffer) error {
	if err := buf.Release(); err != nil {
		return fmt.Errorf("release region: %w", err)
	}
	e.log.Printf("released %s region", e.spawner.Name())

	return nil
}
