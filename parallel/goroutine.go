// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/shm"
)

// RowKernel computes one job's rows into job.Buffer.Result().
type RowKernel func(job Job)

// MulKernel is the default RowKernel: matrix.MulRows over the job's range.
func MulKernel(job Job) {
	matrix.MulRows(job.A.RawData(), job.B.RawData(), job.Buffer.Result(),
		job.A.Cols(), job.B.Cols(), job.Rows.Start, job.Rows.End)
}

// GoroutineSpawner runs every job on its own goroutine over a heap region.
// Kernel overrides the row kernel; nil means MulKernel.
type GoroutineSpawner struct {
	Kernel RowKernel
}

var _ Spawner = GoroutineSpawner{}

// Name implements Spawner.
func (GoroutineSpawner) Name() string { return "goroutine" }

// Allocate implements Spawner with a Go heap region.
func (GoroutineSpawner) Allocate(a, b *matrix.Dense) (Buffer, error) {
	r, err := shm.Heap(a.Rows() * b.Cols())
	if err != nil {
		return nil, err
	}

	return &heapBuffer{region: r}, nil
}

// Spawn implements Spawner. It never fails.
func (s GoroutineSpawner) Spawn(_ context.Context, job Job) (Handle, error) {
	kernel := s.Kernel
	if kernel == nil {
		kernel = MulKernel
	}
	h := &goroutineHandle{worker: job.Worker, done: make(chan struct{})}
	go h.run(kernel, job)

	return h, nil
}

type heapBuffer struct {
	region *shm.HeapRegion
}

func (b *heapBuffer) Result() []float32 { return b.region.Floats() }
func (b *heapBuffer) Release() error    { return b.region.Release() }

// Detach hands the slice to the caller; the region forgets it.
func (b *heapBuffer) Detach() []float32 {
	data := b.region.Floats()
	_ = b.region.Release()

	return data
}

type goroutineHandle struct {
	worker   int
	done     chan struct{}
	err      error
	consumed atomic.Bool
}

func (h *goroutineHandle) run(kernel RowKernel, job Job) {
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.err = fmt.Errorf("worker %d rows %s: panic: %v: %w", job.Worker, job.Rows, r, ErrWorkerFailure)
		}
	}()
	kernel(job)
}

func (h *goroutineHandle) Worker() int { return h.worker }

func (h *goroutineHandle) Wait() error {
	if h.consumed.Swap(true) {
		return fmt.Errorf("worker %d: %w", h.worker, ErrHandleConsumed)
	}
	<-h.done

	return h.err
}

// Kill is unsupported: goroutines run to completion.
func (h *goroutineHandle) Kill() error { return errors.ErrUnsupported }
