// SPDX-License-Identifier: MIT

package parallel_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/parallel"
)

// randDense returns an r×c matrix with values in [-1, 1) from a fixed seed.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range m.RawData() {
		m.RawData()[i] = rng.Float32()*2 - 1
	}

	return m
}

func rows(tb testing.TB, data [][]float32) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseRows(data)
	if err != nil {
		tb.Fatalf("NewDenseRows: %v", err)
	}

	return m
}

var errInjected = errors.New("injected spawn error")

// trackingSpawner wraps another spawner, fails the spawn of worker failAt
// (never when failAt < 0) and records joins and region releases.
type trackingSpawner struct {
	inner    parallel.Spawner
	failAt   int
	spawned  atomic.Int32
	joined   atomic.Int32
	released atomic.Int32
}

func (s *trackingSpawner) Name() string { return "tracking-" + s.inner.Name() }

func (s *trackingSpawner) Allocate(a, b *matrix.Dense) (parallel.Buffer, error) {
	buf, err := s.inner.Allocate(a, b)
	if err != nil {
		return nil, err
	}

	return &trackingBuffer{Buffer: buf, released: &s.released}, nil
}

func (s *trackingSpawner) Spawn(ctx context.Context, job parallel.Job) (parallel.Handle, error) {
	if job.Worker == s.failAt {
		return nil, errInjected
	}
	job.Buffer = job.Buffer.(*trackingBuffer).Buffer
	h, err := s.inner.Spawn(ctx, job)
	if err != nil {
		return nil, err
	}
	s.spawned.Add(1)

	return &trackingHandle{Handle: h, joined: &s.joined}, nil
}

type trackingBuffer struct {
	parallel.Buffer
	released *atomic.Int32
}

func (b *trackingBuffer) Release() error {
	b.released.Add(1)
	return b.Buffer.Release()
}

type trackingHandle struct {
	parallel.Handle
	joined *atomic.Int32
}

func (h *trackingHandle) Wait() error {
	err := h.Handle.Wait()
	h.joined.Add(1)

	return err
}
