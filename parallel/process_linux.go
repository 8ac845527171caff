// SPDX-License-Identifier: MIT

//go:build linux

package parallel

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/shm"
)

// regionName labels the memfd in /proc/<pid>/fd.
const regionName = "parmatmul-region"

// ProcessSpawner starts one OS process per job. The child runs
// `Path Args... <WorkerSpec flags>` with the shared region on RegionFD and
// must end up in WorkerMain (the CLI's hidden `worker` command does).
//
// Every child shares Stderr. Writers other than *os.File are copied to by one
// goroutine per child, so they are wrapped in a SyncWriter owned by the
// spawner; a ProcessSpawner must not be copied after first use.
type ProcessSpawner struct {
	Path   string
	Args   []string
	Env    []string  // appended to os.Environ()
	Stderr io.Writer // child stderr; os.Stderr when nil

	once   sync.Once
	stderr io.Writer
}

var _ Spawner = (*ProcessSpawner)(nil)

// NewProcessSpawner returns a spawner re-executing path (the running
// executable when empty) with args in front of the worker flags.
func NewProcessSpawner(path string, args ...string) (*ProcessSpawner, error) {
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolve worker executable: %w", err)
		}
		path = exe
	}

	return &ProcessSpawner{Path: path, Args: args}, nil
}

// Name implements Spawner.
func (*ProcessSpawner) Name() string { return "process" }

// Allocate maps one shared region holding A, B and C and copies A and B in.
func (*ProcessSpawner) Allocate(a, b *matrix.Dense) (Buffer, error) {
	aLen, bLen := a.Len(), b.Len()
	cLen, ok := cellCount(a.Rows(), b.Cols())
	if !ok || cLen > math.MaxInt-aLen-bLen {
		return nil, fmt.Errorf("region for %dx%d·%dx%d overflows int: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), shm.ErrSize)
	}
	region, err := shm.NewShared(regionName, aLen+bLen+cLen)
	if err != nil {
		return nil, err
	}
	fl := region.Floats()
	copy(fl[:aLen], a.RawData())
	copy(fl[aLen:aLen+bLen], b.RawData())

	return &processBuffer{region: region, offset: aLen + bLen}, nil
}

// Spawn implements Spawner by starting the worker binary.
func (s *ProcessSpawner) Spawn(_ context.Context, job Job) (Handle, error) {
	pb, ok := job.Buffer.(*processBuffer)
	if !ok {
		return nil, fmt.Errorf("process worker %d: buffer %T is not a shared region", job.Worker, job.Buffer)
	}
	spec := WorkerSpec{Worker: job.Worker, M: job.A.Rows(), K: job.A.Cols(), N: job.B.Cols(), Rows: job.Rows}

	args := append(append([]string{}, s.Args...), spec.Args()...)
	cmd := exec.Command(s.Path, args...)
	cmd.ExtraFiles = []*os.File{pb.region.File()}
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.Stderr = s.childStderr()
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &processHandle{worker: job.Worker, spec: spec, cmd: cmd}, nil
}

// childStderr resolves Stderr once: nil means os.Stderr, files are passed
// through as descriptors, anything else is serialized.
func (s *ProcessSpawner) childStderr() io.Writer {
	s.once.Do(func() {
		switch w := s.Stderr.(type) {
		case nil:
			s.stderr = os.Stderr
		case *os.File, *SyncWriter:
			s.stderr = w
		default:
			s.stderr = NewSyncWriter(w)
		}
	})

	return s.stderr
}

type processBuffer struct {
	region *shm.SharedRegion
	offset int
}

func (b *processBuffer) Result() []float32 { return b.region.Floats()[b.offset:] }
func (b *processBuffer) Release() error    { return b.region.Release() }

type processHandle struct {
	worker   int
	spec     WorkerSpec
	cmd      *exec.Cmd
	consumed atomic.Bool
}

func (h *processHandle) Worker() int { return h.worker }

func (h *processHandle) Wait() error {
	if h.consumed.Swap(true) {
		return fmt.Errorf("worker %d: %w", h.worker, ErrHandleConsumed)
	}
	if err := h.cmd.Wait(); err != nil {
		return fmt.Errorf("worker %d rows %s (pid %d): %w: %w",
			h.worker, h.spec.Rows, h.cmd.Process.Pid, err, ErrWorkerFailure)
	}

	return nil
}

func (h *processHandle) Kill() error { return h.cmd.Process.Kill() }

// RunWorker maps the region file f, computes spec.Rows of C into it and
// flushes the mapping. A and B are only read.
func RunWorker(spec WorkerSpec, f *os.File) error {
	total := spec.regionLen()
	if total == 0 {
		return nil
	}
	region, err := shm.Attach(f, total)
	if err != nil {
		return err
	}
	defer region.Release()

	fl := region.Floats()
	aLen, bLen := spec.M*spec.K, spec.K*spec.N
	a, b, c := fl[:aLen], fl[aLen:aLen+bLen], fl[aLen+bLen:]
	if err = matrix.CheckRowsArgs(a, b, c, spec.M, spec.K, spec.N, spec.Rows.Start, spec.Rows.End); err != nil {
		return err
	}
	matrix.MulRows(a, b, c, spec.K, spec.N, spec.Rows.Start, spec.Rows.End)

	return region.Sync()
}
