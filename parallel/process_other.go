// SPDX-License-Identifier: MIT

//go:build !linux

package parallel

import (
	"context"
	"io"
	"os"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/shm"
)

// ProcessSpawner needs memfd shared mappings and is Linux-only.
type ProcessSpawner struct {
	Path   string
	Args   []string
	Env    []string
	Stderr io.Writer
}

// NewProcessSpawner always fails with shm.ErrUnsupported.
func NewProcessSpawner(string, ...string) (*ProcessSpawner, error) {
	return nil, shm.ErrUnsupported
}

func (*ProcessSpawner) Name() string { return "process" }

func (*ProcessSpawner) Allocate(*matrix.Dense, *matrix.Dense) (Buffer, error) {
	return nil, shm.ErrUnsupported
}

func (*ProcessSpawner) Spawn(context.Context, Job) (Handle, error) {
	return nil, shm.ErrUnsupported
}

// RunWorker always fails with shm.ErrUnsupported.
func RunWorker(WorkerSpec, *os.File) error { return shm.ErrUnsupported }
