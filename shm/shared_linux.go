// SPDX-License-Identifier: MIT

//go:build linux

package shm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SharedRegion is a memfd-backed MAP_SHARED mapping of n float32 values.
// Every process that maps the same file sees the same pages.
type SharedRegion struct {
	file     *os.File
	mem      []byte
	floats   []float32
	n        int
	released bool
}

// NewShared creates an anonymous memory file of n float32 values and maps it
// read-write, shared. name only labels the file in /proc/<pid>/fd.
//
// Errors: ErrSize if n <= 0 or n*4 bytes overflows int; ErrAllocation
// wrapping the syscall error otherwise.
func NewShared(name string, n int) (*SharedRegion, error) {
	if n <= 0 || n > maxFloats {
		return nil, fmt.Errorf("NewShared(%d): %w", n, ErrSize)
	}
	fd, err := unix.MemfdCreate(name, unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("NewShared: memfd_create: %w: %w", err, ErrAllocation)
	}
	f := os.NewFile(uintptr(fd), name)
	if err = unix.Ftruncate(fd, int64(n*floatSize)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("NewShared: ftruncate %d bytes: %w: %w", n*floatSize, err, ErrAllocation)
	}

	r, err := mapFile(f, n)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return r, nil
}

// Attach maps an inherited region file (see File) holding at least n values.
// The returned region owns f: Release closes it.
func Attach(f *os.File, n int) (*SharedRegion, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Attach(%d): %w", n, ErrSize)
	}
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("Attach: stat: %w: %w", err, ErrAllocation)
	}
	if fi.Size() < int64(n*floatSize) {
		return nil, fmt.Errorf("Attach: file holds %d bytes, need %d: %w", fi.Size(), n*floatSize, ErrSize)
	}

	return mapFile(f, n)
}

func mapFile(f *os.File, n int) (*SharedRegion, error) {
	mem, err := unix.Mmap(int(f.Fd()), 0, n*floatSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w: %w", n*floatSize, err, ErrAllocation)
	}

	return &SharedRegion{file: f, mem: mem, floats: floatsOf(mem), n: n}, nil
}

// Floats returns the mapped values; nil after Release.
func (s *SharedRegion) Floats() []float32 { return s.floats }

// Len returns the element count.
func (s *SharedRegion) Len() int { return s.n }

// File returns the descriptor to hand to child processes (exec.Cmd.ExtraFiles).
func (s *SharedRegion) File() *os.File { return s.file }

// Sync flushes the mapping (msync MS_SYNC).
func (s *SharedRegion) Sync() error {
	if s.released {
		return ErrReleased
	}
	if err := unix.Msync(s.mem, unix.MS_SYNC); err != nil {
		return fmt.Errorf("msync: %w", err)
	}

	return nil
}

// Release unmaps the region and closes its file. Idempotent.
func (s *SharedRegion) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	s.floats = nil
	errUnmap := unix.Munmap(s.mem)
	s.mem = nil
	errClose := s.file.Close()
	if errUnmap != nil {
		return fmt.Errorf("munmap: %w", errUnmap)
	}
	if errClose != nil {
		return fmt.Errorf("close: %w", errClose)
	}

	return nil
}
