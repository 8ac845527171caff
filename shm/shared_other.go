// SPDX-License-Identifier: MIT

//go:build !linux

package shm

import "os"

// SharedRegion is unavailable outside Linux; every constructor returns ErrUnsupported.
type SharedRegion struct{}

// NewShared always fails with ErrUnsupported.
func NewShared(string, int) (*SharedRegion, error) { return nil, ErrUnsupported }

// Attach always fails with ErrUnsupported.
func Attach(*os.File, int) (*SharedRegion, error) { return nil, ErrUnsupported }

func (*SharedRegion) Floats() []float32 { return nil }
func (*SharedRegion) Len() int          { return 0 }
func (*SharedRegion) File() *os.File    { return nil }
func (*SharedRegion) Sync() error       { return ErrUnsupported }
func (*SharedRegion) Release() error    { return nil }
