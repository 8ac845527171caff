// SPDX-License-Identifier: MIT

package shm

import "errors"

var (
	// ErrAllocation indicates that the operating system refused the region
	// (memfd_create, ftruncate or mmap failed).
	ErrAllocation = errors.New("shm: allocation failed")

	// ErrSize indicates a negative element count, or zero for a mapped region.
	ErrSize = errors.New("shm: invalid region size")

	// ErrReleased indicates use of a region after Release.
	ErrReleased = errors.New("shm: region released")

	// ErrUnsupported indicates that shared mappings are not available on this platform.
	ErrUnsupported = errors.New("shm: shared regions are not supported on this platform")
)
