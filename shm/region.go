// SPDX-License-Identifier: MIT

package shm

import (
	"fmt"
	"math"
	"unsafe"
)

// floatSize is the byte width of one float32 element.
const floatSize = int(unsafe.Sizeof(float32(0)))

// maxFloats is the largest region whose byte size fits in an int.
const maxFloats = math.MaxInt / floatSize

// Region is a contiguous float32 buffer with an explicit lifecycle.
type Region interface {
	// Floats returns the whole buffer; nil after Release.
	Floats() []float32
	// Len returns the element count fixed at allocation.
	Len() int
	// Release frees the buffer. Idempotent.
	Release() error
}

// HeapRegion is a Region backed by Go memory.
type HeapRegion struct {
	data []float32
	n    int
}

var (
	_ Region = (*HeapRegion)(nil)
	_ Region = (*SharedRegion)(nil)
)

// Heap allocates a zero-filled region of n float32 values on the Go heap.
// Errors: ErrSize if n < 0 or n*4 bytes overflows int; ErrAllocation if the
// runtime refuses a slice that long.
func Heap(n int) (h *HeapRegion, err error) {
	if n < 0 || n > maxFloats {
		return nil, fmt.Errorf("Heap(%d): %w", n, ErrSize)
	}
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, fmt.Errorf("Heap(%d): %v: %w", n, r, ErrAllocation)
		}
	}()

	return &HeapRegion{data: make([]float32, n), n: n}, nil
}

// Floats returns the backing slice.
func (h *HeapRegion) Floats() []float32 { return h.data }

// Len returns the element count.
func (h *HeapRegion) Len() int { return h.n }

// Release drops the reference so the GC can reclaim it.
func (h *HeapRegion) Release() error {
	h.data = nil

	return nil
}

// floatsOf reinterprets a byte mapping as float32 values.
// len(b) must be a multiple of floatSize.
func floatsOf(b []byte) []float32 {
	if len(b) == 0 {
		return nil
	}

	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/floatSize)
}
