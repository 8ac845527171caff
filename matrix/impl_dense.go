// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Make ownership explicit: the creator destroys a matrix with Release; any later access
//     reports ErrReleased instead of reading a stale buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRow   = "Row"
	ctxFrom  = "NewDenseFrom"
	ctxRows  = "NewDenseRows"
	ctxShape = "NewDense"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps "Dense.<method>(row,col): <sentinel>" stable for logs and tests.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - released marks a destroyed matrix; data is nil afterwards.
type Dense struct {
	r, c     int       // row and column counts
	data     []float32 // contiguous row-major storage (len == r*c)
	released bool      // set once by Release
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Zero-sized shapes (0×N, N×0) are legal and allocate nothing.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxShape, rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float32, rows*cols)}, nil
}

// NewDenseFrom adopts data as the row-major backing buffer of a rows×cols matrix.
// The slice is NOT copied: the returned matrix owns it from now on.
// Errors: ErrInvalidDimensions, ErrDataLength.
// Complexity: O(1).
func NewDenseFrom(rows, cols int, data []float32) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len=%d: %w", ctxFrom, rows, cols, len(data), ErrDataLength)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseRows copies a rectangular [][]float32 into a new Dense.
// Column count is taken from the first row; every other row must match.
// Errors: ErrRaggedRows (wrapped with the offending row index).
// Complexity: O(r*c).
func NewDenseRows(rows [][]float32) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	data := make([]float32, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxRows, i, len(row), c, ErrRaggedRows)
		}
		copy(data[i*c:(i+1)*c], row)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Len returns rows*cols.
func (m *Dense) Len() int { return m.r * m.c }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.released }

// indexOf computes the flat index for (row, col) or returns a wrapped sentinel.
// Stage 1 (Validate): released guard, then 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m.released {
		return 0, denseErrorf(method, row, col, ErrReleased)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange, ErrReleased.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange, ErrReleased.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a no-copy view of row i (length Cols()).
// Writes through the view mutate the matrix.
// Errors: ErrOutOfRange, ErrReleased.
func (m *Dense) Row(i int) ([]float32, error) {
	if m.released {
		return nil, denseErrorf(ctxRow, i, 0, ErrReleased)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	start := i * m.c

	return m.data[start : start+m.c : start+m.c], nil
}

// RawData exposes the flat row-major buffer for in-module kernels and I/O.
// Callers must not retain it beyond the matrix lifetime.
func (m *Dense) RawData() []float32 { return m.data }

// Clone returns a deep copy; a clone of a released matrix is an empty 0×0 matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m.released {
		return &Dense{}
	}
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports exact (bitwise-value) equality of shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c || m.released != o.released {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Release destroys the matrix: the buffer is dropped and the shape becomes 0×0.
// Idempotent.
func (m *Dense) Release() {
	m.data = nil
	m.r, m.c = 0, 0
	m.released = true
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
