// SPDX-License-Identifier: MIT
// Package matrix: sequential reference product.
//
// Purpose:
//   - Mul is the single-threaded baseline used both for correctness checks and
//     as the second timing sample.
//   - MulRows is the row-range kernel. Mul runs it over [0, m); every parallel
//     worker runs it over its own partition. Sharing one kernel keeps the
//     float32 accumulation order identical across strategies.
//
// Determinism:
//   - Fixed i → j → t loop order; accumulation starts from ZeroSum.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum float32 = 0

// Operation tags for unified error wrapping.
const (
	opMul     = "Mul"
	opMulRows = "MulRows"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A × B with the classic triple loop in one execution context.
// Implementation:
//   - Stage 1: ValidateMulCompatible.
//   - Stage 2: allocate C (m×n) and run MulRows over all rows.
//
// Inputs:
//   - a: m×k, b: k×n. Neither is mutated.
//
// Returns:
//   - *Dense: fresh m×n result owned by the caller.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	m, k, n := a.r, a.c, b.c
	res, err := NewDense(m, n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	MulRows(a.data, b.data, res.data, k, n, 0, m)

	return res, nil
}

// MulRows writes rows [start, end) of C = A × B into dst.
//
// Layout contract (all row-major, flat):
//   - a holds A with k columns (row i at a[i*k:(i+1)*k]),
//   - b holds B as k×n,
//   - dst holds C with n columns; only dst[start*n : end*n] is written.
//
// Each C[i][j] is the straightforward dot product of A's row i and B's column j,
// accumulated in float32. No blocking or tiling. The function never reads dst,
// so concurrent calls over disjoint [start, end) ranges need no locking.
// An empty range (start == end) is a no-op.
//
// Complexity: Time O((end-start)*n*k), Space O(1).
func MulRows(a, b, dst []float32, k, n, start, end int) {
	var (
		i, j, t int
		sum     float32
		aRow    []float32
		cRow    []float32
	)
	for i = start; i < end; i++ {
		aRow = a[i*k : (i+1)*k]
		cRow = dst[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for t = 0; t < k; t++ {
				sum += aRow[t] * b[t*n+j]
			}
			cRow[j] = sum
		}
	}
}

// CheckRowsArgs validates the MulRows layout contract for callers that
// receive raw buffers (e.g. a worker process mapping a shared region).
// Returns ErrDataLength or ErrOutOfRange wrapped with "MulRows".
func CheckRowsArgs(a, b, dst []float32, m, k, n, start, end int) error {
	if m < 0 || k < 0 || n < 0 {
		return matrixErrorf(opMulRows, ErrInvalidDimensions)
	}
	if len(a) != m*k || len(b) != k*n || len(dst) != m*n {
		return matrixErrorf(opMulRows,
			fmt.Errorf("len(a)=%d len(b)=%d len(dst)=%d for m=%d k=%d n=%d: %w",
				len(a), len(b), len(dst), m, k, n, ErrDataLength))
	}
	if start < 0 || end < start || end > m {
		return matrixErrorf(opMulRows, fmt.Errorf("rows [%d,%d) of %d: %w", start, end, m, ErrOutOfRange))
	}

	return nil
}
