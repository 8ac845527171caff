// SPDX-License-Identifier: MIT

// Package matrix provides the dense single-precision matrix store and the
// sequential reference product used by parmatmul.
//
// The package provides:
//
//   - Dense, a row-major float32 matrix over one flat buffer with
//     bounds-checked accessors and an explicit Release lifecycle.
//   - Mul, the classic i-j-k triple-loop product, and MulRows, the row-range
//     kernel shared with the parallel executor so both strategies accumulate
//     in exactly the same order.
//   - Central validators (ValidateMulCompatible, ...) and tolerance helpers
//     (AllClose, MaxAbsDiff) used by the verification step and tests.
//
// All public operations return sentinel errors from errors.go (match them with
// errors.Is); nothing panics on user-triggered conditions.
package matrix
