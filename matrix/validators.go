// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and the parallel executor minimal by delegating nil/lifecycle/shape checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil and has not been released.
//
// Returns ErrNilMatrix or ErrReleased.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if m.released {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateSameShape ensures a and b are live and have equal dimensions.
//
// Return: nil or wrapped ErrNilMatrix/ErrReleased/ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks that a×b is defined: both live and a.Cols == b.Rows.
// A violated pair is an input-validation failure, detected before any computation.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch (message carries both shapes).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: A is %dx%d, B is %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch)
	}

	return nil
}
