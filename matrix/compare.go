// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// DefaultRelTol is the relative tolerance used when comparing the parallel
// and sequential products.
const DefaultRelTol = 1e-4

// DefaultAbsTol absorbs cancellation near zero, where a relative bound is meaningless.
const DefaultAbsTol = 1e-6

// AllClose reports whether every |a-b| <= absTol + relTol*max(|a|,|b|).
// Shapes must match (ErrDimensionMismatch); tolerances must be finite and >= 0
// (ErrInvalidTolerance). NaN never compares close.
// Complexity: O(r*c).
func AllClose(a, b *Dense, relTol, absTol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if !validTol(relTol) || !validTol(absTol) {
		return false, matrixErrorf("AllClose", fmt.Errorf("rel=%g abs=%g: %w", relTol, absTol, ErrInvalidTolerance))
	}
	for i, av := range a.data {
		x, y := float64(av), float64(b.data[i])
		if x == y {
			continue // exact match, including equal infinities
		}
		if math.Abs(x-y) > absTol+relTol*math.Max(math.Abs(x), math.Abs(y)) || math.IsNaN(x-y) {
			return false, nil
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a[i][j] - b[i][j]| (0 for empty matrices).
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var worst float64
	for i, av := range a.data {
		worst = math.Max(worst, math.Abs(float64(av)-float64(b.data[i])))
	}

	return worst, nil
}

func validTol(t float64) bool {
	return t >= 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}
