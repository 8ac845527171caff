// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
)

// TestValidateMulCompatible walks the fixed check order nil → released → shape.
func TestValidateMulCompatible(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 3, 4)
	require.NoError(t, matrix.ValidateMulCompatible(a, b))

	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)

	dead := mustDense(t, 3, 4)
	dead.Release()
	err := matrix.ValidateMulCompatible(a, dead)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape(mustDense(t, 2, 2), mustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateSameShape(mustDense(t, 2, 2), mustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateLive(nil), matrix.ErrNilMatrix)
}
