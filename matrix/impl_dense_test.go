// Package matrix_test contains unit tests for the Dense store.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroSized checks that 0×N and N×0 shapes are legal and empty.
func TestNewDenseZeroSized(t *testing.T) {
	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Zero(t, m.Len())

	m, err = matrix.NewDense(4, 0)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Empty(t, m.RawData())
}

// TestNewDenseIsZeroFilled verifies the constructor's zero-initialisation.
func TestNewDenseIsZeroFilled(t *testing.T) {
	m := mustDense(t, 3, 4)
	for _, v := range m.RawData() {
		require.Zero(t, v)
	}
}

// TestAtSetOutOfBounds ensures At/Set/Row return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.25)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Row(2,0)")
}

// TestSetGetRowMajor validates Set/At and the row-major layout of RawData.
func TestSetGetRowMajor(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(7.5), v)
	require.Equal(t, float32(7.5), m.RawData()[1*3+2])
}

// TestRowIsView confirms Row returns a no-copy window capped at Cols().
func TestRowIsView(t *testing.T) {
	m := mustRows(t, [][]float32{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float32{3, 4}, row)
	require.Equal(t, 2, cap(row))

	row[0] = 30
	v, _ := m.At(1, 0)
	require.Equal(t, float32(30), v)
}

// TestNewDenseFrom covers adoption and the length guard.
func TestNewDenseFrom(t *testing.T) {
	buf := []float32{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, buf)
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	require.Equal(t, float32(4), v)

	buf[3] = 40 // adopted, not copied
	v, _ = m.At(1, 0)
	require.Equal(t, float32(40), v)

	_, err = matrix.NewDenseFrom(2, 2, buf)
	require.ErrorIs(t, err, matrix.ErrDataLength)

	_, err = matrix.NewDenseFrom(-2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseRowsRagged rejects rows of unequal length.
func TestNewDenseRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseRows([][]float32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	m, err := matrix.NewDenseRows(nil)
	require.NoError(t, err)
	require.Zero(t, m.Rows())
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float32{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3))
	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), orig)
	require.False(t, m.Equal(clone))
}

// TestReleaseLifecycle checks explicit destruction and post-release errors.
func TestReleaseLifecycle(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.False(t, m.Released())

	m.Release()
	m.Release() // idempotent
	require.True(t, m.Released())
	require.Zero(t, m.Rows())
	require.Zero(t, m.Cols())
	require.Nil(t, m.RawData())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrReleased)
	_, err = m.Row(0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.Zero(t, m.Clone().Len())
}

// TestString renders rows in a stable bracketed form.
func TestString(t *testing.T) {
	m := mustRows(t, [][]float32{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
