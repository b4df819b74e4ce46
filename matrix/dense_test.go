package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dram/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_Clone_Independent(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 1)
	c := m.Clone()
	_ = c.Set(0, 0, 99)

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestDense_IsSymmetric(t *testing.T) {
	sym, err := matrix.FromRows([][]float64{{2, 1}, {1, 3}})
	require.NoError(t, err)
	require.True(t, sym.IsSymmetric(1e-9))

	asym, err := matrix.FromRows([][]float64{{2, 1}, {0, 3}})
	require.NoError(t, err)
	require.False(t, asym.IsSymmetric(1e-9))
}

func TestDense_AddScaled(t *testing.T) {
	a, _ := matrix.Identity(2)
	b, _ := matrix.FromRows([][]float64{{1, 1}, {1, 1}})

	out, err := a.AddScaled(2, b)
	require.NoError(t, err)
	v, _ := out.At(0, 1)
	require.Equal(t, 2.0, v)
	v, _ = out.At(0, 0)
	require.Equal(t, 3.0, v)
}

func TestDense_FrobeniusDistance(t *testing.T) {
	a, _ := matrix.Identity(2)
	b, _ := matrix.NewDense(2, 2)

	d, err := a.FrobeniusDistance(b)
	require.NoError(t, err)
	require.InDelta(t, 1.4142135, d, 1e-6)
}

func TestDense_MulVec_DimensionMismatch(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_, err := m.MulVec(matrix.Vector{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
