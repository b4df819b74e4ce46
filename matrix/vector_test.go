package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dram/matrix"
	"github.com/stretchr/testify/require"
)

func TestVector_AddSub(t *testing.T) {
	a := matrix.Vector{1, 2, 3}
	b := matrix.Vector{3, 2, 1}

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{4, 4, 4}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{-2, 0, 2}, diff)
}

func TestVector_DimensionMismatch(t *testing.T) {
	a := matrix.Vector{1, 2}
	b := matrix.Vector{1, 2, 3}

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Dot(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.AddScaled(1, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVector_Dot(t *testing.T) {
	a := matrix.Vector{1, 2, 3}
	b := matrix.Vector{4, 5, 6}

	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)
}

func TestVector_Outer(t *testing.T) {
	a := matrix.Vector{1, 2}
	b := matrix.Vector{3, 4}

	out := a.Outer(b)
	v, err := out.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	v, err = out.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestVector_Clone_Independent(t *testing.T) {
	a := matrix.Vector{1, 2, 3}
	c := a.Clone()
	c[0] = 99
	require.Equal(t, 1.0, a[0])
}
