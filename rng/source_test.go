package rng_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dram/rng"
	"github.com/stretchr/testify/require"
)

func TestNewSource_Deterministic(t *testing.T) {
	a := rng.NewSource(42)
	b := rng.NewSource(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewSource_DifferentSeedsDiverge(t *testing.T) {
	a := rng.NewSource(1)
	b := rng.NewSource(2)

	require.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestFromState_RejectsAllZero(t *testing.T) {
	_, err := rng.FromState(0, 0, 0, 0)
	require.ErrorIs(t, err, rng.ErrZeroState)
}

func TestFromState_ResumesStream(t *testing.T) {
	src := rng.NewSource(7)
	_ = src.Uint64()
	_ = src.Uint64()
	s0, s1, s2, s3 := src.State()

	resumed, err := rng.FromState(s0, s1, s2, s3)
	require.NoError(t, err)
	require.Equal(t, src.Uint64(), resumed.Uint64())
}

func TestFloat64_InUnitInterval(t *testing.T) {
	src := rng.NewSource(123)
	for i := 0; i < 10000; i++ {
		f := src.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestNormFloat64_FiniteAndCentred(t *testing.T) {
	src := rng.NewSource(9)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		v := src.NormFloat64()
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		sum += v
	}
	mean := sum / n
	require.InDelta(t, 0.0, mean, 0.05)
}
