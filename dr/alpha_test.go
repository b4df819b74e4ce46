package dr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dram/dr"
	"github.com/katalvlaran/dram/kernel"
	"github.com/katalvlaran/dram/matrix"
	"github.com/katalvlaran/dram/target"
	"github.com/stretchr/testify/require"
)

func standardScaledCov(t *testing.T, scales []float64) *kernel.ScaledCov {
	id, err := matrix.Identity(1)
	require.NoError(t, err)
	tk, err := kernel.NewScaledCov(id, scales)
	require.NoError(t, err)
	return tk
}

func TestSingleStageAlpha_OutOfSupport(t *testing.T) {
	tk := standardScaledCov(t, []float64{1})
	x := target.Position{X: matrix.Vector{0}, LogTarget: -1}
	y := target.OutOfSupportPosition(matrix.Vector{5})

	alpha, quot, err := dr.SingleStageAlpha(x, y, 0, 0, tk)
	require.NoError(t, err)
	require.Equal(t, 0.0, alpha)
	require.Equal(t, 0.0, quot)
}

func TestSingleStageAlpha_NonFinite(t *testing.T) {
	tk := standardScaledCov(t, []float64{1})
	x := target.Position{X: matrix.Vector{0}, LogTarget: -1}
	y := target.Position{X: matrix.Vector{1}, LogTarget: math.NaN()}

	alpha, _, err := dr.SingleStageAlpha(x, y, 0, 0, tk)
	require.NoError(t, err)
	require.Equal(t, 0.0, alpha)
}

func TestSingleStageAlpha_Symmetric(t *testing.T) {
	tk := standardScaledCov(t, []float64{1})
	x := target.Position{X: matrix.Vector{0}, LogTarget: -2}
	y := target.Position{X: matrix.Vector{1}, LogTarget: -1}

	alpha, quot, err := dr.SingleStageAlpha(x, y, 0, 0, tk)
	require.NoError(t, err)
	require.InDelta(t, math.Exp(1), quot, 1e-12)
	require.Equal(t, 1.0, alpha) // quotient > 1, clamped
}

func TestChainAlpha_M1DelegatesToSingleStage(t *testing.T) {
	tk := standardScaledCov(t, []float64{1, 0.5})
	x := target.Position{X: matrix.Vector{0}, LogTarget: -2}
	y := target.Position{X: matrix.Vector{1}, LogTarget: -3}

	steps := []dr.Step{{Position: x, StageID: 0}, {Position: y, StageID: 1}}
	alpha, err := dr.ChainAlpha(steps, tk)
	require.NoError(t, err)

	want, _, err := dr.SingleStageAlpha(x, y, 0, 1, tk)
	require.NoError(t, err)
	require.Equal(t, want, alpha)
}

func TestChainAlpha_DegenerateEndpoint(t *testing.T) {
	tk := standardScaledCov(t, []float64{1, 0.5, 0.25})
	x := target.Position{X: matrix.Vector{0}, LogTarget: -2}
	mid := target.Position{X: matrix.Vector{1}, LogTarget: -3}
	y := target.OutOfSupportPosition(matrix.Vector{5})

	steps := []dr.Step{{Position: x, StageID: 0}, {Position: mid, StageID: 1}, {Position: y, StageID: 2}}
	alpha, err := dr.ChainAlpha(steps, tk)
	require.NoError(t, err)
	require.Equal(t, 0.0, alpha)
}

func TestChainAlpha_ThreeStepRunsWithoutError(t *testing.T) {
	tk := standardScaledCov(t, []float64{1, 0.5, 0.25})
	x := target.Position{X: matrix.Vector{0}, LogTarget: -2}
	mid := target.Position{X: matrix.Vector{1}, LogTarget: -2.5}
	y := target.Position{X: matrix.Vector{0.5}, LogTarget: -1.8}

	steps := []dr.Step{{Position: x, StageID: 0}, {Position: mid, StageID: 1}, {Position: y, StageID: 2}}
	alpha, err := dr.ChainAlpha(steps, tk)
	require.NoError(t, err)
	require.GreaterOrEqual(t, alpha, 0.0)
	require.LessOrEqual(t, alpha, 1.0)
}

// TestChainAlpha_FourStepNumeratorUsesReversedLadder independently
// reassembles the §4.4 four-step (m=3) acceptance ratio — denominator
// terms anchored at p0 using steps[j], numerator terms anchored at pm
// using the *reversed* ladder's steps[m-j] — via exported primitives, and
// checks ChainAlpha agrees. steps[1] and steps[2] are deliberately
// distinct, and so are the stage scales, so a numerator that paired one
// step's stage id with the other step's position would diverge from this
// computation.
func TestChainAlpha_FourStepNumeratorUsesReversedLadder(t *testing.T) {
	tk := standardScaledCov(t, []float64{1, 0.5, 0.25, 0.1})

	p0 := target.Position{X: matrix.Vector{0}, LogTarget: -2.0}
	s1 := target.Position{X: matrix.Vector{1}, LogTarget: -2.5}
	s2 := target.Position{X: matrix.Vector{-1}, LogTarget: -2.2}
	pm := target.Position{X: matrix.Vector{0.5}, LogTarget: -1.8}
	steps := []dr.Step{
		{Position: p0, StageID: 0},
		{Position: s1, StageID: 1},
		{Position: s2, StageID: 2},
		{Position: pm, StageID: 3},
	}

	logPDF := func(stageID int, centre, x matrix.Vector) float64 {
		prop, err := tk.RV(stageID)
		require.NoError(t, err)
		v, err := prop.LogPDF(centre, x)
		require.NoError(t, err)
		return v
	}

	logDen := logPDF(1, p0.X, s1.X) + logPDF(2, p0.X, s2.X) + p0.LogTarget
	logNum := logPDF(2, pm.X, s2.X) + logPDF(1, pm.X, s1.X) + pm.LogTarget

	revAlpha1, err := dr.ChainAlpha([]dr.Step{{Position: pm, StageID: 3}, {Position: s2, StageID: 2}}, tk)
	require.NoError(t, err)
	revAlpha2, err := dr.ChainAlpha([]dr.Step{{Position: pm, StageID: 3}, {Position: s2, StageID: 2}, {Position: s1, StageID: 1}}, tk)
	require.NoError(t, err)
	fwdAlpha1, err := dr.ChainAlpha([]dr.Step{{Position: p0, StageID: 0}, {Position: s1, StageID: 1}}, tk)
	require.NoError(t, err)
	fwdAlpha2, err := dr.ChainAlpha([]dr.Step{{Position: p0, StageID: 0}, {Position: s1, StageID: 1}, {Position: s2, StageID: 2}}, tk)
	require.NoError(t, err)

	numProd := (1 - revAlpha1) * (1 - revAlpha2)
	denProd := (1 - fwdAlpha1) * (1 - fwdAlpha2)
	want := math.Min(1, (numProd/denProd)*math.Exp(logNum-logDen))

	got, err := dr.ChainAlpha(steps, tk)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-9)
}

func TestChainAlpha_InsufficientSteps(t *testing.T) {
	tk := standardScaledCov(t, []float64{1})
	_, err := dr.ChainAlpha([]dr.Step{{Position: target.Position{X: matrix.Vector{0}}}}, tk)
	require.ErrorIs(t, err, dr.ErrInsufficientSteps)
}

func TestAcceptAlpha(t *testing.T) {
	require.False(t, dr.AcceptAlpha(0, 0.5))
	require.True(t, dr.AcceptAlpha(1, 0.999))
	require.True(t, dr.AcceptAlpha(0.5, 0.4))
	require.False(t, dr.AcceptAlpha(0.5, 0.6))
}
