package dr

import (
	"math"

	"github.com/katalvlaran/dram/kernel"
	"github.com/katalvlaran/dram/target"
)

// SingleStageAlpha computes the §4.3 two-point acceptance ratio between
// current position x (stage xStageID) and candidate y (stage yStageID).
// Returns the clamped acceptance probability and the unclamped quotient
// (useful for diagnostics; see §7, supplemented diagnostic recording).
func SingleStageAlpha(x, y target.Position, xStageID, yStageID int, tk kernel.TransitionKernel) (alpha, quotient float64, err error) {
	if x.OutOfSupport || y.OutOfSupport {
		return 0, 0, nil
	}
	if x.NonFinite() || y.NonFinite() {
		return 0, 0, nil
	}

	if tk.Symmetric() {
		quotient = math.Exp(y.LogTarget - x.LogTarget)
	} else {
		qxy, err := stagePDFAt(tk, xStageID, x.X, y.X)
		if err != nil {
			return 0, 0, err
		}
		qyx, err := stagePDFAt(tk, yStageID, y.X, x.X)
		if err != nil {
			return 0, 0, err
		}
		quotient = math.Exp(y.LogTarget + qyx - x.LogTarget - qxy)
	}

	return math.Min(1, quotient), quotient, nil
}

// ChainAlpha computes the §4.4 DRAM acceptance ratio for a DR ladder of
// m+1 steps (index 0 = current, index m = latest candidate). Implemented
// with ordinary Go recursion, explicit-stack-bounded by construction: the
// recursion depth never exceeds m, and m is bounded by the configured
// maximum number of extra DR stages K (small, typically <= 5).
func ChainAlpha(steps []Step, tk kernel.TransitionKernel) (float64, error) {
	m := len(steps) - 1
	if m < 1 {
		return 0, ErrInsufficientSteps
	}
	if m == 1 {
		alpha, _, err := SingleStageAlpha(steps[0].Position, steps[1].Position, steps[0].StageID, steps[1].StageID, tk)
		return alpha, err
	}

	p0 := steps[0].Position
	pm := steps[m].Position
	if p0.OutOfSupport || pm.OutOfSupport || p0.NonFinite() || pm.NonFinite() {
		return 0, nil
	}

	var logNum, logDen float64
	for j := 1; j < m; j++ {
		qDen, err := stagePDFAt(tk, steps[j].StageID, p0.X, steps[j].Position.X)
		if err != nil {
			return 0, err
		}
		// The numerator sums over the *reversed* ladder's j-th point
		// (steps[m-j]), per spec.md §4.4's stage_ids_reversed/position_reversed
		// definition — distinct from the denominator's forward-indexed term
		// above except when m <= 2, where steps[j] and steps[m-j] coincide.
		qNum, err := stagePDFAt(tk, steps[m-j].StageID, pm.X, steps[m-j].Position.X)
		if err != nil {
			return 0, err
		}
		logDen += qDen
		logNum += qNum
	}
	logNum += pm.LogTarget
	logDen += p0.LogTarget

	alphaNumProd := 1.0
	alphaDenProd := 1.0
	for k := 1; k < m; k++ {
		revPrefix := reversedPrefix(steps, k)
		a, err := ChainAlpha(revPrefix, tk)
		if err != nil {
			return 0, err
		}
		alphaNumProd *= 1 - a

		fwdPrefix := steps[:k+1]
		b, err := ChainAlpha(fwdPrefix, tk)
		if err != nil {
			return 0, err
		}
		alphaDenProd *= 1 - b
	}

	// alphaDenProd > 0 is guaranteed by DRAM construction (see spec design
	// notes): this path is only reached once every earlier-stage proposal
	// in the forward ladder was rejected, i.e. every forward prefix alpha
	// was < 1.
	ratio := (alphaNumProd / alphaDenProd) * math.Exp(logNum-logDen)
	return math.Min(1, ratio), nil
}

// AcceptAlpha decides acceptance from a computed alpha and a uniform draw
// u, mirroring the source's acceptAlpha: alpha<=0 always rejects, alpha>=1
// always accepts, otherwise accept iff alpha >= u.
func AcceptAlpha(alpha, u float64) bool {
	switch {
	case alpha <= 0:
		return false
	case alpha >= 1:
		return true
	default:
		return alpha >= u
	}
}

func stagePDFAt(tk kernel.TransitionKernel, stageID int, centre, x []float64) (float64, error) {
	prop, err := tk.RV(stageID)
	if err != nil {
		return 0, err
	}
	return prop.LogPDF(centre, x)
}

func reversedPrefix(steps []Step, k int) []Step {
	m := len(steps) - 1
	out := make([]Step, k+1)
	for i := 0; i <= k; i++ {
		out[i] = steps[m-i]
	}
	return out
}
