package kernel

import (
	"github.com/katalvlaran/dram/matrix"
	"github.com/katalvlaran/dram/rng"
)

// Proposal is a Gaussian distribution centred wherever the caller asks:
// a single factor serves every centre a DR step needs (current position,
// an earlier-stage candidate, or a pre-computing position).
type Proposal interface {
	// Sample draws centre + L*z for z ~ N(0, I), using src for the
	// underlying normal draws.
	Sample(src *rng.Source, centre matrix.Vector) (matrix.Vector, error)

	// LogPDF returns log N(x; centre, Σ) for this proposal's covariance Σ.
	LogPDF(centre, x matrix.Vector) (float64, error)
}

// TransitionKernel is the capability set every TK variant implements
// (§4.6, §9's tagged-variant re-expression of the source's class
// hierarchy).
type TransitionKernel interface {
	// RV returns the proposal distribution for the given DR stage id
	// (0 = the outer step's first proposal).
	RV(stageID int) (Proposal, error)

	// SetPreComputingPosition stores x keyed by localID ahead of a
	// recursion level and reports whether the TK could do so.
	SetPreComputingPosition(x matrix.Vector, localID int) bool

	// ClearPreComputingPositions empties the pre-computing table; called
	// at the start of each outer step.
	ClearPreComputingPositions()

	// Symmetric reports whether q(a->b) == q(b->a) for every stage,
	// selecting the §4.3 acceptance-ratio branch.
	Symmetric() bool
}
