package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dram/matrix"
	"github.com/katalvlaran/dram/rng"
)

// ScaledCov is the scaled-covariance transition kernel (§3, §4.6): a base
// covariance C and an ordered list of stage scales s_0=1, s_1, …, s_K.
// Stage k proposes N(centre, s_k * C). It is symmetric, so the driver's
// §4.3 rule 3 branch always applies to it.
type ScaledCov struct {
	base   *matrix.Dense
	chol   *matrix.Dense // cached Cholesky factor of base
	scales []float64

	preComputing map[int]matrix.Vector
}

// NewScaledCov builds a ScaledCov from a base covariance and stage-scale
// list. scales[0] must be 1 (stage 0 proposes from the unscaled base).
// Returns ErrInvalidScales or a matrix error if base is not a valid
// covariance (non-square or not positive-definite).
func NewScaledCov(base *matrix.Dense, scales []float64) (*ScaledCov, error) {
	if len(scales) == 0 || scales[0] != 1 {
		return nil, ErrInvalidScales
	}
	chol, err := matrix.Cholesky(base)
	if err != nil {
		return nil, fmt.Errorf("kernel.NewScaledCov: %w", err)
	}
	return &ScaledCov{
		base:         base,
		chol:         chol,
		scales:       append([]float64(nil), scales...),
		preComputing: make(map[int]matrix.Vector),
	}, nil
}

// Symmetric implements TransitionKernel.
func (s *ScaledCov) Symmetric() bool { return true }

// NumStages returns the number of configured stages, including stage 0.
func (s *ScaledCov) NumStages() int { return len(s.scales) }

// BaseCov returns the kernel's current base covariance matrix.
func (s *ScaledCov) BaseCov() *matrix.Dense { return s.base }

// UpdateBaseCov replaces the base covariance and recomputes its cached
// Cholesky factor. The AM updater (§4.5) is responsible for having
// already validated Cnew's positive-definiteness (with its epsilon-ridge
// fallback); this call still propagates a factorization error rather than
// silently keeping stale state, so a caller that skips that validation
// finds out immediately.
func (s *ScaledCov) UpdateBaseCov(cNew *matrix.Dense) error {
	chol, err := matrix.Cholesky(cNew)
	if err != nil {
		return fmt.Errorf("kernel.ScaledCov.UpdateBaseCov: %w", err)
	}
	s.base = cNew
	s.chol = chol
	return nil
}

// SetPreComputingPosition implements TransitionKernel. Always succeeds
// for ScaledCov: it has no Hessian or other local structure to fail on.
func (s *ScaledCov) SetPreComputingPosition(x matrix.Vector, localID int) bool {
	s.preComputing[localID] = x.Clone()
	return true
}

// ClearPreComputingPositions implements TransitionKernel.
func (s *ScaledCov) ClearPreComputingPositions() {
	for k := range s.preComputing {
		delete(s.preComputing, k)
	}
}

// PreComputingPosition returns the position stored under localID, if any.
func (s *ScaledCov) PreComputingPosition(localID int) (matrix.Vector, bool) {
	x, ok := s.preComputing[localID]
	return x, ok
}

// RV implements TransitionKernel.
func (s *ScaledCov) RV(stageID int) (Proposal, error) {
	if stageID < 0 || stageID >= len(s.scales) {
		return nil, fmt.Errorf("kernel.ScaledCov.RV: stage %d: %w", stageID, ErrStageOutOfRange)
	}
	scale := s.scales[stageID]
	return &scaledCovProposal{scaledChol: s.chol.Scale(math.Sqrt(scale)), scale: scale, base: s.base}, nil
}

// scaledCovProposal is N(centre, scale*base); scaledChol is the Cholesky
// factor of scale*base, obtained by scaling base's factor by sqrt(scale)
// rather than refactorizing (valid since Cholesky(a*M) = sqrt(a)*Cholesky(M)
// for a scalar a > 0).
type scaledCovProposal struct {
	scaledChol *matrix.Dense
	scale      float64
	base       *matrix.Dense
}

func (p *scaledCovProposal) Sample(src *rng.Source, centre matrix.Vector) (matrix.Vector, error) {
	return p.scaledChol.SampleStandardNormal(centre, src.NormFloat64)
}

func (p *scaledCovProposal) LogPDF(centre, x matrix.Vector) (float64, error) {
	return matrix.GaussianLogPDF(x, centre, p.scaledChol)
}
