package am

import (
	"fmt"

	"github.com/katalvlaran/dram/matrix"
)

// State is the Adaptive Metropolis running estimate (§3): a sample count,
// mean, and covariance, folded in from accepted chain positions. Lazily
// created at the first adaptation event (Seed), mutated at every
// subsequent event (Update).
type State struct {
	ChainSize float64
	Mean      matrix.Vector
	Cov       *matrix.Dense
}

// Seed initializes State from n >= 2 positions: the classic two-pass
// sample mean and covariance (denominator n-1).
func Seed(positions []matrix.Vector) (*State, error) {
	n := len(positions)
	if n < 2 {
		return nil, ErrInsufficientSamples
	}
	d := positions[0].Dim()

	mean, err := matrix.NewVector(d)
	if err != nil {
		return nil, err
	}
	for _, x := range positions {
		mean, err = mean.Add(x)
		if err != nil {
			return nil, fmt.Errorf("am.Seed: %w", err)
		}
	}
	mean = mean.Scale(1 / float64(n))

	cov, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	for _, x := range positions {
		diff, err := x.Sub(mean)
		if err != nil {
			return nil, fmt.Errorf("am.Seed: %w", err)
		}
		cov, err = cov.AddScaled(1, diff.Outer(diff))
		if err != nil {
			return nil, err
		}
	}
	cov = cov.Scale(1 / float64(n-1))

	return &State{ChainSize: float64(n), Mean: mean, Cov: cov}, nil
}

// Update folds newPositions into the running estimate, one at a time, per
// §4.5's incremental formula: for a position at global (0-based) chain
// index j, r1 = 1-1/j, r2 = 1/(j+1); cov = r1*cov + r2*diff*diff^T;
// mean += r2*diff, where diff is computed against the mean *before* this
// position's update. j starts at s.ChainSize for the first element of
// newPositions and increases by one per element — the caller's window is
// contiguous with the positions already folded into s, so the first new
// position's global index equals the pre-update ChainSize exactly (mirrors
// the original's idOfFirstPositionInSubChain == lastChainSize). ChainSize
// itself is only advanced once, after the whole batch, matching the
// source's "last_chain_size += n" placement outside the per-position loop.
func (s *State) Update(newPositions []matrix.Vector) error {
	for idx, x := range newPositions {
		j := s.ChainSize + float64(idx)
		r1 := 1 - 1/j
		r2 := 1 / (j + 1)

		diff, err := x.Sub(s.Mean)
		if err != nil {
			return fmt.Errorf("am.State.Update: %w", err)
		}

		scaledCov := s.Cov.Scale(r1)
		s.Cov, err = scaledCov.AddScaled(r2, diff.Outer(diff))
		if err != nil {
			return err
		}

		s.Mean, err = s.Mean.AddScaled(r2, diff)
		if err != nil {
			return err
		}
	}
	s.ChainSize += float64(len(newPositions))
	return nil
}

// RefreshProposalCov computes C_new = eta * Cov and attempts its Cholesky
// factorization. On failure it retries on eta*(Cov + epsilon*I). If that
// also fails, it returns ok=false: the caller must keep the TK's previous
// covariance (§4.5's "silently skipped" fallback; §9's numerical-fallback
// design note).
func (s *State) RefreshProposalCov(eta, epsilon float64) (candidate *matrix.Dense, ok bool) {
	scaled := s.Cov.Scale(eta)
	if _, err := matrix.Cholesky(scaled); err == nil {
		return scaled, true
	}

	id, err := matrix.Identity(s.Cov.Rows())
	if err != nil {
		return nil, false
	}
	ridged, err := s.Cov.AddScaled(epsilon, id)
	if err != nil {
		return nil, false
	}
	scaledRidged := ridged.Scale(eta)
	if _, err := matrix.Cholesky(scaledRidged); err == nil {
		return scaledRidged, true
	}

	return nil, false
}
