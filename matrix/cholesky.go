package matrix

import (
	"fmt"
	"math"
)

// Cholesky performs the Cholesky-Banachiewicz factorization of a symmetric
// positive-definite matrix A, returning the lower-triangular L such that
// A = L * L^T. Returns ErrNonSquare if A is not square, ErrCholeskyFailed
// if a non-positive (or non-finite) pivot is encountered — the standard
// symptom of a non-PD input.
//
// This is the Cholesky analogue of the Doolittle LU decomposition this
// package's ancestor implemented for graph adjacency matrices: same
// row-by-row elimination structure, specialized to a symmetric pivot and a
// single output factor.
// Time Complexity: O(n^3); Memory: O(n^2) for L.
func Cholesky(a *Dense) (*Dense, error) {
	n := a.Rows()
	if !a.IsSquare() {
		return nil, fmt.Errorf("matrix.Cholesky: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}

	L, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sum float64
			for k := 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			aij := a.data[i*n+j]
			if i == j {
				diag := aij - sum
				if diag <= 0 || math.IsNaN(diag) || math.IsInf(diag, 0) {
					return nil, ErrCholeskyFailed
				}
				L.data[i*n+j] = math.Sqrt(diag)
			} else {
				L.data[i*n+j] = (aij - sum) / L.data[j*n+j]
			}
		}
	}

	return L, nil
}

// SampleStandardNormal draws a vector z of d independent N(0,1) values using
// drawNormal (e.g. rng.Source.NormFloat64), then returns centre + L*z,
// i.e. a draw from N(centre, L*L^T). L is typically the Cholesky factor of
// a proposal covariance.
func (l *Dense) SampleStandardNormal(centre Vector, drawNormal func() float64) (Vector, error) {
	n := l.Rows()
	if len(centre) != n {
		return nil, fmt.Errorf("matrix.Dense.SampleStandardNormal: centre dim %d vs %d: %w", len(centre), n, ErrDimensionMismatch)
	}
	z := make(Vector, n)
	for i := range z {
		z[i] = drawNormal()
	}
	lz, err := l.MulVec(z)
	if err != nil {
		return nil, err
	}
	return centre.Add(lz)
}
