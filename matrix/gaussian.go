package matrix

import (
	"fmt"
	"math"
)

// ForwardSolve solves L*y = b for y, where L is lower-triangular (as
// produced by Cholesky). Used to evaluate a Gaussian log-density without
// forming an explicit inverse.
func (l *Dense) ForwardSolve(b Vector) (Vector, error) {
	n := l.Rows()
	if !l.IsSquare() || len(b) != n {
		return nil, fmt.Errorf("matrix.Dense.ForwardSolve: %dx%d vs dim %d: %w", l.Rows(), l.Cols(), len(b), ErrDimensionMismatch)
	}
	y := make(Vector, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= l.data[i*n+j] * y[j]
		}
		diag := l.data[i*n+i]
		if diag == 0 {
			return nil, ErrCholeskyFailed
		}
		y[i] = sum / diag
	}
	return y, nil
}

// GaussianLogPDF returns log N(x; mean, L*L^T), given the Cholesky factor L
// of the covariance. This is the q(a->b) term the DR recursion (§4.4) and
// the asymmetric single-stage ratio (§4.3 rule 4) both need.
func GaussianLogPDF(x, mean Vector, l *Dense) (float64, error) {
	n := l.Rows()
	diff, err := x.Sub(mean)
	if err != nil {
		return 0, err
	}
	y, err := l.ForwardSolve(diff)
	if err != nil {
		return 0, err
	}
	var quad float64
	for _, yi := range y {
		quad += yi * yi
	}
	var logDetHalf float64
	for i := 0; i < n; i++ {
		logDetHalf += math.Log(l.data[i*n+i])
	}
	return -0.5*float64(n)*math.Log(2*math.Pi) - logDetHalf - 0.5*quad, nil
}
