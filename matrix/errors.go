// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm should panic on
// user-triggered error conditions; panics are reserved for programmer
// errors in option constructors (see options.go).
package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric within eps")

	// ErrCholeskyFailed indicates the matrix is not positive-definite: a
	// non-positive (or non-finite) pivot was encountered during factorization.
	ErrCholeskyFailed = errors.New("matrix: cholesky factorization failed, matrix is not positive-definite")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
