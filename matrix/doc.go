// Package matrix provides the dense linear-algebra primitives the DRAM
// sampler needs: row-major matrices, vectors, symmetry/PD checks and a
// Cholesky factorization used by the adaptive-Metropolis proposal refresh.
//
// What & Why:
//
//	The sampler never needs sparse storage, generic shapes beyond square
//	covariance matrices, or a Matrix interface abstracting over multiple
//	backends — a single concrete Dense type, row-major and flat-backed,
//	is enough and keeps the hot loop allocation-free where it matters.
//
// Complexity:
//
//	Rows()/Cols()/At()/Set() run in O(1). Clone() is O(r*c). Cholesky is
//	O(d^3) for a d x d matrix.
package matrix
