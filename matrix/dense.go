package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major, flat-backed matrix of float64 values: r rows, c
// columns, data holding r*c elements. The sampler only ever instantiates
// square Dense values (covariance and precision matrices); Rows/Cols stay
// independent rather than collapsing to a single "dimension" so the
// dimension-mismatch errors below can report both operands' full shape.
type Dense struct {
	r, c int
	data []float64
}

// boundsErrorf wraps ErrIndexOutOfBounds with the offending method and
// coordinates, so a caller debugging a covariance-matrix panic sees which
// accessor tripped it rather than a bare "At" regardless of the call site.
func boundsErrorf(method string, row, col int) error {
	return fmt.Errorf("matrix.Dense.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
}

// NewDense allocates an r x c matrix of zeros — the starting point for a
// freshly seeded AM covariance or a proposal's zero-initialized scratch
// matrix. Returns ErrInvalidDimensions if either dimension is non-positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n x n identity matrix, the ridge term AM adds to a
// covariance that failed its Cholesky factorization (§4.5's epsilon*I
// fallback).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// FromRows builds a Dense matrix from row-major nested slices, the usual
// way a test or caller hands the sampler a literal initial covariance.
// All rows must have equal, positive length.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("matrix.FromRows: row %d has length %d, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col), or ErrIndexOutOfBounds.
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, boundsErrorf("At", row, col)
	}
	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col), or returns ErrIndexOutOfBounds.
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return boundsErrorf("Set", row, col)
	}
	m.data[row*m.c+col] = v
	return nil
}

// Clone returns a deep copy, used wherever a Cholesky candidate or ridge
// adjustment must be tried without mutating the kernel's live covariance
// until the attempt has been validated (§4.5).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Scale returns m scaled by s, the workhorse behind every stage-scale
// proposal (s_k * C) and AM's eta*Cov refresh.
func (m *Dense) Scale(s float64) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Add returns m + other. Both operands must share dimensions.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m.r != other.r || m.c != other.c {
		return nil, fmt.Errorf("matrix.Dense.Add: %dx%d + %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out, nil
}

// AddScaled returns m + s*other, the rank-one covariance fold-in
// (cov + r2*diff*diffT) and the ridge correction (Cov + epsilon*I)
// without allocating an intermediate scaled matrix.
func (m *Dense) AddScaled(s float64, other *Dense) (*Dense, error) {
	if m.r != other.r || m.c != other.c {
		return nil, fmt.Errorf("matrix.Dense.AddScaled: %dx%d + %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += s * other.data[i]
	}
	return out, nil
}

// IsSquare reports whether the matrix has equal row and column counts —
// every covariance and precision matrix the sampler builds must satisfy
// this before Cholesky can run.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsSymmetric reports whether m equals its transpose within eps, the
// sanity check a covariance-refresh candidate should pass before it is
// handed to Cholesky.
func (m *Dense) IsSymmetric(eps float64) bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if d := math.Abs(m.data[i*m.c+j] - m.data[j*m.c+i]); d > eps {
				return false
			}
		}
	}
	return true
}

// FrobeniusDistance returns ||m - other||_F, used by tests and by a
// caller's convergence diagnostics to track how far AM's running
// covariance has moved between adaptation events.
func (m *Dense) FrobeniusDistance(other *Dense) (float64, error) {
	if m.r != other.r || m.c != other.c {
		return 0, fmt.Errorf("matrix.Dense.FrobeniusDistance: %dx%d vs %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch)
	}
	var sumSq float64
	for i := range m.data {
		d := m.data[i] - other.data[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq), nil
}

// String renders m row by row, one bracketed row per line, for diagnostic
// printing of a covariance or proposal matrix.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			if j > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
		}
		s += "]\n"
	}
	return s
}
