package chain

import (
	"fmt"

	"github.com/katalvlaran/dram/matrix"
)

// Buffer is the sampler's fixed-capacity output: N positions, written
// exactly once each in order by the driver, plus whichever optional
// parallel sequences were requested at construction.
type Buffer struct {
	positions []matrix.Vector

	logLikelihood  []float64
	logTarget      []float64
	alphaQuotients []float64
	accepted       []bool

	filled int
}

// NewBuffer allocates a Buffer for exactly n positions. Returns
// ErrInvalidCapacity if n <= 0.
func NewBuffer(n int, opts ...Option) (*Buffer, error) {
	if n <= 0 {
		return nil, ErrInvalidCapacity
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Buffer{positions: make([]matrix.Vector, n)}
	if cfg.logLikelihood {
		b.logLikelihood = make([]float64, n)
	}
	if cfg.logTarget {
		b.logTarget = make([]float64, n)
	}
	if cfg.alphaQuotients {
		b.alphaQuotients = make([]float64, n)
	}
	if cfg.accepted {
		b.accepted = make([]bool, n)
	}
	return b, nil
}

// Len returns the buffer's fixed capacity N.
func (b *Buffer) Len() int { return len(b.positions) }

// Set writes the committed sample at index i: the position, and whichever
// of the optional sequences this buffer was built with. Passing a value
// for a sequence the buffer does not carry is simply ignored.
func (b *Buffer) Set(i int, x matrix.Vector, logLikelihood, logTarget, alphaQuotient float64, accepted bool) error {
	if i < 0 || i >= len(b.positions) {
		return fmt.Errorf("chain.Buffer.Set: index %d: %w", i, ErrIndexOutOfBounds)
	}
	b.positions[i] = x
	if b.logLikelihood != nil {
		b.logLikelihood[i] = logLikelihood
	}
	if b.logTarget != nil {
		b.logTarget[i] = logTarget
	}
	if b.alphaQuotients != nil {
		b.alphaQuotients[i] = alphaQuotient
	}
	if b.accepted != nil {
		b.accepted[i] = accepted
	}
	if i+1 > b.filled {
		b.filled = i + 1
	}
	return nil
}

// Filled returns how many leading positions have been written so far —
// the length of a partial chain if generation was interrupted between
// positions (§5's partial-chain consistency guarantee).
func (b *Buffer) Filled() int { return b.filled }

// Position returns the sample written at index i.
func (b *Buffer) Position(i int) (matrix.Vector, error) {
	if i < 0 || i >= len(b.positions) {
		return nil, fmt.Errorf("chain.Buffer.Position: index %d: %w", i, ErrIndexOutOfBounds)
	}
	return b.positions[i], nil
}

// LogLikelihood returns the log-likelihood sequence, or ErrSeriesNotEnabled
// if the buffer was not built with WithLogLikelihood.
func (b *Buffer) LogLikelihood() ([]float64, error) {
	if b.logLikelihood == nil {
		return nil, ErrSeriesNotEnabled
	}
	return b.logLikelihood, nil
}

// LogTarget returns the log-target sequence, or ErrSeriesNotEnabled.
func (b *Buffer) LogTarget() ([]float64, error) {
	if b.logTarget == nil {
		return nil, ErrSeriesNotEnabled
	}
	return b.logTarget, nil
}

// AlphaQuotients returns the unclamped-ratio sequence, or
// ErrSeriesNotEnabled.
func (b *Buffer) AlphaQuotients() ([]float64, error) {
	if b.alphaQuotients == nil {
		return nil, ErrSeriesNotEnabled
	}
	return b.alphaQuotients, nil
}

// Accepted returns the per-position accept-flag sequence, or
// ErrSeriesNotEnabled.
func (b *Buffer) Accepted() ([]bool, error) {
	if b.accepted == nil {
		return nil, ErrSeriesNotEnabled
	}
	return b.accepted, nil
}
