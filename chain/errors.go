package chain

import "errors"

var (
	// ErrInvalidCapacity is returned by NewBuffer for a non-positive N.
	ErrInvalidCapacity = errors.New("chain: capacity must be > 0")

	// ErrIndexOutOfBounds indicates a position index outside [0, N).
	ErrIndexOutOfBounds = errors.New("chain: index out of bounds")

	// ErrSeriesNotEnabled is returned when reading an optional parallel
	// sequence that was not requested at construction.
	ErrSeriesNotEnabled = errors.New("chain: optional series was not enabled for this buffer")
)
