package rng

import "errors"

// ErrZeroState is returned by FromState when all four state words are zero,
// the one input xoshiro256** cannot recover from (its output would be an
// all-zero stream forever).
var ErrZeroState = errors.New("rng: all-zero state is invalid for xoshiro256**")
