package am

import "errors"

// ErrInsufficientSamples is returned by Seed when fewer than two
// positions are supplied — a sample covariance needs n >= 2.
var ErrInsufficientSamples = errors.New("am: Seed requires at least two positions")
