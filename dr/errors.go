package dr

import "errors"

// ErrInsufficientSteps is returned by ChainAlpha when fewer than two steps
// are supplied — a DRAM ratio needs at least a current position and one
// candidate.
var ErrInsufficientSteps = errors.New("dr: ChainAlpha requires at least two steps")
