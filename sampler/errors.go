package sampler

import "errors"

var (
	// ErrInvalidInitialPoint is fatal: x0 lies outside the target's
	// support, or the target evaluator returns a non-finite log-target
	// at x0. No chain is produced.
	ErrInvalidInitialPoint = errors.New("sampler: initial point is invalid (out of support or non-finite log-target)")

	// ErrDimensionMismatch is fatal: the initial proposal covariance's
	// dimension does not match the initial point's.
	ErrDimensionMismatch = errors.New("sampler: covariance and initial point dimensions are inconsistent")

	// ErrInvalidConfig is fatal: a required configuration field was left
	// unset or internally inconsistent (e.g. chain size <= 0, or the
	// extra-stage scales slice length does not match the configured
	// number of extra DR stages).
	ErrInvalidConfig = errors.New("sampler: invalid configuration")

	// ErrProposalDrawFailed marks a DR level that could not establish a
	// valid pre-computing position; per §7 this terminates that DR
	// attempt with accept=false while the outer step proceeds. It is
	// never returned from Run; the condition is reported only to the
	// diagnostic hook, under the kind "proposal_draw_failed".
	ErrProposalDrawFailed = errors.New("sampler: transition kernel rejected a pre-computing position")
)
