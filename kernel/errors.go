package kernel

import "errors"

var (
	// ErrStageOutOfRange is returned by RV when stageID exceeds the
	// configured number of DR stages.
	ErrStageOutOfRange = errors.New("kernel: stage id out of range")

	// ErrInvalidScales signals that the stage-scale slice passed to
	// NewScaledCov is empty or does not start with 1 (stage 0 is always
	// the unscaled base covariance by definition).
	ErrInvalidScales = errors.New("kernel: stage scales must be non-empty and start with 1")

	// ErrHessianKernelUnimplemented marks the Hessian-based transition
	// kernel, which this spec iteration defines at interface level only.
	ErrHessianKernelUnimplemented = errors.New("kernel: Hessian transition kernel is not implemented")
)
