package kernel

import "github.com/katalvlaran/dram/matrix"

// Hessian is the local-precision transition-kernel variant: §3 and §9
// describe it only at design level for this iteration ("builds a Gaussian
// proposal from a local precision at a pre-computing position"). This
// type exists so TransitionKernel has a discoverable second
// implementation point. RV reports ErrHessianKernelUnimplemented rather
// than silently behaving like ScaledCov; SetPreComputingPosition always
// reports false, ClearPreComputingPositions does nothing, and Symmetric
// reports false. A sampler built with TKUseLocalHessian set fails on its
// first step, when RV is called.
type Hessian struct{}

// NewHessian returns an unimplemented Hessian kernel.
func NewHessian() *Hessian { return &Hessian{} }

func (h *Hessian) Symmetric() bool { return false }

func (h *Hessian) RV(stageID int) (Proposal, error) {
	return nil, ErrHessianKernelUnimplemented
}

func (h *Hessian) SetPreComputingPosition(x matrix.Vector, localID int) bool {
	return false
}

func (h *Hessian) ClearPreComputingPositions() {}
