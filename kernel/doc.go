// Package kernel implements the sampler's transition kernel (TK): the
// proposal distribution at each delayed-rejection stage, plus the
// transient "pre-computing position" table a TK may use to cache derived
// quantities ahead of a recursion level.
//
// Two shapes exist per the design notes' tagged-variant re-expression of
// the source's class hierarchy: ScaledCov (implemented) and Hessian
// (declared at interface level only — see hessian.go).
package kernel
