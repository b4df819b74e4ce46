// Package dr implements the acceptance-ratio algebra shared by plain
// Metropolis-Hastings and Delayed Rejection: the single-stage ratio
// (§4.3) and the recursive multi-stage DRAM ratio (§4.4). Both operate
// purely on target.Position values and a kernel.TransitionKernel; neither
// draws proposals nor decides whether to continue the DR ladder — that is
// the sampler driver's job.
package dr
