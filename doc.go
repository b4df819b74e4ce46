// Package dram implements a Delayed-Rejection Adaptive Metropolis (DRAM)
// MCMC sampler — ordinary Metropolis-Hastings combined with Haario et
// al.'s Delayed Rejection and Adaptive Metropolis extensions.
//
// The sampler is organized under per-concern subpackages:
//
//	matrix/   — dense matrices, Cholesky factorization, Gaussian density
//	rng/      — xoshiro256** PRNG with deterministic seeding
//	target/   — domain membership and log-target evaluation
//	kernel/   — Gaussian transition-kernel variants
//	dr/       — the Delayed-Rejection acceptance-ratio algebra
//	am/       — the Adaptive-Metropolis running mean/covariance estimate
//	chain/    — the fixed-capacity output buffer
//	runinfo/  — per-run diagnostics and phase timers
//	sampler/  — the outer loop composing all of the above
//
// A host builds a target.Adapter, an initial covariance, and a
// sampler.Config, then calls sampler.New followed by Sampler.Run to
// generate a chain.
package dram
