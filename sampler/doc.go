// Package sampler drives the outer DRAM loop (§4.1): propose, evaluate,
// decide, optionally delay-reject, commit, and maybe adapt. It composes
// matrix, rng, target, kernel, dr, am, chain and runinfo into the single
// entry point a host calls to generate a chain.
//
// Construction validates static configuration eagerly (panicking on
// nonsensical option values, exactly as matrix.WithEpsilon does) but
// returns ordinary errors for conditions that depend on runtime data —
// an out-of-support initial point, or mismatched dimensions — since a
// caller must be able to recover from those without crashing the host
// process.
package sampler
