// Package chain provides the sampler's output buffer: a fixed-capacity,
// pre-allocated sequence of accepted positions, plus optional parallel
// sequences the caller can opt into at construction (log-likelihood,
// log-target, the unclamped alpha quotient, and the per-step accept
// flag — the last two are the supplemented diagnostic recording
// described in SPEC_FULL.md §7, grounded on the source's
// m_alphaQuotients array).
package chain
