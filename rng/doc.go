// Package rng provides the sampler's deterministic random source:
// xoshiro256** seeded via splitmix64. math/rand's default source is not
// specified to be stable across Go versions, which the chain's
// bit-identical-determinism property cannot tolerate; this package pins a
// specific, fully-specified generator instead.
//
// Complexity: Uint64/Float64/NormFloat64 all run in O(1) (NormFloat64 draws
// a bounded, typically-one, expected number of uniform pairs via a
// rejection step).
package rng
