// Package am implements the Adaptive Metropolis updater (§4.5): a running
// mean and covariance folded in from accepted-chain positions, plus the
// Cholesky-guarded proposal-covariance refresh that feeds a
// kernel.ScaledCov's base covariance.
package am
