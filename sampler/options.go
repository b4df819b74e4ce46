package sampler

import "github.com/katalvlaran/dram/target"

// WithRawChainSize sets N. Panics if n <= 0 — there is no sensible
// default chain length.
func WithRawChainSize(n int) Option {
	if n <= 0 {
		panic("sampler: WithRawChainSize(n<=0)")
	}
	return func(c *Config) { c.RawChainSize = n }
}

// WithDelayedRejection sets the maximum number of extra DR stages K and
// their stage-scale multipliers s_1..s_K. Panics if k < 0, if len(scales)
// != k, or if any scale is <= 0.
func WithDelayedRejection(k int, scales []float64) Option {
	if k < 0 {
		panic("sampler: WithDelayedRejection(k<0)")
	}
	if len(scales) != k {
		panic("sampler: WithDelayedRejection: len(scales) must equal k")
	}
	for _, s := range scales {
		if s <= 0 {
			panic("sampler: WithDelayedRejection: scales must be > 0")
		}
	}
	return func(c *Config) {
		c.DRMaxNumExtraStages = k
		c.DRScalesForExtraStages = append([]float64(nil), scales...)
	}
}

// WithLocalHessianKernel selects the Hessian transition-kernel variant.
func WithLocalHessianKernel() Option {
	return func(c *Config) { c.TKUseLocalHessian = true }
}

// WithAdaptiveMetropolis sets the AM schedule (seed step, cadence) and
// tuning constants (eta, epsilon). Panics on negative intervals or
// non-positive eta/epsilon.
func WithAdaptiveMetropolis(initialNonAdaptInterval, adaptInterval int, eta, epsilon float64) Option {
	if initialNonAdaptInterval < 0 || adaptInterval < 0 {
		panic("sampler: WithAdaptiveMetropolis: intervals must be >= 0")
	}
	if eta <= 0 {
		panic("sampler: WithAdaptiveMetropolis: eta must be > 0")
	}
	if epsilon <= 0 {
		panic("sampler: WithAdaptiveMetropolis: epsilon must be > 0")
	}
	return func(c *Config) {
		c.AMInitialNonAdaptInterval = initialNonAdaptInterval
		c.AMAdaptInterval = adaptInterval
		c.AMEta = eta
		c.AMEpsilon = epsilon
	}
}

// WithDRDuringAMNonAdaptive allows DR to run during the AM warmup window.
func WithDRDuringAMNonAdaptive(v bool) Option {
	return func(c *Config) { c.DRDuringAMNonAdaptiveInt = v }
}

// WithPutOutOfBoundsInChain controls whether an out-of-support proposal
// is accepted in place (true) or triggers a redraw (false, the default).
func WithPutOutOfBoundsInChain(v bool) Option {
	return func(c *Config) { c.PutOutOfBoundsInChain = v }
}

// WithMeasureRunTimes enables the runinfo phase timers.
func WithMeasureRunTimes(v bool) Option {
	return func(c *Config) { c.MeasureRunTimes = v }
}

// WithRecordAlphaQuotients enables per-position unclamped-ratio recording.
func WithRecordAlphaQuotients(v bool) Option {
	return func(c *Config) { c.RecordAlphaQuotients = v }
}

// WithConvention sets the target evaluator's log-target convention.
func WithConvention(conv target.Convention) Option {
	return func(c *Config) { c.Convention = conv }
}

// WithOnDiagnostic sets the recoverable-condition callback. Panics on nil
// to surface the programmer error immediately.
func WithOnDiagnostic(fn func(kind string, positionIndex int)) Option {
	if fn == nil {
		panic("sampler: WithOnDiagnostic(nil)")
	}
	return func(c *Config) { c.OnDiagnostic = fn }
}
