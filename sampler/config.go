package sampler

import "github.com/katalvlaran/dram/target"

// Config is the sampler's configuration record (§6). Build one with
// NewConfig and functional Options; zero-value fields you never set
// resolve to the documented defaults (DR and AM both disabled, the
// log-likelihood convention).
type Config struct {
	// RawChainSize is N, the fixed output chain length. Required: New
	// fails with ErrInvalidConfig if this is left at its zero value.
	RawChainSize int

	// DRMaxNumExtraStages is K; 0 disables Delayed Rejection.
	DRMaxNumExtraStages int

	// DRScalesForExtraStages holds s_1..s_K, the stage-scale multipliers
	// for each extra DR stage (s_0=1 is implicit). Length must equal
	// DRMaxNumExtraStages.
	DRScalesForExtraStages []float64

	// TKUseLocalHessian selects the Hessian transition-kernel variant.
	// That variant is unimplemented in this module (§9 design note); do
	// not set this until kernel.Hessian has a concrete RV/LogPDF.
	TKUseLocalHessian bool

	// AMInitialNonAdaptInterval is the AM seed step.
	AMInitialNonAdaptInterval int

	// AMAdaptInterval is the AM cadence; 0 disables Adaptive Metropolis.
	AMAdaptInterval int

	// AMEta is the AM proposal-covariance scaling constant.
	AMEta float64

	// AMEpsilon is the ridge added on a failed Cholesky attempt.
	AMEpsilon float64

	// DRDuringAMNonAdaptiveInt allows DR during the AM warmup window when
	// true; when false, DR is skipped for i <= AMInitialNonAdaptInterval
	// while AM is active.
	DRDuringAMNonAdaptiveInt bool

	// PutOutOfBoundsInChain, when true, accepts an out-of-support
	// proposal in place (entering it into DR/MH with log_target=-Inf)
	// instead of redrawing.
	PutOutOfBoundsInChain bool

	// MeasureRunTimes gates runinfo.Timer usage on the hot path.
	MeasureRunTimes bool

	// RecordAlphaQuotients enables the supplemented diagnostic recording
	// of each position's unclamped MH ratio (§7).
	RecordAlphaQuotients bool

	// Convention selects the target evaluator's log-target convention.
	Convention target.Convention

	// OnDiagnostic, if set, is called for every recoverable condition
	// (§7): non-finite posterior, AM covariance not PD, proposal draw
	// failure, AM seed failure. kind is a short machine-readable tag
	// ("non_finite_posterior", "am_covariance_not_pd",
	// "proposal_draw_failed", "am_seed_failed"); positionIndex is the
	// chain position for "am_seed_failed" and -1 for every other kind.
	OnDiagnostic func(kind string, positionIndex int)
}

// Option mutates a Config under construction. Constructors validate and
// panic on nonsensical static values; Config itself never panics.
type Option func(*Config)

// NewConfig resolves opts against the documented defaults: DR and AM
// disabled, log-likelihood convention, AMEta=1, AMEpsilon=1e-8.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		AMEta:      1,
		AMEpsilon:  1e-8,
		Convention: target.ConventionLogLikelihood,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
