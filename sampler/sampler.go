package sampler

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dram/am"
	"github.com/katalvlaran/dram/chain"
	"github.com/katalvlaran/dram/dr"
	"github.com/katalvlaran/dram/kernel"
	"github.com/katalvlaran/dram/matrix"
	"github.com/katalvlaran/dram/rng"
	"github.com/katalvlaran/dram/runinfo"
	"github.com/katalvlaran/dram/target"
)

// Sampler owns the transition kernel, AM state, chain buffer and run-info
// for one replica's generation (§5: single-threaded, no internal
// parallelism; the RNG is borrowed exclusively for the run's duration).
type Sampler struct {
	cfg       Config
	evaluator *target.Adapter
	tk        kernel.TransitionKernel
	rngSrc    *rng.Source

	amState *am.State
	buf     *chain.Buffer
	info    runinfo.Info
	current target.Position
}

// New validates cfg and x0/c0, evaluates the initial point, and returns a
// Sampler ready to Run. Fails with ErrInvalidConfig for a malformed
// config, ErrDimensionMismatch for inconsistent x0/c0 dimensions, or
// ErrInvalidInitialPoint if x0 is out of support or has a non-finite
// log-target.
func New(x0 matrix.Vector, c0 *matrix.Dense, evaluator *target.Adapter, rngSrc *rng.Source, cfg Config) (*Sampler, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if rngSrc == nil {
		return nil, fmt.Errorf("sampler.New: rngSrc is nil: %w", ErrInvalidConfig)
	}

	var tk kernel.TransitionKernel
	if cfg.TKUseLocalHessian {
		tk = kernel.NewHessian()
	} else {
		if c0 == nil {
			return nil, fmt.Errorf("sampler.New: C0 is required unless TKUseLocalHessian is set: %w", ErrInvalidConfig)
		}
		if c0.Rows() != x0.Dim() {
			return nil, fmt.Errorf("sampler.New: C0 is %dx%d, x0 has dim %d: %w", c0.Rows(), c0.Cols(), x0.Dim(), ErrDimensionMismatch)
		}
		scales := append([]float64{1}, cfg.DRScalesForExtraStages...)
		scaledTK, err := kernel.NewScaledCov(c0, scales)
		if err != nil {
			return nil, fmt.Errorf("sampler.New: %w", err)
		}
		tk = scaledTK
	}

	pos0, err := evaluator.Eval(x0)
	if err != nil && !errors.Is(err, target.ErrNonFiniteTarget) {
		return nil, err
	}
	if pos0.OutOfSupport || pos0.NonFinite() {
		return nil, ErrInvalidInitialPoint
	}

	chainOpts := append([]chain.Option{chain.WithLogLikelihood(), chain.WithLogTarget(), chain.WithAccepted()}, alphaQuotientOption(cfg)...)
	buf, err := chain.NewBuffer(cfg.RawChainSize, chainOpts...)
	if err != nil {
		return nil, err
	}

	s := &Sampler{cfg: cfg, evaluator: evaluator, tk: tk, rngSrc: rngSrc, buf: buf, current: pos0}
	if err := buf.Set(0, pos0.X, pos0.LogLikelihood, pos0.LogTarget, 0, true); err != nil {
		return nil, err
	}
	s.info.NumTargetCalls++

	return s, nil
}

func alphaQuotientOption(cfg Config) []chain.Option {
	if cfg.RecordAlphaQuotients {
		return []chain.Option{chain.WithAlphaQuotients()}
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.RawChainSize <= 0 {
		return fmt.Errorf("sampler.New: RawChainSize must be > 0: %w", ErrInvalidConfig)
	}
	if len(cfg.DRScalesForExtraStages) != cfg.DRMaxNumExtraStages {
		return fmt.Errorf("sampler.New: DRScalesForExtraStages length must equal DRMaxNumExtraStages: %w", ErrInvalidConfig)
	}
	return nil
}

// Run executes the outer loop for positions [1, N) and returns the
// populated chain buffer and final run-info. ctx is checked once per
// position; if cancelled, Run returns the partial buffer built so far
// (§5: a dropped host leaves a consistent partial chain) together with
// ctx.Err().
func (s *Sampler) Run(ctx context.Context) (*chain.Buffer, runinfo.Info, error) {
	runTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
	defer func() { s.info.RunTime += runTimer.Stop() }()

	for i := 1; i < s.cfg.RawChainSize; i++ {
		if err := ctx.Err(); err != nil {
			return s.buf, s.info, err
		}

		accepted, candidate, alphaQuot, err := s.step()
		if err != nil {
			return s.buf, s.info, err
		}

		if accepted {
			s.current = candidate
		} else {
			s.info.NumRejections++
		}

		if err := s.buf.Set(i, s.current.X, s.current.LogLikelihood, s.current.LogTarget, alphaQuot, accepted); err != nil {
			return s.buf, s.info, err
		}

		if err := s.maybeAdapt(i); err != nil {
			return s.buf, s.info, err
		}
	}

	return s.buf, s.info, nil
}

// step implements Propose -> Evaluate -> MHDecide -> (DRStep)* -> Commit
// for one outer-loop position (§4.1, §9's state-machine re-architecture).
func (s *Sampler) step() (accepted bool, candidate target.Position, alphaQuotient float64, err error) {
	s.tk.ClearPreComputingPositions()

	stage0, err := s.tk.RV(0)
	if err != nil {
		return false, target.Position{}, 0, err
	}
	y, err := s.drawInSupport(stage0, s.current.X)
	if err != nil {
		return false, target.Position{}, 0, err
	}

	candTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
	yPos, err := s.evaluate(y, false)
	s.info.CandidateTime += candTimer.Stop()
	if err != nil {
		return false, target.Position{}, 0, err
	}

	mhTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
	alpha, quot, err := dr.SingleStageAlpha(s.current, yPos, 0, 0, s.tk)
	s.info.MHAlphaTime += mhTimer.Stop()
	if err != nil {
		return false, target.Position{}, 0, err
	}
	alphaQuotient = quot

	if dr.AcceptAlpha(alpha, s.rngSrc.Float64()) {
		return true, yPos, alphaQuotient, nil
	}

	if s.cfg.DRMaxNumExtraStages > 0 && !yPos.OutOfSupport && s.drPermitted() {
		accepted, candidate, err = s.runDR(yPos)
		if err != nil {
			return false, target.Position{}, alphaQuotient, err
		}
		if accepted {
			return true, candidate, alphaQuotient, nil
		}
	}

	return false, target.Position{}, alphaQuotient, nil
}

// runDR attempts up to K extra DR stages (§4.4), given the rejected
// stage-0 candidate firstCandidate.
func (s *Sampler) runDR(firstCandidate target.Position) (bool, target.Position, error) {
	drTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
	defer func() { s.info.DRTime += drTimer.Stop() }()

	ladder := []dr.Step{{Position: s.current, StageID: 0}, {Position: firstCandidate, StageID: 0}}

	for stageID := 1; stageID <= s.cfg.DRMaxNumExtraStages; stageID++ {
		if !s.tk.SetPreComputingPosition(s.current.X, stageID) {
			s.diagnostic("proposal_draw_failed", -1)
			return false, target.Position{}, nil
		}

		propK, err := s.tk.RV(stageID)
		if err != nil {
			return false, target.Position{}, err
		}
		yk, err := s.drawInSupport(propK, s.current.X)
		if err != nil {
			return false, target.Position{}, err
		}
		ykPos, err := s.evaluate(yk, true)
		if err != nil {
			return false, target.Position{}, err
		}

		ladder = append(ladder, dr.Step{Position: ykPos, StageID: stageID})
		s.info.NumDRs++

		drAlphaTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
		a, err := dr.ChainAlpha(ladder, s.tk)
		s.info.DRAlphaTime += drAlphaTimer.Stop()
		if err != nil {
			return false, target.Position{}, err
		}

		if dr.AcceptAlpha(a, s.rngSrc.Float64()) {
			return true, ykPos, nil
		}
		if ykPos.OutOfSupport {
			return false, target.Position{}, nil
		}
	}

	return false, target.Position{}, nil
}

// drPermitted implements the AM-gate for DR (§4.1): DR is skipped during
// the AM warmup window unless the caller explicitly allowed it.
func (s *Sampler) drPermitted() bool {
	// positionIndex isn't tracked on Sampler directly; Run passes it via
	// closures would complicate step()'s signature, so the gate instead
	// reads the chain's fill count, which equals the position about to
	// be written.
	i := s.buf.Filled()
	if !s.cfg.DRDuringAMNonAdaptiveInt && s.cfg.AMAdaptInterval > 0 && i <= s.cfg.AMInitialNonAdaptInterval {
		return false
	}
	return true
}

// drawInSupport draws from prop centred at centre, redrawing while the
// result is out of support unless PutOutOfBoundsInChain is set (§4.1
// step 1).
func (s *Sampler) drawInSupport(prop kernel.Proposal, centre matrix.Vector) (matrix.Vector, error) {
	for {
		y, err := prop.Sample(s.rngSrc, centre)
		if err != nil {
			return nil, err
		}
		if s.cfg.PutOutOfBoundsInChain || s.evaluator.InSupport(y) {
			return y, nil
		}
	}
}

// evaluate wraps target.Adapter.Eval with run-info bookkeeping. A
// non-finite log-target at an in-support point is recoverable: the
// returned Position still carries the NaN log-target so the acceptance
// rules treat it as alpha=0.
func (s *Sampler) evaluate(x matrix.Vector, inDR bool) (target.Position, error) {
	targetTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
	pos, err := s.evaluator.Eval(x)
	s.info.TargetTime += targetTimer.Stop()

	if err != nil {
		if errors.Is(err, target.ErrNonFiniteTarget) {
			s.info.NumTargetCalls++
			s.diagnostic("non_finite_posterior", -1)
			return pos, nil
		}
		return pos, err
	}

	if pos.OutOfSupport {
		if inDR {
			s.info.NumOutOfSupportInDR++
		} else {
			s.info.NumOutOfSupport++
		}
	} else {
		s.info.NumTargetCalls++
	}
	return pos, nil
}

// maybeAdapt implements §4.5's schedule: seed at i==AMInitialNonAdaptInterval,
// update every AMAdaptInterval steps thereafter.
func (s *Sampler) maybeAdapt(i int) error {
	if s.cfg.AMAdaptInterval <= 0 {
		return nil
	}

	amTimer := runinfo.StartTimer(s.cfg.MeasureRunTimes)
	defer func() { s.info.AMTime += amTimer.Stop() }()

	switch {
	case i < s.cfg.AMInitialNonAdaptInterval:
		return nil

	case i == s.cfg.AMInitialNonAdaptInterval:
		positions, err := s.positionsRange(0, i)
		if err != nil {
			return err
		}
		state, err := am.Seed(positions)
		if err != nil {
			s.diagnostic("am_seed_failed", i)
			return nil
		}
		s.amState = state
		return s.refreshKernelCov()

	case (i-s.cfg.AMInitialNonAdaptInterval)%s.cfg.AMAdaptInterval == 0:
		if s.amState == nil {
			return nil
		}
		positions, err := s.positionsRange(i-s.cfg.AMAdaptInterval+1, i)
		if err != nil {
			return err
		}
		if err := s.amState.Update(positions); err != nil {
			return err
		}
		return s.refreshKernelCov()

	default:
		return nil
	}
}

// refreshKernelCov applies the AM state's proposal-covariance refresh
// (§4.5) to the kernel, when the kernel is a ScaledCov (§9: AM only
// writes through that variant). A failed refresh is recoverable: the
// kernel keeps its previous covariance.
func (s *Sampler) refreshKernelCov() error {
	sc, ok := s.tk.(*kernel.ScaledCov)
	if !ok {
		return nil
	}

	cNew, ok := s.amState.RefreshProposalCov(s.cfg.AMEta, s.cfg.AMEpsilon)
	if !ok {
		s.diagnostic("am_covariance_not_pd", -1)
		return nil
	}
	if err := sc.UpdateBaseCov(cNew); err != nil {
		s.diagnostic("am_covariance_not_pd", -1)
		return nil
	}
	return nil
}

func (s *Sampler) positionsRange(start, end int) ([]matrix.Vector, error) {
	out := make([]matrix.Vector, 0, end-start+1)
	for k := start; k <= end; k++ {
		x, err := s.buf.Position(k)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

func (s *Sampler) diagnostic(kind string, positionIndex int) {
	if s.cfg.OnDiagnostic != nil {
		s.cfg.OnDiagnostic(kind, positionIndex)
	}
}
