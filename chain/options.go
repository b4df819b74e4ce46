package chain

// Option enables one of the buffer's optional parallel sequences.
// Positions are always recorded; everything else is opt-in to avoid
// paying for diagnostics nobody asked for.
type Option func(*config)

type config struct {
	logLikelihood  bool
	logTarget      bool
	alphaQuotients bool
	accepted       bool
}

// WithLogLikelihood enables the per-position log-likelihood sequence.
func WithLogLikelihood() Option { return func(c *config) { c.logLikelihood = true } }

// WithLogTarget enables the per-position log-target sequence.
func WithLogTarget() Option { return func(c *config) { c.logTarget = true } }

// WithAlphaQuotients enables recording the unclamped MH ratio per step
// (§4.3's alpha_quot, before min(1, ·)), mirroring the source's
// m_alphaQuotients diagnostic array.
func WithAlphaQuotients() Option { return func(c *config) { c.alphaQuotients = true } }

// WithAccepted enables recording, per position, whether it was a freshly
// accepted sample or a repeat of the previous position.
func WithAccepted() Option { return func(c *config) { c.accepted = true } }
