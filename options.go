package valuegen

import (
	"log/slog"

	"github.com/corvid-data/valuegen/dist"
	"github.com/corvid-data/valuegen/value"
)

// config holds the resolved settings for one Build (or Clone) call,
// assembled by applying every Option in order over defaultConfig's
// baseline.
type config struct {
	seeds             dist.SeedSource
	maxRecursionDepth int
	defaultCharRanges []value.CharRange
	logger            *slog.Logger
	issueLimit        int
}

func defaultConfig() *config {
	return &config{
		seeds:             dist.NewSeedSource(1),
		maxRecursionDepth: value.DefaultMaxRecursionDepth,
		issueLimit:        0,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures a Build or Clone call.
type Option func(*config)

// WithSeed sets the build's root PRNG seed, from which every generator and
// distribution in the graph mints its own independent seed via
// dist.CounterSeedSource. Two builds of the same definitions with the same
// seed produce identical output sequences.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seeds = dist.NewSeedSource(seed) }
}

// WithSeedSource installs a caller-supplied seed source in place of the
// default counter-based one.
func WithSeedSource(s dist.SeedSource) Option {
	return func(c *config) { c.seeds = s }
}

// WithMaxRecursionDepth bounds the call depth Next can recurse through
// before an unbroken proxy cycle is reported as an EvaluationCycle instead
// of overflowing the stack. Non-positive values fall back to
// value.DefaultMaxRecursionDepth.
func WithMaxRecursionDepth(max int) Option {
	return func(c *config) { c.maxRecursionDepth = max }
}

// WithDefaultCharRanges overrides the char set a bare
// randomLengthString(n) (no explicit range list) draws from.
func WithDefaultCharRanges(ranges []value.CharRange) Option {
	return func(c *config) { c.defaultCharRanges = ranges }
}

// WithLogger installs a logger for Build's operation-boundary tracing. A
// nil logger (the default) disables tracing entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithIssueLimit bounds how many diagnostics a single Build call collects
// before further issues are dropped and counted. Non-positive (the
// default) means unlimited.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}
