package valuegen

import (
	"log/slog"

	"github.com/corvid-data/valuegen/dist"
	"github.com/corvid-data/valuegen/resolve"
	"github.com/corvid-data/valuegen/value"
)

// Graph is the compiled result of Build: a name table of Value roots ready
// for repeated evaluation via their Next methods. A Graph is read-only
// after construction and is not safe for concurrent evaluation of the same
// root from multiple goroutines — callers wanting parallelism should Clone
// it first.
type Graph struct {
	defs       map[string]string
	names      []string
	table      *resolve.Table
	guard      *value.Guard
	seeds      dist.SeedSource
	maxDepth   int
	charRanges []value.CharRange
	logger     *slog.Logger
	issueLimit int
}

// Root returns the Value bound to name, if any definition registered it.
func (g *Graph) Root(name string) (value.Value, bool) {
	p, ok := g.table.Lookup(name)
	if !ok {
		return nil, false
	}
	return p, true
}

// Names returns the names of every definition this graph was built from,
// sorted.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Clone rebuilds a fresh, independent Graph from the same definition texts,
// so its nodes share no mutable state with g or any other clone. Clone
// does not snapshot g's current iteration position: the clone's generators
// start from their initial, unadvanced state, same as a fresh Build — a
// caller that has already called Next on g's roots does not carry that
// progress into the clone. The clone draws its root PRNG seed from this
// graph's own seed source, so repeated clones of the same Graph are
// reproducible from the original build's seed while never repeating
// another clone's sequence. Any opts passed override the original graph's
// non-seed settings; a caller wanting a different seed should pass
// WithSeed or WithSeedSource explicitly.
func (g *Graph) Clone(opts ...Option) (*Graph, error) {
	cloneOpts := make([]Option, 0, len(opts)+4)
	cloneOpts = append(cloneOpts,
		WithSeedSource(dist.NewSeedSource(g.seeds.Next())),
		WithMaxRecursionDepth(g.maxDepth),
		WithLogger(g.logger),
		WithIssueLimit(g.issueLimit),
	)
	if g.charRanges != nil {
		cloneOpts = append(cloneOpts, WithDefaultCharRanges(g.charRanges))
	}
	cloneOpts = append(cloneOpts, opts...)
	return Build(g.defs, cloneOpts...)
}
