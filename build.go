package valuegen

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/corvid-data/valuegen/diag"
	"github.com/corvid-data/valuegen/internal/trace"
	"github.com/corvid-data/valuegen/location"
	"github.com/corvid-data/valuegen/parse"
	"github.com/corvid-data/valuegen/resolve"
	"github.com/corvid-data/valuegen/value"
)

// Build compiles a map of definition name to expression text into a Graph.
// Every definition is parsed against one shared name table, so references
// may name any other definition regardless of iteration order — forward
// references across definitions resolve the same way forward references
// within one definition do. Build fails if any reference is left
// unresolved once every definition has been registered.
func Build(defs map[string]string, opts ...Option) (*Graph, error) {
	return build(context.Background(), defs, opts...)
}

func build(ctx context.Context, defs map[string]string, opts ...Option) (*Graph, error) {
	cfg := applyOptions(opts)
	op := trace.Begin(ctx, cfg.logger, "valuegen.build.compile", slog.Int("definitions", len(defs)))

	guard := value.NewGuard(cfg.maxRecursionDepth)
	table := resolve.NewTable(guard)
	collector := diag.NewCollector(cfg.issueLimit)

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		source := location.NewSourceID(name)
		p := parse.NewParser(defs[name], source, name, table, guard, cfg.seeds, collector)
		if cfg.defaultCharRanges != nil {
			p.SetDefaultCharRanges(cfg.defaultCharRanges)
		}
		root, _ := p.ParseDefinition()
		if err := table.Define(name, root); err != nil {
			op.End(err)
			return nil, err
		}
	}

	if unresolved := table.Unresolved(); len(unresolved) > 0 {
		for _, name := range unresolved {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_UNRESOLVED_REFERENCE,
				fmt.Sprintf("unresolved reference %q", name)).Build())
		}
	}

	result := collector.Result()
	if result.HasErrors() {
		op.End(result)
		return nil, result
	}

	g := &Graph{
		defs:       copyDefs(defs),
		names:      names,
		table:      table,
		guard:      guard,
		seeds:      cfg.seeds,
		maxDepth:   cfg.maxRecursionDepth,
		charRanges: cfg.defaultCharRanges,
		logger:     cfg.logger,
		issueLimit: cfg.issueLimit,
	}
	op.End(nil)
	return g, nil
}

func copyDefs(defs map[string]string) map[string]string {
	out := make(map[string]string, len(defs))
	for k, v := range defs {
		out[k] = v
	}
	return out
}
