// Package valuegen builds and evaluates data-generation expression graphs.
//
// A caller supplies a name-to-expression-text map: each entry's text is a
// small expression-language literal (references, generators, distributions,
// transformers) that, once built, yields an unbounded stream of values via
// repeated calls to Next on the resulting graph's named roots.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no dependencies outside this tier; diag uses location):
//	  - location: Source positions, spans, and source identifiers
//	  - diag: Structured diagnostics with stable error codes
//	  - internal/trace: zero-cost-when-disabled operation logging
//	  - internal/numeric: long-vs-double literal classification
//
//	Core library tier:
//	  - dist: Uniform and truncated-normal distributions, PRNG seed minting
//	  - value: The closed Value kind hierarchy and its lazy-evaluation contract
//	  - resolve: Hierarchical name table and proxy binder
//	  - parse: Recursive-descent lexer/parser from expression text to Value
//
// # Entry Point
//
//	import "github.com/corvid-data/valuegen"
//
//	g, err := valuegen.Build(map[string]string{
//	    "age": "random(18..65)",
//	    "id":  "uuid()",
//	}, valuegen.WithSeed(42))
//	if err != nil {
//	    // compile-time error: bad syntax, unresolved reference, bad range
//	}
//	age, _ := g.Root("age")
//	for i := 0; i < 10; i++ {
//	    v, err := age.Next()
//	    // v is one record's value
//	}
package valuegen
