package value

// Value is a node in the evaluation graph. The kind set is closed: every
// concrete implementation lives in this package, and the unexported value()
// marker prevents external packages from adding new kinds.
type Value interface {
	// Current returns the last computed output without advancing any
	// generator. Before the first Next call, Current returns a kind-specific
	// zero output (see each kind's constructor).
	Current() any

	// Next advances the node: it recomputes the node's output, typically by
	// advancing some or all of its children per the kind's semantics, caches
	// the result, and returns it. Next can fail with an EvaluationCycle (a
	// recursion-depth guard tripped) or a FormatError (a transformer's
	// format string rejected an argument at evaluation time).
	Next() (any, error)

	// Reset rewinds the node and its subtree: counters, edge-emission state,
	// and cached outputs return to their initial values. It does not change
	// the node's identity or its bound children/delegates, and it does not
	// reseed any Distribution or PRNG, so a sampled node (ranges, discrete,
	// weighted, exactly, randomLengthString, seeded uuid) continues its random
	// stream after Reset instead of repeating it.
	Reset()

	// value is an unexported marker that seals the Value kind set.
	value()
}
