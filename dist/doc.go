// Package dist provides the sampling primitives used by range, discrete,
// and weighted value nodes (§4.5).
//
// A [Distribution] is a minimal surface — NextInt, NextLong, NextDouble,
// NextBoolean — deliberately narrower than a general-purpose PRNG: nodes
// hold a Distribution, not a *rand.Rand, so that swapping Uniform for
// TruncatedNormal never touches call sites in the value package.
//
// Distributions are stateful and constructed per node; there is no
// process-wide shared generator. Each constructor takes an explicit seed so
// a caller that wants reproducible output across a run controls it exactly,
// and [Graph.Clone] can reseed cloned nodes independently of their
// originals.
package dist
