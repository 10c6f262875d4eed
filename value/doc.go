// Package value implements the closed set of evaluable node kinds that make
// up a built expression graph: scalars, numeric and temporal ranges,
// discrete/weighted/circular selectors, composites, and transformers.
//
// Every kind shares one contract (Current/Next/Reset). current never
// advances state; next recomputes and caches an output, typically by
// advancing some or all of a node's children; reset rewinds a node and its
// subtree to their initial state. The distinction between current and next
// lets one sub-expression be referenced by several parents within a single
// record without being resampled more than once.
package value
