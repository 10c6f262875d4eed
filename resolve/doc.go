// Package resolve implements the hierarchical name table: dotted-path
// scope-chain lookup (a.b.x, then a.x, then x) and lazy proxy creation and
// binding for forward and cyclic references (§4.3).
package resolve
