// Package parse implements a hand-written recursive-descent lexer and
// parser that turns expression text (§6's grammar) directly into a
// value.Value tree, resolving $name references through a resolve.Table as
// it goes. Variadic argument lists are collected with ordinary slice
// append inside each rule method rather than a stack machine with
// sentinels (§9 Design Notes).
package parse
