// Package diag provides the diagnostic issue model shared by the parser,
// resolver, and graph builder.
//
// An [Issue] pairs a [Severity] and a [Code] with a message, an optional
// [location.Span], a hint, and structured [Detail] pairs. Issues are built
// via [NewIssue] (or [FromIssue] to augment an existing one) and gathered
// into a [Collector], which is safe for concurrent use and produces a sorted,
// immutable [Result] snapshot.
//
// Fatal and Error severities are a build failure (§7): [Result] satisfies
// the standard error interface via [Result.Error], so a compile function can
// return its diagnostics directly as the function's error value while
// callers that want the full issue list still have it.
package diag
