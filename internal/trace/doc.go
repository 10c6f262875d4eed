// Package trace provides optional debug logging helpers for the valuegen library.
//
// This package is an internal utility for developer observability. It is distinct
// from [diag.Result] (user-facing compile diagnostics) and error returns (runtime
// evaluation failures).
//
// # Internal Package
//
// This package is internal to the valuegen module and is not importable by external
// consumers per Go's internal/ package semantics. Within the module it is used only
// by the root build driver (Build).
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a single nil
//     check (~2ns). When the logger is non-nil but the level is disabled, overhead
//     includes the nil check plus a level test. The Lazy variants guarantee no
//     allocation from attribute construction when disabled.
//   - Stdlib only: uses [log/slog], preserving dependency hygiene.
//   - Logger injection: loggers are passed via options at API boundaries, not stored
//     in globals or read from environment variables.
//   - Construction and build-time only: Value.Next is a bounded, pure-CPU operation
//     per the evaluation engine contract, so this package is never called from the
//     hot evaluation path — only from Build.
//
// # Usage Patterns
//
//   - [Begin]/[Op.End]: operation boundaries (currently only Build). Use for
//     wrapping top-level functions with automatic duration measurement.
//   - [Debug], [Info], [Warn], [Error]: simple, pre-computed attributes. The variadic
//     args are evaluated at the call site even when logging is disabled.
//   - [DebugLazy], [InfoLazy], [WarnLazy], [ErrorLazy]: computed attributes. The
//     function argument is not called when logging is disabled.
//   - [Enabled]: for complex control flow or multiple log calls at different levels.
//
// # Context Handling
//
// All logging functions accept a context parameter and pass it through to the
// underlying [log/slog.Logger]. The Op Runner ([Begin]/[Op.End]) additionally
// includes "request_id" if present in context (via [WithRequestID]) and checks
// context cancellation for the "ctx_err" attribute.
//
// # Op Runner
//
// The [Op] type provides consistent operation boundary logging with automatic
// duration measurement. [Begin] returns nil when logging is disabled, achieving
// near-zero overhead. All [Op] methods are safe to call on nil.
//
//	func Build(defs map[string]string, opts ...Option) (*Graph, error) {
//	    op := trace.Begin(ctx, cfg.logger, "valuegen.build.compile", slog.Int("definitions", len(defs)))
//	    defer func() { op.End(nil) }()
//	    ...
//	}
//
// # Operation Names
//
// Operation names follow the format valuegen.<package>.<operation>. The one
// operation traced today is:
//   - valuegen.build.compile
//
// Operation names are implementation details and may change without notice.
package trace
