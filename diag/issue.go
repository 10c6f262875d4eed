package diag

import "github.com/corvid-data/valuegen/location"

// Issue represents a single diagnostic issue.
//
// Issue is immutable after construction. All fields are unexported; use
// accessor methods to read values. Construct Issues using [NewIssue] and
// [IssueBuilder].
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected via [Collector.Collect].
//
// Zero-value note: the Go zero value for Severity is Fatal (value 0). When
// constructing Issue literals in tests, set severity explicitly to avoid
// unintentionally creating Fatal issues.
type Issue struct {
	span     location.Span // source location; check HasSpan() or span.IsZero()
	severity Severity       // issue severity level
	code     Code           // stable programmatic identifier
	message  string         // human-readable description (no embedded locations)
	hint     string         // optional resolution suggestion
	details  []Detail       // additional key-value context
}

// Severity returns the issue's severity level.
func (i Issue) Severity() Severity {
	return i.severity
}

// Code returns the issue's stable programmatic identifier.
func (i Issue) Code() Code {
	return i.code
}

// Message returns the human-readable description.
//
// Messages should not contain embedded locations; use [Issue.Span] for
// location information.
func (i Issue) Message() string {
	return i.message
}

// Span returns the source location span.
//
// Use [Issue.HasSpan] to check if the span is present, or check
// span.IsZero().
func (i Issue) Span() location.Span {
	return i.span
}

// Hint returns the optional resolution suggestion.
func (i Issue) Hint() string {
	return i.hint
}

// HasSpan reports whether the issue has a non-zero span.
func (i Issue) HasSpan() bool {
	return !i.span.IsZero()
}

// IsZero reports whether the issue is a zero value.
func (i Issue) IsZero() bool {
	return i.code.IsZero() && i.message == "" && i.span.IsZero()
}

// IsValid reports whether the issue has the minimum required fields set.
//
// An issue is valid if it has a non-zero code, a non-empty message, and a
// severity within the defined range. Production code using [IssueBuilder]
// never needs to call this because the builder guarantees validity; it
// exists to catch diag-internal mistakes where issues are constructed
// directly rather than via the builder.
func (i Issue) IsValid() bool {
	return !i.code.IsZero() &&
		i.message != "" &&
		i.severity <= Hint
}

// Details returns a copy of the detail key-value pairs.
//
// Returns nil if no details are present. The returned slice is a defensive
// copy; modifications do not affect the original issue.
func (i Issue) Details() []Detail {
	if len(i.details) == 0 {
		return nil
	}
	cp := make([]Detail, len(i.details))
	copy(cp, i.details)
	return cp
}

// Clone returns a deep copy of the issue.
func (i Issue) Clone() Issue {
	clone := i
	if len(i.details) > 0 {
		clone.details = make([]Detail, len(i.details))
		copy(clone.details, i.details)
	}
	return clone
}
