package location

import "golang.org/x/text/unicode/norm"

// SourceID identifies which named definition a [Span] belongs to.
//
// Expressions are parsed from an in-memory name -> expression-text map (§6),
// not from files, so unlike the file-backed SourceIDs of larger schema-loading
// systems, a SourceID here is simply the fully qualified definition name
// ("user.first", "a", "p") normalized to NFC so that visually-identical but
// differently-encoded Unicode names compare equal.
//
// SourceID is a value type and is safe for use as a map key.
type SourceID struct {
	name string
}

// NewSourceID creates a SourceID for the given definition name, NFC-normalized.
func NewSourceID(name string) SourceID {
	return SourceID{name: norm.NFC.String(name)}
}

// String returns the definition name.
func (s SourceID) String() string {
	return s.name
}

// IsZero reports whether this is the zero-value SourceID (no definition name).
func (s SourceID) IsZero() bool {
	return s.name == ""
}
