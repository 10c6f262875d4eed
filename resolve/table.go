package resolve

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/corvid-data/valuegen/value"
)

// Table is the hierarchical name table of §3/§4.3: a mapping from
// normalized fully-qualified dotted name to *value.Proxy. It is mutated
// only during a build; after every definition has been registered and
// validated it is treated as read-only.
type Table struct {
	guard   *value.Guard
	entries map[string]*value.Proxy
}

// NewTable constructs an empty Table sharing guard with the Value graph it
// resolves proxies for.
func NewTable(guard *value.Guard) *Table {
	return &Table{guard: guard, entries: make(map[string]*value.Proxy)}
}

// normalize NFC-normalizes a dotted name so visually identical Unicode
// spellings of the same reference hash and compare equal.
func normalize(name string) string {
	return norm.NFC.String(name)
}

// ScopeChain returns the scope-chain candidates for a reference to name
// observed from scope, most specific first: if scope is "a.b", the
// candidates for name "x" are "a.b.x", "a.x", "x" (§4.3). An empty scope
// yields the single candidate name.
func ScopeChain(scope, name string) []string {
	if scope == "" {
		return []string{name}
	}
	segments := strings.Split(scope, ".")
	candidates := make([]string, 0, len(segments)+1)
	for i := len(segments); i > 0; i-- {
		candidates = append(candidates, strings.Join(segments[:i], ".")+"."+name)
	}
	candidates = append(candidates, name)
	return candidates
}

// Resolve looks up a reference to name from scope by walking ScopeChain and
// returning the first candidate that already has a proxy entry. If none
// does, a fresh proxy is created at the most specific candidate (the one a
// same-named definition introduced later in this scope would register
// under) and deferred for validation once the whole definition map has been
// processed — this is how forward references are supported without
// requiring definitions to appear before their first use (§4.3, §4.6).
func (t *Table) Resolve(scope, name string) *value.Proxy {
	candidates := ScopeChain(scope, name)
	for _, c := range candidates {
		if p, ok := t.entries[normalize(c)]; ok {
			return p
		}
	}
	fq := candidates[0]
	p := value.NewProxy(fq, t.guard)
	t.entries[normalize(fq)] = p
	return p
}

// Define registers v under fqName, binding any proxy an earlier forward
// reference already created there, or creating and immediately binding a
// fresh one. Defining the same fqName twice is an error.
func (t *Table) Define(fqName string, v value.Value) error {
	key := normalize(fqName)
	if p, ok := t.entries[key]; ok {
		if p.Bound() {
			return fmt.Errorf("resolve: %q is already defined", fqName)
		}
		return p.Bind(v)
	}
	p := value.NewProxy(fqName, t.guard)
	if err := p.Bind(v); err != nil {
		return err
	}
	t.entries[key] = p
	return nil
}

// Lookup returns the proxy registered under fqName, if any.
func (t *Table) Lookup(fqName string) (*value.Proxy, bool) {
	p, ok := t.entries[normalize(fqName)]
	return p, ok
}

// Unresolved returns the fully-qualified names of every proxy that is still
// unbound, sorted, so the batch reported by the graph builder never depends
// on map iteration order (§9 Open Question 2, resolved in §4.6).
func (t *Table) Unresolved() []string {
	var names []string
	for _, p := range t.entries {
		if !p.Bound() {
			names = append(names, p.Name())
		}
	}
	sort.Strings(names)
	return names
}
