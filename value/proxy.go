package value

import "fmt"

// Proxy is an indirection handle whose delegate is filled in after the
// whole graph has been parsed (§3, §9 "Cyclic shared nodes via proxies").
// Current/Next/Reset all delegate transparently once bound; a Proxy is the
// one kind that can legally exist in an unbound state, briefly, between
// parse and the graph builder's validation pass.
type Proxy struct {
	name     string
	delegate Value
	guard    *Guard
}

// NewProxy constructs an unbound Proxy for name, sharing guard with the
// rest of the graph so a cycle threaded through this proxy still trips the
// recursion-depth guard.
func NewProxy(name string, guard *Guard) *Proxy {
	return &Proxy{name: name, guard: guard}
}

// Name returns the fully-qualified name this proxy was created for.
func (p *Proxy) Name() string { return p.name }

// Bound reports whether Bind has been called.
func (p *Proxy) Bound() bool { return p.delegate != nil }

// Bind sets the proxy's delegate. Binding a nil delegate or delegating a
// proxy to itself are both programmer errors caught here rather than left
// to manifest as a nil dereference or infinite loop later.
func (p *Proxy) Bind(delegate Value) error {
	if delegate == nil {
		return fmt.Errorf("value: proxy %q cannot bind a nil delegate", p.name)
	}
	if delegate == Value(p) {
		return fmt.Errorf("value: proxy %q cannot delegate to itself", p.name)
	}
	p.delegate = delegate
	return nil
}

// Current implements Value.
func (p *Proxy) Current() any {
	if p.delegate == nil {
		return nil
	}
	return p.delegate.Current()
}

// Next implements Value.
func (p *Proxy) Next() (any, error) {
	if p.delegate == nil {
		return nil, fmt.Errorf("value: proxy %q is unbound", p.name)
	}
	if err := p.guard.enter(p.name); err != nil {
		return nil, err
	}
	defer p.guard.leave()
	return p.delegate.Next()
}

// Reset implements Value.
func (p *Proxy) Reset() {
	if p.delegate != nil {
		p.delegate.Reset()
	}
}

// value implements Value.
func (*Proxy) value() {}
