package trace

import "context"

// requestIDKey is an unexported type so values stored under it cannot collide
// with keys set by other packages using context.WithValue.
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
//
// An empty string is a valid request ID, distinguishable from "not set" via
// the second return value of [RequestIDFrom].
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom extracts the request ID previously attached with
// [WithRequestID]. ok is false if ctx carries no request ID.
func RequestIDFrom(ctx context.Context) (id string, ok bool) {
	id, ok = ctx.Value(requestIDKey{}).(string)
	return id, ok
}
