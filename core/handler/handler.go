package handler

// HandlerFunc is a type-safe request handler. The components value C is the
// application's shared dependency bundle, constructed once at cold start and
// passed explicitly to every invocation. The return value is either a
// Response or a plain body value to be coerced by the caller.
type HandlerFunc[C any] func(comps C, req *Request) any

// FilterFunc wraps a handler with cross-cutting behavior. It receives the
// inner handler as next and decides whether, and with what request, to
// invoke it. Like handlers, a filter may return a ready Response to
// short-circuit, or any plain value.
type FilterFunc[C any] func(comps C, req *Request, next HandlerFunc[C]) any

// Wrapped is a handler with its filter chain already applied. Every layer of
// the chain coerces its return value, so invoking a Wrapped always yields a
// canonical Response.
type Wrapped[C any] func(comps C, req *Request) Response
