package handler

import "strings"

// Request is the transport-independent view of one incoming call. The wire
// adapter (HTTP server, serverless proxy event, test harness) constructs it
// once per request; the dispatcher fills PathParams from the matched route.
//
// A Request is owned by a single dispatch and must not be shared across
// concurrent handler invocations.
type Request struct {
	// Method is the HTTP method of the call, upper-case.
	Method string

	// Path is the concrete request path, e.g. "/users/42".
	Path string

	// Headers holds request headers keyed case-insensitively via Header().
	Headers map[string]string

	// Query holds single-valued query parameters.
	Query map[string]string

	// PathParams holds path-variable bindings from route matching.
	PathParams map[string]string

	// Body is the parsed request body. Its concrete type is set by the
	// adapter: nil, string, []byte or a decoded structure.
	Body any

	// Context is an opaque per-request value bag for filters and handlers.
	Context map[string]any

	// DefaultHeaders seeds the headers of coerced responses. Filters mutate
	// it before invoking the inner handler; the coercion layer copies it into
	// any response synthesized from a plain return value.
	DefaultHeaders map[string]string
}

// NewRequest constructs a Request with all lookup tables allocated.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:         strings.ToUpper(method),
		Path:           path,
		Headers:        make(map[string]string),
		Query:          make(map[string]string),
		PathParams:     make(map[string]string),
		Context:        make(map[string]any),
		DefaultHeaders: make(map[string]string),
	}
}

// Header returns the request header for key, matching case-insensitively.
func (r *Request) Header(key string) string {
	if v, ok := r.Headers[key]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

// Param returns the bound path variable for key, or "".
func (r *Request) Param(key string) string {
	return r.PathParams[key]
}

// QueryParam returns the query parameter for key, or "".
func (r *Request) QueryParam(key string) string {
	return r.Query[key]
}
