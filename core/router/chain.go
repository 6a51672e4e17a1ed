package router

import (
	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/response"
)

// chain wraps an endpoint in its filter stack, first filter outermost.
// Every layer stays in place for every request; a filter whose pattern does
// not cover the request path costs exactly one predicate check and passes
// straight through. Each layer coerces its return value, so the wrapped
// handler always yields a canonical Response.
func chain[C any](filters []filter.Filter[C], endpoint handler.HandlerFunc[C]) handler.Wrapped[C] {
	wrapped := func(comps C, req *handler.Request) handler.Response {
		return response.Coerce(endpoint(comps, req), req)
	}

	for i := len(filters) - 1; i >= 0; i-- {
		f := filters[i]
		inner := wrapped
		wrapped = func(comps C, req *handler.Request) handler.Response {
			if !f.MatchesPath(req.Path) {
				return inner(comps, req)
			}
			next := func(c C, r *handler.Request) any {
				return inner(c, r)
			}
			return response.Coerce(f.Apply(comps, req, next), req)
		}
	}

	return wrapped
}
