package middleware

import (
	"github.com/google/uuid"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
)

// RequestIDKey is the request-context key under which the request ID is
// stored.
const RequestIDKey = "request_id"

// RequestIDHeader is the header carrying the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID returns a filter that ensures every request carries an ID. An
// incoming X-Request-ID header is trusted; otherwise a UUID is generated.
// The ID is exposed to handlers via the request context and echoed back on
// coerced responses through the default response headers.
func RequestID[C any]() filter.Filter[C] {
	return filter.Must[C]("/*", func(comps C, req *handler.Request, next handler.HandlerFunc[C]) any {
		id := req.Header(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		req.Context[RequestIDKey] = id
		req.DefaultHeaders[RequestIDHeader] = id
		return next(comps, req)
	})
}
