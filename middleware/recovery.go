package middleware

import (
	"net/http"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/response"
)

// Recovery returns the exception-mapping filter. It translates typed
// handler.Error values, whether returned or panicked, into responses with
// their declared status, and any other panic or error into a generic 500. With
// Recovery as the first declared filter, no user-code failure escapes the
// outermost wrap, and one request's failure never affects another.
func Recovery[C any]() filter.Filter[C] {
	return filter.Must[C]("/*", func(comps C, req *handler.Request, next handler.HandlerFunc[C]) (out any) {
		defer func() {
			if r := recover(); r != nil {
				out = mapFailure(r)
			}
		}()

		result := next(comps, req)
		if err, ok := result.(error); ok {
			return mapFailure(err)
		}
		return result
	})
}

func mapFailure(v any) handler.Response {
	switch e := v.(type) {
	case handler.Error:
		return response.Error(e)
	case *handler.Error:
		if e != nil {
			return response.Error(*e)
		}
	}
	return response.Error(handler.Error{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_SERVER_ERROR",
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
