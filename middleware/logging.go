package middleware

import (
	"log/slog"
	"time"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/response"
	"github.com/trellisdev/trellis/pkg/logger"
)

// Logging returns a filter that logs one line per dispatched request with
// method, path, status and latency. The status is derived by coercing the
// inner result, so the logged response is exactly what the adapter writes.
func Logging[C any](log *slog.Logger) filter.Filter[C] {
	return filter.Must[C]("/*", func(comps C, req *handler.Request, next handler.HandlerFunc[C]) any {
		start := time.Now()
		resp := response.Coerce(next(comps, req), req)

		log.Info("request",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Int("status", resp.Status),
			logger.Elapsed(start),
		)
		return resp
	})
}
