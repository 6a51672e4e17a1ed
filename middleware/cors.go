package middleware

import (
	"strconv"
	"strings"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
)

// CORSConfig controls the headers seeded by the CORS filter.
type CORSConfig struct {
	// AllowOrigins lists allowed origins. Empty, or containing "*", allows
	// every origin.
	AllowOrigins []string

	// AllowMethods lists allowed HTTP methods. Empty defaults to every
	// method the engine supports.
	AllowMethods []string

	// AllowHeaders lists allowed request headers. Empty defaults to common
	// API headers including Authorization and Content-Type.
	AllowHeaders []string

	// ExposeHeaders lists response headers exposed to the client.
	ExposeHeaders []string

	// AllowCredentials permits cookies and authorization headers. Ignored
	// with wildcard origins: credentials must never pair with "*".
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// CORS returns a header-population filter with a permissive default
// configuration (any origin, every supported method).
func CORS[C any]() filter.Filter[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig returns a header-population filter. It seeds
// Access-Control-* headers into the request's default response headers
// before invoking the inner handler, so coerced handler responses and
// synthesized OPTIONS preflight responses both carry them. Pass it to
// router.WithCORSFilter to wrap cors-enabled routes.
func CORSWithConfig[C any](cfg CORSConfig) filter.Filter[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "UPDATE", "OPTIONS"}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Accept-Language",
			"Content-Type",
			"Origin",
			"Authorization",
			"X-Request-ID",
		}
	}

	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	allowOrigins := make(map[string]bool, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		allowOrigins[o] = true
	}
	wildcard := len(cfg.AllowOrigins) == 0 || allowOrigins["*"]

	return filter.Must[C]("/*", func(comps C, req *handler.Request, next handler.HandlerFunc[C]) any {
		origin := req.Header("Origin")

		allowedOrigin := ""
		switch {
		case wildcard:
			allowedOrigin = "*"
		case allowOrigins[origin]:
			allowedOrigin = origin
		}

		if allowedOrigin != "" {
			req.DefaultHeaders["Access-Control-Allow-Origin"] = allowedOrigin
			req.DefaultHeaders["Access-Control-Allow-Methods"] = allowMethods
			req.DefaultHeaders["Access-Control-Allow-Headers"] = allowHeaders
			if exposeHeaders != "" {
				req.DefaultHeaders["Access-Control-Expose-Headers"] = exposeHeaders
			}
			// credentials must not pair with a wildcard origin
			if cfg.AllowCredentials && allowedOrigin != "*" {
				req.DefaultHeaders["Access-Control-Allow-Credentials"] = "true"
			}
			if cfg.MaxAge > 0 {
				req.DefaultHeaders["Access-Control-Max-Age"] = strconv.Itoa(cfg.MaxAge)
			}
			req.DefaultHeaders["Vary"] = "Origin"
		}

		return next(comps, req)
	})
}
