// Package middleware provides ready-made filters for common cross-cutting
// concerns: panic/error recovery, CORS header population, request logging
// and request-ID injection.
//
// Each constructor returns an ordinary filter.Filter, registered on the
// builder like any user filter:
//
//	b := api.NewBuilder[*Components]()
//	b.Use(
//		middleware.Recovery[*Components](),
//		middleware.RequestID[*Components](),
//		middleware.Logging[*Components](logger),
//	)
//
// Recovery should be declared first so it wraps everything else: it is the
// layer that guarantees no handler or filter failure ever escapes the
// outermost wrap.
package middleware
