// Package response provides constructors for canonical responses and the
// coercion rule applied by every filter-chain layer.
//
// Handlers are free to return a plain value; Coerce turns it into a 200
// response seeded with the request's default response headers. Returning a
// ready handler.Response bypasses coercion, which is how filters
// short-circuit with fully custom statuses and headers.
package response
