// Package handler defines the request, response and function types shared by
// the api builder, the route tree and the built-in filters.
//
// Handlers are two-argument pure functions: the application's components
// value is passed explicitly alongside the request, so handler code never
// relies on receiver binding or globals:
//
//	func listUsers(c *Components, req *handler.Request) any {
//		return c.Users.All(req)
//	}
//
// A handler may return a ready handler.Response, or any plain value; plain
// values are coerced by the wrapping layer into a 200 response carrying the
// request's default response headers. Domain failures are signalled with the
// typed Error, which the recovery filter translates into a response.
package handler
