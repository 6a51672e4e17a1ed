package api

import (
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/routepath"
)

// Method is an HTTP method supported by route declarations.
type Method string

const (
	GET     Method = "GET"
	POST    Method = "POST"
	PUT     Method = "PUT"
	PATCH   Method = "PATCH"
	DELETE  Method = "DELETE"
	UPDATE  Method = "UPDATE"
	OPTIONS Method = "OPTIONS"
)

// Methods lists every declarable method in a stable order.
var Methods = []Method{GET, POST, PUT, PATCH, DELETE, UPDATE, OPTIONS}

// Valid reports whether m is a declarable method.
func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// Auth tags a route with the authorization scheme protecting it. The zero
// value means no authorization. The underlying authorization layer supports
// a single scheme per API, so at most one non-default tag may appear across
// all routes.
type Auth string

// AuthNone is the default tag: no authorization required.
const AuthNone Auth = ""

// Route is the sealed union of declarative routing units. The tree builder
// switches on the two variants, HandlerRoute and StaticRoute.
type Route interface {
	// RoutePath returns the fully resolved path of the declaration.
	RoutePath() string
	// RouteAuth returns the auth tag protecting the declaration.
	RouteAuth() Auth

	sealedRoute()
}

// HandlerRoute declares one (method, path, handler, auth) endpoint. Created
// by the builder; immutable once the Api is built.
type HandlerRoute[C any] struct {
	Method  Method
	Path    string
	Handler handler.HandlerFunc[C]
	Auth    Auth
	CORS    bool

	// Synthesized marks OPTIONS routes generated for CORS preflight.
	Synthesized bool
}

// RoutePath implements Route.
func (r HandlerRoute[C]) RoutePath() string { return r.Path }

// RouteAuth implements Route.
func (r HandlerRoute[C]) RouteAuth() Auth { return r.Auth }

func (r HandlerRoute[C]) sealedRoute() {}

// Segments returns the parsed segment list of the route path.
func (r HandlerRoute[C]) Segments() []routepath.Segment {
	return routepath.Split(r.Path)
}

// StaticRoute declares a static-file serving prefix. The engine treats it
// as a declarative marker; resolving and streaming file bytes is the job of
// an external serving layer keyed off path, auth and index file.
type StaticRoute struct {
	Path      string
	IndexFile string
	Auth      Auth
}

// RoutePath implements Route.
func (r StaticRoute) RoutePath() string { return r.Path }

// RouteAuth implements Route.
func (r StaticRoute) RouteAuth() Auth { return r.Auth }

func (r StaticRoute) sealedRoute() {}

// Segments returns the parsed segment list of the static path.
func (r StaticRoute) Segments() []routepath.Segment {
	return routepath.Split(r.Path)
}
