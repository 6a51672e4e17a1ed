package api

import "errors"

var (
	// ErrNestedAuthScope is raised (as a panic) when an auth scope is opened
	// while already inside one. This is a programming error in the
	// declaration itself, so it fails fast rather than waiting for Build.
	ErrNestedAuthScope = errors.New("api: auth scope cannot be nested inside another auth scope")

	// ErrMultipleStaticFiles is reported by Build when more than one
	// static-files declaration exists anywhere in the builder tree.
	ErrMultipleStaticFiles = errors.New("api: at most one static-files declaration is allowed")

	// ErrMultipleAuthTypes is reported by Build when routes use more than
	// one non-default auth tag.
	ErrMultipleAuthTypes = errors.New("api: at most one non-default auth type is allowed")

	// ErrInvalidMethod is reported by Build for a route declared with an
	// unsupported HTTP method.
	ErrInvalidMethod = errors.New("api: invalid http method")

	// ErrNilHandler is reported by Build for a route declared without a
	// handler function.
	ErrNilHandler = errors.New("api: route handler cannot be nil")
)
