package api

import (
	"fmt"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/routepath"
)

// Builder accumulates routes and filters declared in one lexical scope.
// Nested scopes are materialized as child builders created by Path, Auth and
// CORS; Build on the root folds the whole tree into an immutable Api.
//
// A Builder is not safe for concurrent use; declarations happen once, in one
// goroutine, before the API is built.
type Builder[C any] struct {
	parent   *Builder[C]
	prefix   []routepath.Segment
	auth     Auth
	inAuth   bool
	cors     bool
	children []*Builder[C]
	routes   []HandlerRoute[C]
	statics  []StaticRoute
	filters  []filter.Filter[C]
	errs     []error
}

// NewBuilder creates a root builder.
func NewBuilder[C any]() *Builder[C] {
	return &Builder[C]{}
}

// Path opens a nested scope under the given path prefix. Routes declared in
// fn resolve relative to the prefix.
func (b *Builder[C]) Path(prefix string, fn func(*Builder[C])) {
	child := b.child()
	if err := routepath.ValidateRoute(prefix); err != nil {
		b.errs = append(b.errs, err)
	} else {
		child.prefix = append(child.prefix, routepath.Split(prefix)...)
	}
	if fn != nil {
		fn(child)
	}
}

// Auth opens a nested scope whose routes are protected by the given auth
// tag. Opening an auth scope while already inside one is a programming
// error and panics at declaration time.
func (b *Builder[C]) Auth(tag Auth, fn func(*Builder[C])) {
	if b.inAuth {
		panic(fmt.Errorf("%w: %q", ErrNestedAuthScope, tag))
	}
	child := b.child()
	child.auth = tag
	child.inAuth = true
	if fn != nil {
		fn(child)
	}
}

// CORS opens a nested scope whose routes allow cross-origin calls. Each
// such route is wrapped with the CORS header filter at tree-build time, and
// paths without an explicit OPTIONS route get a preflight route synthesized
// by Build.
func (b *Builder[C]) CORS(fn func(*Builder[C])) {
	child := b.child()
	child.cors = true
	if fn != nil {
		fn(child)
	}
}

// Use appends always-applied filters to the API in declaration order.
func (b *Builder[C]) Use(filters ...filter.Filter[C]) {
	b.filters = append(b.filters, filters...)
}

// Get declares a GET route in this scope.
func (b *Builder[C]) Get(path string, h handler.HandlerFunc[C]) { b.Handle(GET, path, h) }

// Post declares a POST route in this scope.
func (b *Builder[C]) Post(path string, h handler.HandlerFunc[C]) { b.Handle(POST, path, h) }

// Put declares a PUT route in this scope.
func (b *Builder[C]) Put(path string, h handler.HandlerFunc[C]) { b.Handle(PUT, path, h) }

// Patch declares a PATCH route in this scope.
func (b *Builder[C]) Patch(path string, h handler.HandlerFunc[C]) { b.Handle(PATCH, path, h) }

// Delete declares a DELETE route in this scope.
func (b *Builder[C]) Delete(path string, h handler.HandlerFunc[C]) { b.Handle(DELETE, path, h) }

// Update declares an UPDATE route in this scope.
func (b *Builder[C]) Update(path string, h handler.HandlerFunc[C]) { b.Handle(UPDATE, path, h) }

// Options declares an explicit OPTIONS route in this scope.
func (b *Builder[C]) Options(path string, h handler.HandlerFunc[C]) { b.Handle(OPTIONS, path, h) }

// Handle declares a route for an arbitrary supported method. Grammar and
// declaration errors are collected and reported together by Build.
func (b *Builder[C]) Handle(method Method, path string, h handler.HandlerFunc[C]) {
	if !method.Valid() {
		b.errs = append(b.errs, fmt.Errorf("%w: %q on path %q", ErrInvalidMethod, method, path))
		return
	}
	if h == nil {
		b.errs = append(b.errs, fmt.Errorf("%w: %s %q", ErrNilHandler, method, path))
		return
	}
	if err := routepath.ValidateRoute(path); err != nil {
		b.errs = append(b.errs, err)
		return
	}
	b.routes = append(b.routes, HandlerRoute[C]{
		Method:  method,
		Path:    b.resolve(path),
		Handler: h,
		Auth:    b.auth,
		CORS:    b.cors,
	})
}

// StaticOption configures a static-files declaration.
type StaticOption func(*StaticRoute)

// WithIndexFile sets the file served when the static prefix itself is
// requested.
func WithIndexFile(name string) StaticOption {
	return func(r *StaticRoute) {
		r.IndexFile = name
	}
}

// StaticFiles declares the static-file serving prefix for this scope. At
// most one declaration is permitted across the whole builder tree; Build
// reports a violation.
func (b *Builder[C]) StaticFiles(path string, opts ...StaticOption) {
	if err := routepath.ValidateStatic(path); err != nil {
		b.errs = append(b.errs, err)
		return
	}
	r := StaticRoute{Path: b.resolve(path), Auth: b.auth}
	for _, opt := range opts {
		opt(&r)
	}
	b.statics = append(b.statics, r)
}

// child creates a nested scope inheriting prefix, auth and cors state.
func (b *Builder[C]) child() *Builder[C] {
	c := &Builder[C]{
		parent: b,
		prefix: append([]routepath.Segment(nil), b.prefix...),
		auth:   b.auth,
		inAuth: b.inAuth,
		cors:   b.cors,
	}
	b.children = append(b.children, c)
	return c
}

// resolve joins the scope prefix with a declared path into canonical form.
func (b *Builder[C]) resolve(path string) string {
	segs := append(append([]routepath.Segment(nil), b.prefix...), routepath.Split(path)...)
	return routepath.Join(segs)
}

// descendants returns the builder and all nested scopes in declaration
// order (depth-first).
func (b *Builder[C]) descendants() []*Builder[C] {
	out := []*Builder[C]{b}
	for _, c := range b.children {
		out = append(out, c.descendants()...)
	}
	return out
}
