package api

import (
	"errors"
	"fmt"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
)

// Api is the built, immutable API model: the flat route list, the filter
// list in declaration order, the optional static-files descriptor and the
// set of auth tags in use. An Api may be shared read-only across any number
// of goroutines.
type Api[C any] struct {
	routes    []HandlerRoute[C]
	filters   []filter.Filter[C]
	static    *StaticRoute
	authTypes []Auth
}

// Build folds the builder tree into an Api, validating the entire
// declaration. Every detectable violation is reported in the returned
// error (joined), so a failing build surfaces all problems at once. Build
// must be called on the root builder.
func (b *Builder[C]) Build() (*Api[C], error) {
	if b.parent != nil {
		return nil, errors.New("api: Build must be called on the root builder")
	}

	var (
		errs    []error
		routes  []HandlerRoute[C]
		filters []filter.Filter[C]
		statics []StaticRoute
	)
	for _, scope := range b.descendants() {
		errs = append(errs, scope.errs...)
		routes = append(routes, scope.routes...)
		filters = append(filters, scope.filters...)
		statics = append(statics, scope.statics...)
	}

	if len(statics) > 1 {
		paths := make([]string, len(statics))
		for i, s := range statics {
			paths[i] = s.Path
		}
		errs = append(errs, fmt.Errorf("%w: declared at %v", ErrMultipleStaticFiles, paths))
	}

	authTypes := collectAuthTypes(routes, statics)
	if n := countNonDefault(authTypes); n > 1 {
		errs = append(errs, fmt.Errorf("%w: found %v", ErrMultipleAuthTypes, nonDefault(authTypes)))
	}

	routes = append(routes, synthesizeOptions(routes)...)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	a := &Api[C]{
		routes:    routes,
		filters:   filters,
		authTypes: authTypes,
	}
	if len(statics) == 1 {
		s := statics[0]
		a.static = &s
	}
	return a, nil
}

// synthesizeOptions generates an OPTIONS route for every cors-enabled path
// lacking an explicit one. The handler returns an empty body, so the coerced
// response carries whatever default headers the CORS filter seeded.
func synthesizeOptions[C any](routes []HandlerRoute[C]) []HandlerRoute[C] {
	explicit := make(map[string]bool)
	for _, r := range routes {
		if r.Method == OPTIONS {
			explicit[r.Path] = true
		}
	}

	var synthesized []HandlerRoute[C]
	seen := make(map[string]bool)
	for _, r := range routes {
		if !r.CORS || r.Method == OPTIONS || explicit[r.Path] || seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		synthesized = append(synthesized, HandlerRoute[C]{
			Method:      OPTIONS,
			Path:        r.Path,
			Handler:     emptyHandler[C],
			Auth:        AuthNone,
			CORS:        true,
			Synthesized: true,
		})
	}
	return synthesized
}

func emptyHandler[C any](_ C, _ *handler.Request) any { return nil }

func collectAuthTypes[C any](routes []HandlerRoute[C], statics []StaticRoute) []Auth {
	seen := make(map[Auth]bool)
	var out []Auth
	add := func(a Auth) {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	for _, r := range routes {
		add(r.Auth)
	}
	for _, s := range statics {
		add(s.Auth)
	}
	return out
}

func countNonDefault(tags []Auth) int {
	return len(nonDefault(tags))
}

func nonDefault(tags []Auth) []Auth {
	var out []Auth
	for _, t := range tags {
		if t != AuthNone {
			out = append(out, t)
		}
	}
	return out
}

// Routes returns a copy of the route list, synthesized OPTIONS included.
func (a *Api[C]) Routes() []HandlerRoute[C] {
	return append([]HandlerRoute[C](nil), a.routes...)
}

// Filters returns a copy of the always-applied filter list in declaration
// order.
func (a *Api[C]) Filters() []filter.Filter[C] {
	return append([]filter.Filter[C](nil), a.filters...)
}

// Static returns the static-files descriptor, or nil when none is declared.
func (a *Api[C]) Static() *StaticRoute {
	if a.static == nil {
		return nil
	}
	s := *a.static
	return &s
}

// AuthTypes returns every auth tag in use, the default included.
func (a *Api[C]) AuthTypes() []Auth {
	return append([]Auth(nil), a.authTypes...)
}
