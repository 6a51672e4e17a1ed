package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/trellisdev/trellis/core/api"
	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/routepath"
)

// Router owns the built route tree. Construct it once with New; afterwards
// it is immutable and safe for concurrent Match calls.
type Router[C any] struct {
	root       *node[C]
	corsFilter *filter.Filter[C]
	logger     *slog.Logger
}

// RouteMatch is the ephemeral per-request result of a successful Match.
// The caller invokes Handler with a concrete request, or, when Static is
// set, hands FilePath to the static serving layer.
type RouteMatch[C any] struct {
	// Handler is the filter-wrapped handler. Nil when Static is set.
	Handler handler.Wrapped[C]

	// Params holds the path-variable bindings for this request.
	Params map[string]string

	// Auth is the tag protecting the matched endpoint.
	Auth api.Auth

	// Static is the static-files descriptor when the walk ended at a
	// static node.
	Static *api.StaticRoute

	// FilePath is the request path relative to the static prefix, slash
	// separated without a leading slash. Empty means the prefix itself was
	// requested and the index file applies.
	FilePath string
}

// RouteInfo describes one registered endpoint for introspection.
type RouteInfo struct {
	Method      api.Method
	Path        string
	Auth        api.Auth
	CORS        bool
	Synthesized bool
}

// Option configures a Router during construction.
type Option[C any] func(*Router[C])

// WithLogger sets the logger used during tree construction.
func WithLogger[C any](l *slog.Logger) Option[C] {
	return func(r *Router[C]) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCORSFilter replaces the header-population filter wrapped around
// cors-enabled routes. The default allows any origin.
func WithCORSFilter[C any](f filter.Filter[C]) Option[C] {
	return func(r *Router[C]) {
		r.corsFilter = &f
	}
}

// New folds the Api's routes into a route tree, wrapping every handler in
// its filter chain. All build-time violations are validated here and
// reported together; a non-nil error means no usable tree.
func New[C any](a *api.Api[C], opts ...Option[C]) (*Router[C], error) {
	r := &Router[C]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.corsFilter == nil {
		f := defaultCORSFilter[C]()
		r.corsFilter = &f
	}

	globals := a.Filters()
	routes := a.Routes()

	subs := make([]subRoute[C], 0, len(routes)+1)
	for _, rt := range routes {
		// cors routes get the header filter as their outermost wrap; the
		// always-applied filters sit inside it
		effective := globals
		if rt.CORS {
			effective = append([]filter.Filter[C]{*r.corsFilter}, globals...)
		}
		subs = append(subs, subRoute[C]{
			suffix:      rt.Segments(),
			path:        rt.Path,
			method:      rt.Method,
			wrapped:     chain(effective, rt.Handler),
			auth:        rt.Auth,
			cors:        rt.CORS,
			synthesized: rt.Synthesized,
		})
	}
	if s := a.Static(); s != nil {
		subs = append(subs, subRoute[C]{
			suffix: s.Segments(),
			path:   s.Path,
			static: s,
		})
	}

	var errs []error
	r.root = buildNode(routepath.Literal(""), subs, &errs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	r.logger.Debug("route tree built",
		slog.Int("routes", len(routes)),
		slog.Bool("static_files", a.Static() != nil))
	return r, nil
}

// Match resolves a method and concrete path to a handler and its variable
// bindings. A miss returns ErrNotFound; it never panics. Fixed children are
// always consulted before the variable child, so literal routes win over
// variable routes at the same position.
func (r *Router[C]) Match(method api.Method, path string) (*RouteMatch[C], error) {
	tokens := routepath.Tokens(path)
	params := make(map[string]string)

	n := r.root
	for i, token := range tokens {
		if n.typ == ntStatic {
			// a static node greedily owns everything beneath its prefix
			return r.staticMatch(n, tokens[i:], params), nil
		}
		if child, ok := n.fixed[token]; ok {
			n = child
			continue
		}
		if n.variable != nil {
			params[n.variable.name] = token
			n = n.variable
			continue
		}
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}

	if n.typ == ntStatic {
		return r.staticMatch(n, nil, params), nil
	}

	ep, ok := n.endpoints[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	return &RouteMatch[C]{
		Handler: ep.handler,
		Params:  params,
		Auth:    ep.auth,
	}, nil
}

func (r *Router[C]) staticMatch(n *node[C], remaining []string, params map[string]string) *RouteMatch[C] {
	return &RouteMatch[C]{
		Params:   params,
		Auth:     n.static.Auth,
		Static:   n.static,
		FilePath: strings.Join(remaining, "/"),
	}
}

// Routes lists every registered endpoint, synthesized OPTIONS included,
// sorted by path then method.
func (r *Router[C]) Routes() []RouteInfo {
	var out []RouteInfo
	r.root.walk(func(n *node[C]) {
		for _, m := range api.Methods {
			if ep, ok := n.endpoints[m]; ok {
				out = append(out, RouteInfo{
					Method:      m,
					Path:        ep.pattern,
					Auth:        ep.auth,
					CORS:        ep.cors,
					Synthesized: ep.synthesized,
				})
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// defaultCORSFilter seeds permissive CORS headers into the request's
// default response headers so both coerced handler responses and
// synthesized preflight responses carry them.
func defaultCORSFilter[C any]() filter.Filter[C] {
	return filter.Must[C]("/*", func(comps C, req *handler.Request, next handler.HandlerFunc[C]) any {
		req.DefaultHeaders["Access-Control-Allow-Origin"] = "*"
		req.DefaultHeaders["Access-Control-Allow-Methods"] = methodsHeader
		req.DefaultHeaders["Access-Control-Allow-Headers"] = "Content-Type,Authorization"
		return next(comps, req)
	})
}

var methodsHeader = func() string {
	parts := make([]string, len(api.Methods))
	for i, m := range api.Methods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}()
