package router

import (
	"fmt"
	"sort"

	"github.com/trellisdev/trellis/core/api"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/routepath"
)

type nodeTyp uint8

const (
	ntFixed nodeTyp = iota
	ntVariable
	ntStatic
)

// endpoint is one (method, handler) entry on a node, with the handler
// already wrapped in its filter chain.
type endpoint[C any] struct {
	handler     handler.Wrapped[C]
	auth        api.Auth
	pattern     string
	cors        bool
	synthesized bool
}

// node is one position in the route tree. Immutable once built.
type node[C any] struct {
	typ       nodeTyp
	name      string // literal text, or the variable name bound here
	endpoints map[api.Method]endpoint[C]
	fixed     map[string]*node[C]
	variable  *node[C]
	static    *api.StaticRoute
}

// subRoute is a route plus its yet-unconsumed segment suffix, threaded
// through the recursive fold. Exactly one of wrapped/static is set,
// mirroring the HandlerRoute/StaticRoute variants.
type subRoute[C any] struct {
	suffix      []routepath.Segment
	path        string
	method      api.Method
	wrapped     handler.Wrapped[C]
	auth        api.Auth
	cors        bool
	synthesized bool
	static      *api.StaticRoute
}

func (s subRoute[C]) isStatic() bool { return s.static != nil }

// buildNode folds the sub-routes passing through one tree position into a
// node, recursing once per distinct child segment. The fold is pure and
// deterministic: sibling order never changes the resulting tree shape, only
// the order in which violations are reported.
func buildNode[C any](current routepath.Segment, subs []subRoute[C], errs *[]error) *node[C] {
	n := &node[C]{
		typ:       ntFixed,
		name:      current.Value(),
		endpoints: make(map[api.Method]endpoint[C]),
		fixed:     make(map[string]*node[C]),
	}
	if current.IsVariable() {
		n.typ = ntVariable
	}

	var (
		terminals []subRoute[C]
		byLiteral = make(map[string][]subRoute[C])
		literals  []string
		varSubs   []subRoute[C]
		varNames  []string
	)
	for _, s := range subs {
		if len(s.suffix) == 0 {
			terminals = append(terminals, s)
			continue
		}
		head := s.suffix[0]
		rest := s
		rest.suffix = s.suffix[1:]
		if head.IsVariable() {
			if !contains(varNames, head.Value()) {
				varNames = append(varNames, head.Value())
			}
			varSubs = append(varSubs, rest)
		} else {
			if _, ok := byLiteral[head.Value()]; !ok {
				literals = append(literals, head.Value())
			}
			byLiteral[head.Value()] = append(byLiteral[head.Value()], rest)
		}
	}

	// Terminal routes ending at this node.
	var staticTerminal *subRoute[C]
	for i := range terminals {
		if terminals[i].isStatic() {
			staticTerminal = &terminals[i]
		}
	}
	if staticTerminal != nil {
		if len(terminals) > 1 {
			*errs = append(*errs, fmt.Errorf("%w: %v", ErrStaticConflict, terminalPaths(terminals)))
		}
		if current.IsVariable() {
			*errs = append(*errs, fmt.Errorf("%w: %q", ErrStaticVariableSegment, staticTerminal.path))
		}
		n.typ = ntStatic
		n.static = staticTerminal.static
	}
	for _, s := range terminals {
		if s.isStatic() {
			continue
		}
		if prev, ok := n.endpoints[s.method]; ok {
			*errs = append(*errs, fmt.Errorf("%w: %s declared at %q and %q",
				ErrDuplicateRoute, s.method, prev.pattern, s.path))
			continue
		}
		n.endpoints[s.method] = endpoint[C]{
			handler:     s.wrapped,
			auth:        s.auth,
			pattern:     s.path,
			cors:        s.cors,
			synthesized: s.synthesized,
		}
	}

	// Literal-headed sub-routes become fixed children, one per distinct text.
	sort.Strings(literals)
	for _, text := range literals {
		n.fixed[text] = buildNode(routepath.Literal(text), byLiteral[text], errs)
	}

	// Variable-headed sub-routes share a single variable child; more than
	// one distinct name at this position is illegal.
	if len(varSubs) > 0 {
		if len(varNames) > 1 {
			*errs = append(*errs, fmt.Errorf("%w: %v through %v",
				ErrVariableNameConflict, varNames, subPaths(varSubs)))
		}
		n.variable = buildNode(routepath.Variable(varNames[0]), varSubs, errs)
	}

	// A static node is strictly terminal: no variable child, no deeper routes.
	if n.typ == ntStatic {
		if n.variable != nil {
			*errs = append(*errs, fmt.Errorf("%w: under %q", ErrStaticVariableChild, n.static.Path))
		}
		if len(n.fixed) > 0 {
			*errs = append(*errs, fmt.Errorf("%w: routes nested under static prefix %q",
				ErrStaticConflict, n.static.Path))
		}
	}

	return n
}

// walk visits every node depth-first, literal children in sorted order.
func (n *node[C]) walk(fn func(*node[C])) {
	fn(n)
	keys := make([]string, 0, len(n.fixed))
	for k := range n.fixed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.fixed[k].walk(fn)
	}
	if n.variable != nil {
		n.variable.walk(fn)
	}
}

func terminalPaths[C any](subs []subRoute[C]) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		if s.isStatic() {
			out = append(out, s.static.Path+" (static files)")
		} else {
			out = append(out, string(s.method)+" "+s.path)
		}
	}
	return out
}

func subPaths[C any](subs []subRoute[C]) []string {
	out := make([]string, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.path)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
