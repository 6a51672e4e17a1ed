package filter

import (
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/routepath"
)

// Filter wraps handlers whose request path matches its pattern. The zero
// value is unusable; construct filters with New or Must.
type Filter[C any] struct {
	pattern  string
	segments []routepath.Segment
	fn       handler.FilterFunc[C]
}

// New creates a filter from a pattern and a wrapper function. The pattern
// grammar allows literal segments plus "*" or "{name}" wildcards; an invalid
// pattern is a build-time error.
func New[C any](pattern string, fn handler.FilterFunc[C]) (Filter[C], error) {
	if err := routepath.ValidateFilter(pattern); err != nil {
		return Filter[C]{}, err
	}
	return Filter[C]{
		pattern:  pattern,
		segments: routepath.Split(pattern),
		fn:       fn,
	}, nil
}

// Must is like New but panics on an invalid pattern. Intended for filters
// with compile-time-constant patterns.
func Must[C any](pattern string, fn handler.FilterFunc[C]) Filter[C] {
	f, err := New(pattern, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// Pattern returns the declared pattern string.
func (f Filter[C]) Pattern() string { return f.pattern }

// Apply invokes the wrapper function around next.
func (f Filter[C]) Apply(comps C, req *handler.Request, next handler.HandlerFunc[C]) any {
	return f.fn(comps, req, next)
}

// Matches reports whether the pattern covers a request path already split
// into raw segment tokens. The walk is an explicit loop so deep paths never
// grow the stack.
func (f Filter[C]) Matches(request []string) bool {
	segs := f.segments
	for i := 0; ; i++ {
		if i == len(segs) {
			// pattern exhausted with request segments left over
			return false
		}
		last := i == len(segs)-1
		if last && star(segs[i]) {
			// trailing "*" greedily takes the rest; a trailing "{name}"
			// wildcard still consumes exactly one segment
			return true
		}
		if i == len(request) {
			return false
		}
		if !wildcard(segs[i]) && segs[i].Value() != request[i] {
			return false
		}
		if last && i == len(request)-1 {
			return true
		}
	}
}

// MatchesPath is a convenience form of Matches for a raw path string.
func (f Filter[C]) MatchesPath(path string) bool {
	return f.Matches(routepath.Tokens(path))
}

// wildcard reports whether a pattern segment matches any request segment.
// In filter patterns a "{name}" variable is a wildcard with its name
// ignored; only route paths bind variables.
func wildcard(s routepath.Segment) bool {
	return s.IsVariable() || star(s)
}

func star(s routepath.Segment) bool {
	return !s.IsVariable() && s.Value() == "*"
}
