package filter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellisdev/trellis/core/filter"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/routepath"
)

func passThrough(_ struct{}, req *handler.Request, next handler.HandlerFunc[struct{}]) any {
	return next(struct{}{}, req)
}

func TestNewValidatesPattern(t *testing.T) {
	t.Parallel()

	_, err := filter.New[struct{}]("no-slash", passThrough)
	assert.ErrorIs(t, err, routepath.ErrInvalidPath)

	f, err := filter.New[struct{}]("/admin/*", passThrough)
	require.NoError(t, err)
	assert.Equal(t, "/admin/*", f.Pattern())

	assert.Panics(t, func() {
		filter.Must[struct{}]("bad pattern", passThrough)
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// catch-all matches every path, including the root
		{"/*", "/", true},
		{"/*", "/a", true},
		{"/*", "/a/b/c", true},

		// trailing wildcard is greedy
		{"/admin/*", "/admin/x", true},
		{"/admin/*", "/admin/x/y", true},
		{"/admin/*", "/other", false},
		{"/admin/*", "/admin", false},

		// a variable segment is a single-segment wildcard, no binding
		{"/admin/{id}", "/admin/123", true},
		{"/admin/{id}", "/admin/123/extra", false},
		{"/admin/{id}/logs", "/admin/123/logs", true},
		{"/admin/{id}/logs", "/admin/123/other", false},
		{"/admin/{id}/logs", "/admin/123", false},

		// literal-only patterns
		{"/health", "/health", true},
		{"/health", "/healthz", false},
		{"/health", "/health/live", false},

		// filter shorter than request without trailing wildcard
		{"/a/b", "/a/b/c", false},
		// request shorter than filter
		{"/a/b/c", "/a/b", false},
	}

	for _, tt := range tests {
		name := tt.pattern + "_vs_" + tt.path
		name = strings.ReplaceAll(name, "/", "_")
		t.Run(name, func(t *testing.T) {
			f := filter.Must[struct{}](tt.pattern, passThrough)
			assert.Equal(t, tt.want, f.MatchesPath(tt.path))
		})
	}
}

func TestMatchesDeepPath(t *testing.T) {
	t.Parallel()

	// static-file proxies produce paths tens of segments deep; the matcher
	// must stay iterative and linear
	deep := strings.Repeat("/seg", 80)
	f := filter.Must[struct{}]("/seg/*", passThrough)
	assert.True(t, f.MatchesPath(deep))
}

func TestApply(t *testing.T) {
	t.Parallel()

	called := false
	f := filter.Must[struct{}]("/*", func(_ struct{}, req *handler.Request, next handler.HandlerFunc[struct{}]) any {
		called = true
		req.Context["seen"] = true
		return next(struct{}{}, req)
	})

	req := handler.NewRequest("GET", "/x")
	out := f.Apply(struct{}{}, req, func(_ struct{}, r *handler.Request) any {
		return r.Context["seen"]
	})

	assert.True(t, called)
	assert.Equal(t, true, out)
}
