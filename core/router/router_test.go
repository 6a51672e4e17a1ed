package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellisdev/trellis/core/api"
	"github.com/trellisdev/trellis/core/handler"
	"github.com/trellisdev/trellis/core/router"
)

func mark(value string) handler.HandlerFunc[*comps] {
	return func(_ *comps, _ *handler.Request) any {
		return value
	}
}

func dispatch(t *testing.T, r *router.Router[*comps], method api.Method, path string) handler.Response {
	t.Helper()
	m, err := r.Match(method, path)
	require.NoError(t, err)
	require.NotNil(t, m.Handler)
	req := handler.NewRequest(string(method), path)
	for k, v := range m.Params {
		req.PathParams[k] = v
	}
	return m.Handler(&comps{}, req)
}

func TestMatchResolvesDeclaredHandlers(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/users", mark("list"))
		b.Post("/users", mark("create"))
		b.Get("/users/{id}", mark("show"))
		b.Get("/", mark("root"))
	})
	require.NoError(t, err)

	assert.Equal(t, "list", dispatch(t, r, api.GET, "/users").Body)
	assert.Equal(t, "create", dispatch(t, r, api.POST, "/users").Body)
	assert.Equal(t, "show", dispatch(t, r, api.GET, "/users/42").Body)
	assert.Equal(t, "root", dispatch(t, r, api.GET, "/").Body)
}

func TestMatchBindsPathVariables(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/users/{id}/posts/{postId}", ok)
	})
	require.NoError(t, err)

	m, err := r.Match(api.GET, "/users/jane/posts/17")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "jane", "postId": "17"}, m.Params)
}

func TestMatchLiteralWinsOverVariable(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/foo/bar", mark("literal"))
		b.Get("/foo/{x}", mark("variable"))
	})
	require.NoError(t, err)

	assert.Equal(t, "literal", dispatch(t, r, api.GET, "/foo/bar").Body)

	m, err := r.Match(api.GET, "/foo/baz")
	require.NoError(t, err)
	assert.Equal(t, "baz", m.Params["x"])
	assert.Equal(t, "variable", dispatch(t, r, api.GET, "/foo/baz").Body)
}

func TestMatchNotFoundIsSentinel(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/exists", ok)
	})
	require.NoError(t, err)

	_, err = r.Match(api.DELETE, "/does/not/exist")
	assert.ErrorIs(t, err, router.ErrNotFound)

	// path exists, method does not
	_, err = r.Match(api.POST, "/exists")
	assert.ErrorIs(t, err, router.ErrNotFound)
}

func TestMatchToleratesSloppySlashes(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/users/{id}", mark("show"))
	})
	require.NoError(t, err)

	assert.Equal(t, "show", dispatch(t, r, api.GET, "//users/42/").Body)
}

func TestMatchIdempotentAcrossBuilds(t *testing.T) {
	t.Parallel()

	declare := func(b *api.Builder[*comps]) {
		b.Get("/users", mark("list"))
		b.Get("/users/{id}", mark("show"))
		b.Get("/foo/bar", mark("literal"))
		b.Get("/foo/{x}", mark("variable"))
	}

	b1 := api.NewBuilder[*comps]()
	declare(b1)
	a, err := b1.Build()
	require.NoError(t, err)

	r1, err := router.New(a)
	require.NoError(t, err)
	r2, err := router.New(a)
	require.NoError(t, err)

	probes := []struct {
		method api.Method
		path   string
	}{
		{api.GET, "/users"},
		{api.GET, "/users/7"},
		{api.GET, "/foo/bar"},
		{api.GET, "/foo/other"},
		{api.POST, "/users"},
		{api.GET, "/missing"},
	}
	for _, p := range probes {
		m1, err1 := r1.Match(p.method, p.path)
		m2, err2 := r2.Match(p.method, p.path)
		if err1 != nil {
			assert.ErrorIs(t, err2, router.ErrNotFound)
			continue
		}
		require.NoError(t, err2)
		assert.Equal(t, m1.Params, m2.Params)
		req := handler.NewRequest(string(p.method), p.path)
		assert.Equal(t, m1.Handler(&comps{}, req).Body, m2.Handler(&comps{}, req).Body)
	}
}

func TestMatchSynthesizedOptions(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.CORS(func(c *api.Builder[*comps]) {
			c.Get("/items", ok)
		})
	})
	require.NoError(t, err)

	m, err := r.Match(api.OPTIONS, "/items")
	require.NoError(t, err)
	require.NotNil(t, m.Handler)

	resp := m.Handler(&comps{}, handler.NewRequest("OPTIONS", "/items"))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Nil(t, resp.Body)
	// the default CORS filter seeded preflight headers through coercion
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.NotEmpty(t, resp.Headers["Access-Control-Allow-Methods"])
}

func TestMatchStaticNode(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/api/info", ok)
		b.StaticFiles("/pub", api.WithIndexFile("index.html"))
	})
	require.NoError(t, err)

	m, err := r.Match(api.GET, "/pub/css/site.css")
	require.NoError(t, err)
	require.NotNil(t, m.Static)
	assert.Nil(t, m.Handler)
	assert.Equal(t, "/pub", m.Static.Path)
	assert.Equal(t, "css/site.css", m.FilePath)

	// the prefix itself resolves to the index file
	m, err = r.Match(api.GET, "/pub")
	require.NoError(t, err)
	require.NotNil(t, m.Static)
	assert.Equal(t, "", m.FilePath)
	assert.Equal(t, "index.html", m.Static.IndexFile)
}

func TestMatchConcurrent(t *testing.T) {
	t.Parallel()

	r, err := build(t, func(b *api.Builder[*comps]) {
		b.Get("/users/{id}", ok)
	})
	require.NoError(t, err)

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 500; i++ {
				m, err := r.Match(api.GET, "/users/42")
				if err != nil || m.Params["id"] != "42" {
					t.Error("concurrent match failed", i)
					return
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
