package routepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellisdev/trellis/core/routepath"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token    string
		variable bool
		value    string
	}{
		{"users", false, "users"},
		{"{id}", true, "id"},
		{"{user_id}", true, "user_id"},
		{"{}", false, "{}"},
		{"{a-b}", false, "{a-b}"}, // dash is not a word character
		{"*", false, "*"},
		{"v1.2", false, "v1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			seg := routepath.Parse(tt.token)
			assert.Equal(t, tt.variable, seg.IsVariable())
			assert.Equal(t, tt.value, seg.Value())
		})
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{}},
		{"", []string{}},
		{"/users", []string{"users"}},
		{"users", []string{"users"}},
		{"/users/", []string{"users"}},
		{"//users///posts/", []string{"users", "posts"}},
		{"/a/b/c", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, routepath.Tokens(tt.path))
		})
	}
}

func TestSplitAndJoin(t *testing.T) {
	t.Parallel()

	segs := routepath.Split("/users/{id}/posts")
	require.Len(t, segs, 3)
	assert.False(t, segs[0].IsVariable())
	assert.True(t, segs[1].IsVariable())
	assert.Equal(t, "id", segs[1].Value())
	assert.Equal(t, "/users/{id}/posts", routepath.Join(segs))

	assert.Equal(t, "/", routepath.Join(nil))
}

func TestValidateRoute(t *testing.T) {
	t.Parallel()

	valid := []string{
		"/",
		"/users",
		"/users/{id}",
		"/users/{id}/posts/{postId}",
		"/v1.0/items_-~.()",
	}
	for _, p := range valid {
		assert.NoError(t, routepath.ValidateRoute(p), p)
	}

	invalid := []string{
		"",
		"users",
		"/users/*",
		"/sp ace",
		"/per%cent",
		"/bad{mix}",
	}
	for _, p := range invalid {
		assert.ErrorIs(t, routepath.ValidateRoute(p), routepath.ErrInvalidPath, p)
	}
}

func TestValidateStatic(t *testing.T) {
	t.Parallel()

	assert.NoError(t, routepath.ValidateStatic("/pub"))
	assert.NoError(t, routepath.ValidateStatic("/pub/assets"))
	assert.ErrorIs(t, routepath.ValidateStatic("/pub/{version}"), routepath.ErrInvalidPath)
}

func TestValidateFilter(t *testing.T) {
	t.Parallel()

	assert.NoError(t, routepath.ValidateFilter("/*"))
	assert.NoError(t, routepath.ValidateFilter("/admin/*"))
	assert.NoError(t, routepath.ValidateFilter("/admin/{id}"))
	assert.ErrorIs(t, routepath.ValidateFilter("bad"), routepath.ErrInvalidPath)
	assert.ErrorIs(t, routepath.ValidateFilter("/sp ace/*"), routepath.ErrInvalidPath)
}
