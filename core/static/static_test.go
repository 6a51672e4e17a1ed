package static_test

import (
	"context"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellisdev/trellis/core/static"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":     {Data: []byte("<html>home</html>")},
		"css/styles.css": {Data: []byte("body{}")},
		"data/blob":      {Data: []byte{0x00, 0x01}},
	}
}

func TestCleanKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"css/styles.css", "css/styles.css", false},
		{"/css/styles.css", "css/styles.css", false},
		{"css//styles.css", "css/styles.css", false},
		{"css/../index.html", "index.html", false},
		{"", "", false},
		{"..", "", true},
		{"../etc/passwd", "", true},
		{"css/../../etc", "", true},
	}
	for _, tt := range tests {
		got, err := static.CleanKey(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, static.ErrInvalidKey, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFSStoreOpen(t *testing.T) {
	t.Parallel()

	store := static.FS(testFS())

	obj, err := store.Open(context.Background(), "css/styles.css")
	require.NoError(t, err)
	t.Cleanup(func() { _ = obj.Body.Close() })
	assert.Equal(t, "css/styles.css", obj.Key)
	assert.Equal(t, int64(6), obj.Size)
}

func TestFSStoreMisses(t *testing.T) {
	t.Parallel()

	store := static.FS(testFS())

	_, err := store.Open(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, static.ErrNotFound)

	// directories are never served
	_, err = store.Open(context.Background(), "css")
	assert.ErrorIs(t, err, static.ErrNotFound)

	_, err = store.Open(context.Background(), "../secrets")
	assert.ErrorIs(t, err, static.ErrInvalidKey)
}

func TestFilesServe(t *testing.T) {
	t.Parallel()

	files := static.NewFiles(static.FS(testFS()))

	resp, err := files.Serve(context.Background(), "css/styles.css")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "text/css; charset=utf-8", resp.Headers["Content-Type"])
	assert.Equal(t, "6", resp.Headers["Content-Length"])
	assert.Equal(t, []byte("body{}"), resp.Body)
}

func TestFilesServeUnknownExtension(t *testing.T) {
	t.Parallel()

	files := static.NewFiles(static.FS(testFS()))

	resp, err := files.Serve(context.Background(), "data/blob")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", resp.Headers["Content-Type"])
}

func TestFilesServeNotFound(t *testing.T) {
	t.Parallel()

	files := static.NewFiles(static.FS(testFS()))

	_, err := files.Serve(context.Background(), "nope.js")
	assert.ErrorIs(t, err, static.ErrNotFound)

	// traversal attempts report not found, never a store error
	_, err = files.Serve(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, static.ErrNotFound)
}

func TestFilesCacheControl(t *testing.T) {
	t.Parallel()

	files := static.NewFiles(static.FS(testFS()), static.WithCacheMaxAge(3600))

	resp, err := files.Serve(context.Background(), "index.html")
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=3600", resp.Headers["Cache-Control"])
}
