package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/trellisdev/trellis/core/handler"
)

// Files serves objects from a Store as responses. Construct it once and
// share it; Serve is safe for concurrent use.
type Files struct {
	store  Store
	maxAge int
}

// FilesOption configures a Files server.
type FilesOption func(*Files)

// WithCacheMaxAge adds a Cache-Control max-age directive, in seconds, to
// every served object.
func WithCacheMaxAge(seconds int) FilesOption {
	return func(f *Files) {
		f.maxAge = seconds
	}
}

// NewFiles creates a file server backed by the given store.
func NewFiles(store Store, opts ...FilesOption) *Files {
	f := &Files{store: store}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Serve resolves a key and builds the response: 200 with the object bytes
// and a detected content type, or 404 when the store has no such object.
// Other store failures surface as errors for the caller's error mapping.
func (f *Files) Serve(ctx context.Context, key string) (handler.Response, error) {
	obj, err := f.store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidKey) {
			return handler.Response{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return handler.Response{}, err
	}
	defer func() { _ = obj.Body.Close() }()

	content, err := io.ReadAll(obj.Body)
	if err != nil {
		return handler.Response{}, fmt.Errorf("static: read %s: %w", obj.Key, err)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(obj.Key))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp := handler.NewResponse(http.StatusOK).
		WithHeader("Content-Type", contentType).
		WithHeader("Content-Length", strconv.Itoa(len(content))).
		WithBody(content)
	if f.maxAge > 0 {
		resp = resp.WithHeader("Cache-Control", "public, max-age="+strconv.Itoa(f.maxAge))
	}
	return resp, nil
}
