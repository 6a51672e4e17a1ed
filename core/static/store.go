package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

var (
	// ErrNotFound is returned when no object exists under the requested key.
	ErrNotFound = errors.New("static: object not found")

	// ErrInvalidKey is returned for keys that escape the store root.
	ErrInvalidKey = errors.New("static: invalid key")
)

// Object is a resolved static asset. Body must be closed by the consumer.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Store resolves slash-separated keys to objects. Implementations must be
// safe for concurrent use; a missing key is reported as ErrNotFound.
type Store interface {
	Open(ctx context.Context, key string) (*Object, error)
}

// CleanKey normalizes a store key: forward slashes, no leading slash, no
// traversal outside the root. Returns ErrInvalidKey for keys that escape.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	cleaned := path.Clean(key)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	if cleaned == "." {
		cleaned = ""
	}
	return cleaned, nil
}

type fsStore struct {
	fsys fs.FS
}

// FS wraps a filesystem (including embed.FS and os.DirFS) as a Store.
// Directories are not served; opening one reports ErrNotFound.
func FS(fsys fs.FS) Store {
	return fsStore{fsys: fsys}
}

func (s fsStore) Open(_ context.Context, key string) (*Object, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return nil, err
	}
	if cleaned == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	f, err := s.fsys.Open(cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cleaned)
		}
		return nil, fmt.Errorf("static: open %s: %w", cleaned, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("static: stat %s: %w", cleaned, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, cleaned)
	}

	return &Object{
		Key:  cleaned,
		Size: info.Size(),
		Body: f,
	}, nil
}
