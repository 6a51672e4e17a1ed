package routepath

import "errors"

// ErrInvalidPath is returned when a path or pattern violates the grammar.
var ErrInvalidPath = errors.New("invalid path")
