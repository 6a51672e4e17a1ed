package router

import "errors"

var (
	// ErrNotFound is the no-match sentinel returned by Match. The transport
	// layer turns it into a 404-style response; it is never a panic.
	ErrNotFound = errors.New("router: no matching route")

	// ErrDuplicateRoute is reported at build time when two routes share the
	// same method and fully resolved path.
	ErrDuplicateRoute = errors.New("router: duplicate route")

	// ErrVariableNameConflict is reported at build time when two routes pass
	// through the same tree position using different variable names. The
	// matching layer allows only one variable name per position.
	ErrVariableNameConflict = errors.New("router: conflicting variable names at the same position")

	// ErrStaticConflict is reported at build time when a static-files node
	// coincides with another terminal route.
	ErrStaticConflict = errors.New("router: static-files endpoint conflicts with another route")

	// ErrStaticVariableChild is reported at build time when a static-files
	// node would also have a variable child.
	ErrStaticVariableChild = errors.New("router: static-files endpoint cannot have a variable child")

	// ErrStaticVariableSegment is reported at build time when a static-files
	// path ends in a variable segment.
	ErrStaticVariableSegment = errors.New("router: static-files endpoint cannot end in a variable segment")
)
