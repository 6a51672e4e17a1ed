package server

import "errors"

var (
	// ErrMissingAddress is returned when the server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrAlreadyRunning is returned by Start on an already running server.
	ErrAlreadyRunning = errors.New("server is already running")
)
