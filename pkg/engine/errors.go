package engine

import "errors"

var (
	// ErrToastNotFound is returned when an id is neither visible nor queued.
	ErrToastNotFound = errors.New("engine: toast not found")

	// ErrClosed is returned by operations on a closed engine.
	ErrClosed = errors.New("engine: closed")
)
