package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a descriptor or schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a module, file, or catalog entry was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a target file already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrIO indicates a filesystem read or write failure.
	ErrIO = errors.New("i/o error")
)
