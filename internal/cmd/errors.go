package cmd

import (
	"errors"
	"fmt"
	"os"

	werrors "github.com/water-framework/waterws/internal/errors"
)

// ExitError wraps an error with an exit code. Printed marks errors the
// command layer has already rendered, so main does not print them twice.
type ExitError struct {
	Err     error
	Code    int
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, werrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, werrors.ErrAlreadyExists):
		return ExitValidationError
	case errors.Is(err, werrors.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, werrors.ErrIO):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

// printError writes a formatted error report to stderr, keeping stdout
// reserved for command output.
func printError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
