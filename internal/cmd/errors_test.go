package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/water-framework/waterws/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "validation error",
			err:      werrors.ErrValidation,
			expected: ExitValidationError,
		},
		{
			name:     "wrapped validation error",
			err:      werrors.Wrap(werrors.ErrValidation, "schema check failed"),
			expected: ExitValidationError,
		},
		{
			name:     "already exists error",
			err:      werrors.ErrAlreadyExists,
			expected: ExitValidationError,
		},
		{
			name:     "not found error",
			err:      werrors.ErrNotFound,
			expected: ExitNotFound,
		},
		{
			name:     "wrapped not found error",
			err:      fmt.Errorf("loading workspace: %w", werrors.ErrNotFound),
			expected: ExitNotFound,
		},
		{
			name:     "io error",
			err:      werrors.ErrIO,
			expected: ExitIOError,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("something went wrong"),
			expected: ExitGeneralError,
		},
		{
			name:     "exit error with custom code",
			err:      NewExitError(errors.New("custom error"), 42),
			expected: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := ExitCodeFromError(tt.err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestExitError(t *testing.T) {
	originalErr := errors.New("original error")
	exitErr := NewExitError(originalErr, ExitValidationError)

	assert.Equal(t, "original error", exitErr.Error())
	assert.Equal(t, ExitValidationError, exitErr.Code)
	assert.False(t, exitErr.Printed)

	require.Equal(t, originalErr, errors.Unwrap(exitErr))
}

func TestExitErrorSentinelPassesThrough(t *testing.T) {
	// Sentinel matching must see through the ExitError wrapper.
	exitErr := NewExitError(werrors.Wrap(werrors.ErrValidation, "bad waterfile"), ExitValidationError)
	assert.ErrorIs(t, exitErr, werrors.ErrValidation)
}
