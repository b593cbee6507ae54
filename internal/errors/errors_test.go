//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrValidation, ErrAlreadyExists)
	assert.NotEqual(t, ErrValidation, ErrIO)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "core/api/water.cue",
		Field:    "artifact.version",
		Context:  map[string]string{"Module": "core:api"},
		Hint:     "Use a non-empty version string",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: core/api/water.cue")
	assert.Contains(t, output, "Field: artifact.version")
	assert.Contains(t, output, "Module: core:api")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Use a non-empty version string")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(
		"invalid value",
		"core/api/water.cue",
		"artifact.version",
		"Use a non-empty version string",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "invalid value", detail.Message)
	assert.Equal(t, "core/api/water.cue", detail.Location)
	assert.Equal(t, "artifact.version", detail.Field)
	assert.Equal(t, "Use a non-empty version string", detail.Hint)
}

func TestNewIOError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError("writing descriptor", "build/water/api-1.0.0.water.json", cause)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, cause))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "schema check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "schema check failed")
}
