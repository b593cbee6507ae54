package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithSpinner_RunsAction(t *testing.T) {
	SetupLogging(LogConfig{})

	ran := false
	err := RunWithSpinner(context.Background(), "working", func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran, "action should run")
}

func TestRunWithSpinner_PropagatesActionError(t *testing.T) {
	SetupLogging(LogConfig{})

	wantErr := errors.New("load failed")
	err := RunWithSpinner(context.Background(), "working", func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr, "action error should pass through unwrapped")
}

func TestSpinnerDisabled_VerboseMode(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.True(t, spinnerDisabled(), "verbose mode should suppress the spinner")
}

func TestSpinnerDisabled_NonTTY(t *testing.T) {
	SetupLogging(LogConfig{})
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}
	assert.True(t, spinnerDisabled(), "piped output should suppress the spinner")
}
