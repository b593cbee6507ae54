package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while showing a titled spinner on the
// terminal. Without a TTY, or in verbose mode, the action runs directly and
// nothing is drawn: piped output stays clean and debug logs stay readable.
// The action's error is returned as-is; the spinner never swallows it.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if spinnerDisabled() {
		return action()
	}

	done := make(chan struct{})
	var actionErr error
	go func() {
		defer close(done)
		actionErr = action()
	}()

	wait := func() {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	if err := spinner.New().Title(title).Action(wait).Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	select {
	case <-done:
		return actionErr
	default:
		return ctx.Err()
	}
}

// spinnerDisabled reports whether progress spinners are suppressed: no TTY
// on stdout, or verbose logging active.
func spinnerDisabled() bool {
	return verboseMode || !IsTTY()
}
