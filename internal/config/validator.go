package config

import (
	"fmt"
	"regexp"
	"strings"

	werrors "github.com/water-framework/waterws/internal/errors"
)

// groupRegex validates artifact group ids (Maven groupId charset).
var groupRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap marks the error as a validation failure.
func (e *ValidationError) Unwrap() error {
	return werrors.ErrValidation
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap marks the collection as a validation failure.
func (e ValidationErrors) Unwrap() error {
	return werrors.ErrValidation
}

// Validate checks the configuration for values that would break discovery
// or emission. Zero values are fine; they mean "use the default".
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if m := cfg.Workspace.Marker; m != "" {
		if strings.ContainsAny(m, `/\`) || m == "." || m == ".." {
			errs = append(errs, ValidationError{
				Field:   "workspace.marker",
				Message: "must be a plain filename, not a path",
			})
		}
	}

	for _, d := range cfg.Workspace.ExcludeDirs {
		if d == "" || strings.ContainsAny(d, `/\`) {
			errs = append(errs, ValidationError{
				Field:   "workspace.excludeDirs",
				Message: fmt.Sprintf("%q: entries must be plain directory names", d),
			})
		}
	}

	if s := cfg.Workspace.Separator; s != "" && strings.TrimSpace(s) == "" {
		errs = append(errs, ValidationError{
			Field:   "workspace.separator",
			Message: "must not be blank",
		})
	}

	if d := cfg.Build.Dir; d != "" {
		if strings.HasPrefix(d, "/") || strings.Contains(d, "..") {
			errs = append(errs, ValidationError{
				Field:   "build.dir",
				Message: "must be a relative directory name under each module",
			})
		}
	}

	if g := cfg.Build.Group; g != "" && !groupRegex.MatchString(g) {
		errs = append(errs, ValidationError{
			Field:   "build.group",
			Message: "must contain only letters, digits, '.', '_' and '-'",
		})
	}

	switch cfg.Output.Format {
	case "", "text", "json", "yaml":
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("%q is not one of text, json, yaml", cfg.Output.Format),
		})
	}

	switch cfg.Output.Color {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("%q is not one of auto, always, never", cfg.Output.Color),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
