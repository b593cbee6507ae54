package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/water-framework/waterws/internal/output"
)

// parseFormat validates a format string against the formats a command
// accepts.
func parseFormat(s string, accepted ...output.Format) (output.Format, error) {
	f, ok := output.ParseFormat(s)
	if ok && slices.Contains(accepted, f) {
		return f, nil
	}

	names := make([]string, len(accepted))
	for i, a := range accepted {
		names[i] = a.String()
	}
	return "", &ExitError{
		Code: ExitValidationError,
		Err:  fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(names, ", ")),
	}
}

// marshalFormatted renders v as indented JSON or as YAML. YAML marshaling
// goes through the JSON tags, so both formats expose identical field names.
func marshalFormatted(v any, format output.Format) (string, error) {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case output.FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("marshaling to YAML: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported marshal format %q", format)
	}
}
