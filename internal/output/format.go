package output

import "strings"

// Format specifies the output format of a command.
type Format string

const (
	// FormatText outputs plain text, one item per line.
	FormatText Format = "text"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"

	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatTable outputs a styled table.
	FormatTable Format = "table"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether the format is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. The boolean reports whether the
// input named a known format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "text", "plain":
		return FormatText, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "table":
		return FormatTable, true
	default:
		return Format(s), false
	}
}

// ValidFormats returns all known format strings.
func ValidFormats() []string {
	return []string{"text", "json", "yaml", "table"}
}

// ValidDocumentFormats returns the formats usable for rendered descriptor
// documents.
func ValidDocumentFormats() []string {
	return []string{"json", "yaml"}
}
