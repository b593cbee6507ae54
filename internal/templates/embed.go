// Package templates provides embedded waterfile templates and rendering.
package templates

import (
	"embed"
)

// TemplateFS holds the embedded template trees, one directory per template.
//
//go:embed simple standard advanced
var TemplateFS embed.FS

// TemplateName represents a template type.
type TemplateName string

const (
	// Simple is a minimal waterfile: identity and coordinate only.
	Simple TemplateName = "simple"

	// Standard is the default template with an output contract and a
	// standard input.
	Standard TemplateName = "standard"

	// Advanced shows the full surface: module properties, contract
	// extension and inheritance.
	Advanced TemplateName = "advanced"
)

// ValidTemplates returns all valid template names.
func ValidTemplates() []string {
	return []string{
		string(Simple),
		string(Standard),
		string(Advanced),
	}
}

// IsValidTemplate checks if a template name is valid.
func IsValidTemplate(name string) bool {
	switch TemplateName(name) {
	case Simple, Standard, Advanced:
		return true
	default:
		return false
	}
}
