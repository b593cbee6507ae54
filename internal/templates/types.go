// Package templates provides the waterfile template system for waterws init.
package templates

// Template represents a waterfile template with its metadata.
type Template struct {
	// Name is the template identifier (simple, standard, advanced).
	Name string

	// Description explains the template's purpose and use case.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool

	// UseCase describes when to use this template.
	UseCase string
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// ModuleName is the artifact name (from --name or directory name).
	ModuleName string

	// ModuleID is the reverse-DNS module identifier.
	ModuleID string

	// DisplayName is the human-readable module name.
	DisplayName string

	// Group is the artifact group.
	Group string

	// Version is the initial version.
	Version string
}

// GenerateOptions configures waterfile generation behavior.
type GenerateOptions struct {
	// TargetDir is the module directory to generate the waterfile in.
	TargetDir string

	// TemplateName is the template to use.
	TemplateName string

	// ModuleName overrides the artifact name.
	ModuleName string

	// ModuleID overrides the derived module identifier.
	ModuleID string

	// Group is the artifact group.
	Group string

	// Force allows overwriting an existing waterfile.
	Force bool
}

// GenerateResult contains the result of waterfile generation.
type GenerateResult struct {
	// Files is the list of files created.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string
}
