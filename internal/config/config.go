// Package config provides configuration loading and management.
package config

import (
	"github.com/water-framework/waterws/internal/workspace"
)

// DefaultBuildDir is the per-module build output directory name.
const DefaultBuildDir = "build"

// WorkspaceConfig contains module discovery settings.
type WorkspaceConfig struct {
	// Marker is the filename whose presence makes a directory a module.
	// Env: WATERWS_WORKSPACE_MARKER, Default: "build.gradle"
	Marker string `json:"marker,omitempty"`

	// ExcludeDirs lists directory names pruned from the walk.
	// Default: exam, build, target, bin, src
	ExcludeDirs []string `json:"excludeDirs,omitempty"`

	// Separator joins path segments into module addresses.
	// Env: WATERWS_WORKSPACE_SEPARATOR, Default: ":"
	Separator string `json:"separator,omitempty"`
}

// BuildConfig contains emission settings.
type BuildConfig struct {
	// Dir is the per-module build output directory name.
	// Env: WATERWS_BUILD_DIR, Default: "build"
	Dir string `json:"dir,omitempty"`

	// Group is the fallback artifact group for modules that set none.
	// Env: WATERWS_BUILD_GROUP
	Group string `json:"group,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// OutputConfig contains rendering settings for command output.
type OutputConfig struct {
	// Format is the default output format for show commands.
	// Env: WATERWS_OUTPUT_FORMAT, Default: "text". Valid: text, json, yaml.
	Format string `json:"format,omitempty"`

	// Color controls ANSI color usage.
	// Env: WATERWS_OUTPUT_COLOR, Default: "auto". Valid: auto, always, never.
	Color string `json:"color,omitempty"`
}

// Config represents the waterws CLI configuration.
// Loaded from ~/.waterws/config.yaml; environment variables override file
// values.
type Config struct {
	// Workspace contains module discovery settings.
	Workspace WorkspaceConfig `json:"workspace,omitempty"`

	// Build contains emission settings.
	Build BuildConfig `json:"build,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`

	// Output contains command output settings.
	Output OutputConfig `json:"output,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `waterws config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			Marker:      workspace.DefaultMarker,
			ExcludeDirs: workspace.DefaultExcludes(),
			Separator:   workspace.DefaultSeparator,
		},
		Build: BuildConfig{
			Dir: DefaultBuildDir,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// WithDefaults returns a copy of the config with defaults filled in for
// every unset field.
func (c *Config) WithDefaults() *Config {
	base := DefaultConfig()
	base.Merge(c)
	return base
}

// Merge overlays the other config onto this one. Set fields win; unset
// fields keep the receiver's value.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Workspace.Marker != "" {
		c.Workspace.Marker = other.Workspace.Marker
	}
	if other.Workspace.ExcludeDirs != nil {
		c.Workspace.ExcludeDirs = other.Workspace.ExcludeDirs
	}
	if other.Workspace.Separator != "" {
		c.Workspace.Separator = other.Workspace.Separator
	}
	if other.Build.Dir != "" {
		c.Build.Dir = other.Build.Dir
	}
	if other.Build.Group != "" {
		c.Build.Group = other.Build.Group
	}
	if other.Log.Timestamps != nil {
		c.Log.Timestamps = other.Log.Timestamps
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Color != "" {
		c.Output.Color = other.Output.Color
	}
}

// IsEmpty reports whether no field is set.
func (c *Config) IsEmpty() bool {
	return c.Workspace.Marker == "" &&
		c.Workspace.ExcludeDirs == nil &&
		c.Workspace.Separator == "" &&
		c.Build.Dir == "" &&
		c.Build.Group == "" &&
		c.Log.Timestamps == nil &&
		c.Output.Format == "" &&
		c.Output.Color == ""
}

// WalkOptions converts the workspace section into walker options.
func (c *Config) WalkOptions() workspace.Options {
	return workspace.Options{
		Marker:    c.Workspace.Marker,
		Exclude:   c.Workspace.ExcludeDirs,
		Separator: c.Workspace.Separator,
	}
}
