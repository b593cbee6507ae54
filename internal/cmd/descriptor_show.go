package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/water-framework/waterws/internal/output"
)

// Show command flags
var showWorkspaceFlag string

// NewDescriptorShowCmd creates the descriptor show command.
func NewDescriptorShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [module]",
		Short: "Print one module's rendered descriptor",
		Long: `Render one module's descriptor document and print it to stdout.

The document is rendered fresh from the workspace's waterfiles, with
inheritance resolved; nothing is written to disk. The default output is the
descriptor exactly as descriptor build would emit it (JSON); -o yaml
converts it.

Arguments:
  module    Module address (Core:api) or directory relative to the
            workspace root (Core/api); default: the root module

Examples:
  # Show the root module of the current workspace
  waterws descriptor show

  # Show one module by address
  waterws descriptor show Core:api

  # Show as YAML
  waterws descriptor show Core:api -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDescriptorShow,
	}

	cmd.Flags().StringVarP(&showWorkspaceFlag, "workspace", "w", ".",
		"Workspace root directory")

	return cmd
}

// runDescriptorShow executes the descriptor show command.
func runDescriptorShow(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	format, err := parseFormat(GetDocumentFormat(),
		output.FormatText, output.FormatJSON, output.FormatYAML)
	if err != nil {
		return err
	}

	ws, err := loadWorkspace(showWorkspaceFlag)
	if err != nil {
		return err
	}
	m, err := moduleByArg(ws, moduleArg(args))
	if err != nil {
		return err
	}
	if !m.Emittable() {
		return errNoWaterfile(m)
	}

	document, err := renderDescriptor(m)
	if err != nil {
		return err
	}

	if format == output.FormatYAML {
		converted, err := yaml.JSONToYAML([]byte(document))
		if err != nil {
			return fmt.Errorf("converting descriptor to YAML: %w", err)
		}
		output.Print(string(converted))
		return nil
	}

	// The rendered document is already its published JSON form.
	output.Print(document)
	return nil
}
