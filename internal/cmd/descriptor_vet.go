package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
)

// NewDescriptorVetCmd creates the descriptor vet command.
func NewDescriptorVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate workspace descriptors without emitting",
		Long: `Validate every module descriptor of a workspace.

Loads all waterfiles, resolves inheritance, and renders every descriptor
document exactly as descriptor build would, but writes nothing. Schema
violations, unknown standard mnemonics, unresolvable inheritsFrom addresses,
and inheritance cycles are reported as errors.

Arguments:
  path    Path to the workspace root (default: current directory)

Examples:
  # Validate the workspace in the current directory
  waterws descriptor vet

  # Validate another workspace
  waterws descriptor vet ~/src/water`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDescriptorVet,
	}

	return cmd
}

// runDescriptorVet executes the descriptor vet command.
func runDescriptorVet(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	// Loading already validates every waterfile against the schema and
	// links inheritsFrom references.
	ws, err := loadWorkspace(workspaceRoot(args))
	if err != nil {
		return err
	}

	var valid, failed int
	var firstErr error
	for _, m := range ws.Modules {
		if !m.Emittable() {
			output.Debug("No waterfile, skipping", "module", moduleLabel(m))
			continue
		}

		if _, err := renderDescriptor(m); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			output.Println(output.FormatModuleLine(m.Address, output.StatusFailed))
			printError(err)
			continue
		}

		valid++
		output.Println(output.FormatVetCheck(moduleLabel(m), m.Coordinate.String()))
	}

	if failed > 0 {
		return &ExitError{
			Code: ExitCodeFromError(firstErr),
			Err:  fmt.Errorf("%d invalid module(s)", failed),
		}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Workspace valid (%d descriptors)", valid)))
	return nil
}
