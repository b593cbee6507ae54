package cmd

import (
	"github.com/spf13/cobra"
)

// NewDescriptorCmd creates the descriptor command group.
func NewDescriptorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descriptor",
		Short: "Descriptor operations",
		Long:  `Render, emit, and inspect Water module descriptors.`,
	}

	// Add subcommands
	cmd.AddCommand(NewDescriptorBuildCmd())
	cmd.AddCommand(NewDescriptorVetCmd())
	cmd.AddCommand(NewDescriptorShowCmd())
	cmd.AddCommand(NewDescriptorDiffCmd())

	return cmd
}
