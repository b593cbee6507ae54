package cmd

import (
	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show waterws CLI version information.

Displays:
  - waterws version, commit, and build date
  - Go and CUE SDK versions embedded in the binary`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(GetDocumentFormat(),
		output.FormatText, output.FormatJSON, output.FormatYAML)
	if err != nil {
		return err
	}

	info := version.GetInfo()

	switch format {
	case output.FormatJSON, output.FormatYAML:
		rendered, err := marshalFormatted(info, format)
		if err != nil {
			return err
		}
		output.Print(rendered)
	default:
		output.Println(info.String())
	}

	return nil
}
