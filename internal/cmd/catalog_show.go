package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/pin"
)

// NewCatalogShowCmd creates the catalog show command.
func NewCatalogShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <mnemonic>",
		Short: "Show one standard contract",
		Long: `Show one standard Water contract with its full property set.

Arguments:
  mnemonic    Catalog mnemonic, e.g. jdbc or authentication-issuer

Examples:
  # Show the jdbc contract
  waterws catalog show jdbc

  # Show as JSON
  waterws catalog show jdbc -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runCatalogShow,
	}

	return cmd
}

// runCatalogShow executes the catalog show command.
func runCatalogShow(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(GetDocumentFormat(),
		output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatTable)
	if err != nil {
		return err
	}

	mnemonic := args[0]
	contract, ok := pin.Standard(mnemonic)
	if !ok {
		return &pin.UnknownStandardPinError{Mnemonic: mnemonic}
	}
	entry := buildCatalogEntry(mnemonic, contract)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		rendered, err := marshalFormatted(entry, format)
		if err != nil {
			return err
		}
		output.Print(rendered)
	default:
		required := ""
		if entry.Required {
			required = " (required)"
		}
		output.Println(fmt.Sprintf("%s%s", output.StyleNoun.Render(entry.Mnemonic), required))
		output.Println(output.StyleDim.Render(entry.ID))
		output.Println("")

		table := output.NewTable("KEY", "TYPE", "REQUIRED", "SENSITIVE", "DEFAULT", "DESCRIPTION")
		for _, p := range entry.Properties {
			table.Row(
				p.Key,
				p.Type,
				strconv.FormatBool(p.Required),
				strconv.FormatBool(p.Sensitive),
				p.DefaultValue,
				p.Description,
			)
		}
		output.Println(table.String())
	}

	return nil
}
