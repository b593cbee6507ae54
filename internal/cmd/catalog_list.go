package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/pin"
)

// NewCatalogListCmd creates the catalog list command.
func NewCatalogListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List standard contracts",
		Long: `List the built-in standard Water contracts.

Each entry maps a short mnemonic (usable as "standard" in water.cue output
and input blocks) to a full contract: its id, whether it is required by
default, and its property set.

Examples:
  # List the catalog as a table
  waterws catalog list

  # List as JSON
  waterws catalog list -o json`,
		RunE: runCatalogList,
	}

	return cmd
}

// runCatalogList executes the catalog list command.
func runCatalogList(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(GetOutputFormat("table"),
		output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatTable)
	if err != nil {
		return err
	}

	mnemonics := pin.StandardMnemonics()

	switch format {
	case output.FormatText:
		for _, mnemonic := range mnemonics {
			output.Println(mnemonic)
		}
	case output.FormatJSON, output.FormatYAML:
		rows := make([]catalogRow, 0, len(mnemonics))
		for _, mnemonic := range mnemonics {
			contract, _ := pin.Standard(mnemonic)
			rows = append(rows, catalogRow{
				Mnemonic:      mnemonic,
				ID:            contract.ID(),
				Required:      contract.Required,
				PropertyCount: len(contract.Properties()),
			})
		}
		rendered, err := marshalFormatted(rows, format)
		if err != nil {
			return err
		}
		output.Print(rendered)
	default:
		table := output.NewTable("MNEMONIC", "ID", "REQUIRED", "PROPERTIES")
		for _, mnemonic := range mnemonics {
			contract, _ := pin.Standard(mnemonic)
			table.Row(
				mnemonic,
				contract.ID(),
				strconv.FormatBool(contract.Required),
				strconv.Itoa(len(contract.Properties())),
			)
		}
		output.Println(table.String())
	}

	return nil
}
