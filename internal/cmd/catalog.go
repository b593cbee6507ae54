package cmd

import (
	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/pin"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Standard contract catalog",
		Long:  `Inspect the built-in catalog of standard Water contracts.`,
	}

	// Add subcommands
	cmd.AddCommand(NewCatalogListCmd())
	cmd.AddCommand(NewCatalogShowCmd())

	return cmd
}

// catalogRow is the list entry shape for machine-readable output.
type catalogRow struct {
	Mnemonic      string `json:"mnemonic"`
	ID            string `json:"id"`
	Required      bool   `json:"required"`
	PropertyCount int    `json:"propertyCount"`
}

// catalogEntry is the show shape: one contract with its full property set.
type catalogEntry struct {
	Mnemonic   string            `json:"mnemonic"`
	ID         string            `json:"id"`
	Required   bool              `json:"required"`
	Properties []catalogProperty `json:"properties"`
}

type catalogProperty struct {
	Key          string `json:"key"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	Sensitive    bool   `json:"sensitive"`
	DefaultValue string `json:"defaultValue,omitempty"`
	EnvVar       string `json:"envVar,omitempty"`
	Description  string `json:"description,omitempty"`
}

// buildCatalogEntry maps one standard contract onto the show shape.
func buildCatalogEntry(mnemonic string, o *pin.Output) catalogEntry {
	entry := catalogEntry{
		Mnemonic:   mnemonic,
		ID:         o.ID(),
		Required:   o.Required,
		Properties: make([]catalogProperty, 0, len(o.Properties())),
	}
	for _, p := range o.Properties() {
		entry.Properties = append(entry.Properties, catalogProperty{
			Key:          p.Key,
			Type:         p.Type,
			Required:     p.Required,
			Sensitive:    p.Sensitive,
			DefaultValue: p.Default,
			EnvVar:       p.EnvVar,
			Description:  p.Description,
		})
	}
	return entry
}
