package cmd

import (
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/workspace"
)

// NewDiscoverCmd creates the discover command.
func NewDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [path]",
		Short: "List workspace module addresses",
		Long: `Discover the modules of a workspace.

Walks the workspace tree looking for module marker files (default:
build.gradle) and prints one hierarchical address per discovered module.
Directories on the exclusion list are pruned; modules may nest.

Arguments:
  path    Path to the workspace root (default: current directory)

Examples:
  # List module addresses of the current workspace
  waterws discover

  # Show addresses with their directories as a styled table
  waterws discover -o table

  # Feed addresses to tooling
  waterws discover -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDiscover,
	}

	return cmd
}

// discoveredModule is the machine-readable shape of one walker hit.
type discoveredModule struct {
	Address string `json:"address"`
	Dir     string `json:"dir"`
}

// runDiscover executes the discover command.
func runDiscover(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	format, err := parseFormat(GetOutputFormat("text"),
		output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatTable)
	if err != nil {
		return err
	}

	root := workspaceRoot(args)
	opts := GetConfig().WalkOptions()

	addrs, err := workspace.Addresses(os.DirFS(root), opts)
	if err != nil {
		return err
	}
	// The walk visits nested markers before their parents; listings read
	// better sorted.
	slices.Sort(addrs)
	output.Debug("discovery complete", "root", root, "modules", len(addrs))

	switch format {
	case output.FormatTable:
		table := output.NewTable("ADDRESS", "DIRECTORY")
		for _, addr := range addrs {
			table.Row(addr, opts.Dir(addr))
		}
		output.Println(table.String())
		output.Println(strconv.Itoa(len(addrs)) + " module(s)")
	case output.FormatJSON, output.FormatYAML:
		modules := make([]discoveredModule, 0, len(addrs))
		for _, addr := range addrs {
			modules = append(modules, discoveredModule{Address: addr, Dir: opts.Dir(addr)})
		}
		rendered, err := marshalFormatted(modules, format)
		if err != nil {
			return err
		}
		output.Print(rendered)
	default:
		for _, addr := range addrs {
			output.Println(addr)
		}
	}

	return nil
}
