package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/water-framework/waterws/internal/config"
	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/output"
)

// configHeader opens the generated config file. The body below it is the
// default configuration marshaled through the same tags the loader reads.
const configHeader = `# waterws configuration.
#
# Default location: ~/.waterws/config.yaml; override with --config or the
# WATERWS_CONFIG environment variable. Individual WATERWS_* environment
# variables override file values.

`

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the waterws CLI configuration.

Creates ~/.waterws/config.yaml with every setting at its default value:
the module marker file, the discovery exclusion list, the address
separator, the build output directory, and output preferences.

Examples:
  # Initialize configuration
  waterws config init

  # Overwrite existing configuration
  waterws config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return werrors.Wrap(werrors.ErrNotFound, "could not determine home directory")
	}

	// Check if config exists
	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &werrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    werrors.ErrAlreadyExists,
		}
	}

	if err := config.EnsureHomeDir(); err != nil {
		return err
	}

	body, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return werrors.Wrap(werrors.ErrIO, "could not render default configuration")
	}

	data := append([]byte(configHeader), body...)
	if err := os.WriteFile(paths.ConfigFile, data, 0o600); err != nil {
		return werrors.NewIOError("writing config file", paths.ConfigFile, err)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: waterws config vet")

	return nil
}
