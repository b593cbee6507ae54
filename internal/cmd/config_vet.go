package cmd

import (
	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/config"
	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the waterws CLI configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. File parses as YAML
  3. Values pass validation (marker, separator, build dir, formats)

The config path is resolved using precedence:
  --config flag > WATERWS_CONFIG env > ~/.waterws/config.yaml

Examples:
  # Validate default configuration
  waterws config vet

  # Validate a custom config path
  waterws config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	// Re-resolve and re-load instead of using the startup result, so a
	// broken file is diagnosed here rather than swallowed.
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return werrors.Wrap(werrors.ErrNotFound, "could not resolve config path")
	}
	path := pathResult.Value

	output.Debug("validating config",
		"path", path,
		"source", pathResult.Source,
	)

	// Check 1: config file exists
	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return werrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'waterws config init' to create default configuration.")
	}
	output.Println(output.FormatVetCheck("config file exists", path))

	// Check 2: file parses
	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return werrors.NewValidationError(err.Error(), path, "", "")
	}
	output.Println(output.FormatVetCheck("YAML parses", ""))

	// Check 3: values validate
	if err := config.Validate(cfg.WithDefaults()); err != nil {
		return err
	}
	output.Println(output.FormatVetCheck("values valid", ""))

	output.Println(output.FormatCheckmark("Configuration is valid: " + path))
	return nil
}
