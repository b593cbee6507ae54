// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/config"
	"github.com/water-framework/waterws/internal/output"
)

var (
	// Global flags
	configFlag       string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig  *config.Config
	configPath    config.ResolvedValue
	configLoadErr error
)

// NewRootCmd creates the root command for the waterws CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "waterws",
		Short: "Water workspace descriptor tool",
		Long: `waterws discovers the modules of a Gradle-style workspace, loads their
water.cue contract declarations, resolves inheritance between modules, and
emits one deterministic descriptor document per module.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: WATERWS_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: text, json, yaml, table")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewDiscoverCmd())
	rootCmd.AddCommand(NewDescriptorCmd())
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
//
// Configuration problems are recorded rather than returned: commands that
// need no config (version, config init, config vet) must still run against
// a broken file. Commands that do need it call requireConfig first.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig = nil
	configLoadErr = nil

	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		configLoadErr = err
	}
	configPath = pathResult

	if configLoadErr == nil {
		cfg, err := config.NewLoader().LoadWithDefaults(pathResult.Value)
		if err != nil {
			configLoadErr = err
		} else if err := config.Validate(cfg); err != nil {
			configLoadErr = err
		} else {
			loadedConfig = cfg
		}
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (on)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig != nil && loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if configLoadErr != nil {
		output.Debug("config load error", "path", pathResult.Value, "error", configLoadErr)
	}
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{pathResult})
	}

	return nil
}

// requireConfig surfaces a configuration error deferred during startup.
// Commands that depend on loaded configuration call it before doing work.
func requireConfig() error {
	return configLoadErr
}

// GetConfig returns the loaded configuration, or the defaults when no
// configuration has been loaded.
func GetConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.DefaultConfig()
}

// GetConfigPath returns the resolved config file path.
func GetConfigPath() string {
	return configPath.Value
}

// GetOutputFormat returns the --output flag value when set, the given
// command default otherwise.
func GetOutputFormat(fallback string) string {
	if outputFormatFlag != "" {
		return outputFormatFlag
	}
	return fallback
}

// GetDocumentFormat resolves the format for document-rendering commands:
// the --output flag, then the configured output.format, then text.
func GetDocumentFormat() string {
	if outputFormatFlag != "" {
		return outputFormatFlag
	}
	if cfg := GetConfig(); cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return "text"
}

// useColor reports whether command output should carry ANSI color, honoring
// a command's --no-color flag and the configured output.color mode.
func useColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	switch GetConfig().Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return output.IsTTY()
	}
}
