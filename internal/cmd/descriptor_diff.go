package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/render"
)

// Diff command flags
var (
	diffWorkspaceFlag string
	diffExitCodeFlag  bool
	diffNoColorFlag   bool
)

// NewDescriptorDiffCmd creates the descriptor diff command.
func NewDescriptorDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [module]",
		Short: "Diff the emitted descriptor against a fresh render",
		Long: `Compare a module's emitted descriptor with a fresh render of its current
declarations.

The emitted document under <module>/build/water/ is the before side; the
in-memory render is the after side. The comparison is structural, so an
empty report means descriptor build would report up-to-date.

Arguments:
  module    Module address (Core:api) or directory relative to the
            workspace root (Core/api); default: the root module

Examples:
  # Diff the root module of the current workspace
  waterws descriptor diff

  # Diff one module by address
  waterws descriptor diff Core:api

  # Fail when the emitted descriptor is stale (CI)
  waterws descriptor diff Core:api --exit-code`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDescriptorDiff,
	}

	cmd.Flags().StringVarP(&diffWorkspaceFlag, "workspace", "w", ".",
		"Workspace root directory")
	cmd.Flags().BoolVar(&diffExitCodeFlag, "exit-code", false,
		"Exit 1 when the emitted descriptor is out of date")
	cmd.Flags().BoolVar(&diffNoColorFlag, "no-color", false,
		"Disable colored diff output")

	return cmd
}

// runDescriptorDiff executes the descriptor diff command.
func runDescriptorDiff(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	ws, err := loadWorkspace(diffWorkspaceFlag)
	if err != nil {
		return err
	}
	m, err := moduleByArg(ws, moduleArg(args))
	if err != nil {
		return err
	}
	if !m.Emittable() {
		return errNoWaterfile(m)
	}

	fresh, err := renderDescriptor(m)
	if err != nil {
		return err
	}

	path := render.DescriptorPath(filepath.Join(m.Dir, GetConfig().Build.Dir), m.Coordinate)
	emitted, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return werrors.NewNotFoundError(
				"no emitted descriptor to diff against", path,
				"Run 'waterws descriptor build' first.")
		}
		return werrors.NewIOError("reading emitted descriptor", path, err)
	}

	report, err := render.Diff(emitted, []byte(fresh), useColor(diffNoColorFlag))
	if err != nil {
		return err
	}

	if report == "" {
		output.Println(output.FormatCheckmark("descriptor up to date: " + path))
		return nil
	}

	output.Println(report)
	if diffExitCodeFlag {
		return &ExitError{
			Code: ExitGeneralError,
			Err:  fmt.Errorf("descriptor out of date: %s", path),
		}
	}
	return nil
}
