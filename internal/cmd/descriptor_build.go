package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/render"
	"github.com/water-framework/waterws/internal/waterfile"
)

// Build command flags
var (
	buildModuleFlag string
	buildDryRunFlag bool
)

// NewDescriptorBuildCmd creates the descriptor build command.
func NewDescriptorBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [path]",
		Short: "Render and emit workspace descriptors",
		Long: `Render and emit descriptor documents for a workspace.

Discovers every module, loads their water.cue files, resolves inheritance,
and writes one descriptor per module under <module>/build/water/. A module
whose emitted file already holds the rendered bytes is reported up-to-date
and left untouched; modules without a waterfile are skipped.

Arguments:
  path    Path to the workspace root (default: current directory)

Examples:
  # Emit descriptors for every module
  waterws descriptor build

  # Emit a single module's descriptor
  waterws descriptor build --module Core:api

  # Render without writing anything
  waterws descriptor build --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDescriptorBuild,
	}

	cmd.Flags().StringVarP(&buildModuleFlag, "module", "m", "",
		"Build only the module at this address")
	cmd.Flags().BoolVar(&buildDryRunFlag, "dry-run", false,
		"Render without writing files")

	return cmd
}

// runDescriptorBuild executes the descriptor build command.
func runDescriptorBuild(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	root := workspaceRoot(args)
	cfg := GetConfig()

	var ws *waterfile.Workspace
	load := func() error {
		var err error
		ws, err = loadWorkspace(root)
		return err
	}
	if err := output.RunWithSpinner(context.Background(), "Loading workspace...", load); err != nil {
		return err
	}

	modules := ws.Modules
	if buildModuleFlag != "" {
		m, err := moduleByArg(ws, buildModuleFlag)
		if err != nil {
			return err
		}
		if !m.Emittable() {
			return errNoWaterfile(m)
		}
		modules = []*waterfile.Module{m}
	}

	var written, upToDate, skipped, failed int
	var firstErr error
	for _, m := range modules {
		if !m.Emittable() {
			skipped++
			output.Debug("No waterfile, skipping", "module", moduleLabel(m))
			if verboseFlag {
				output.Println(output.FormatModuleLine(m.Address, output.StatusSkipped))
			}
			continue
		}

		document, err := renderDescriptor(m)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			output.Println(output.FormatModuleLine(m.Address, output.StatusFailed))
			printError(err)
			continue
		}

		buildDir := filepath.Join(m.Dir, cfg.Build.Dir)
		var status render.Status
		if buildDryRunFlag {
			status = planStatus(buildDir, m, document)
		} else {
			result, err := render.Emit(buildDir, m.Coordinate, document)
			if err != nil {
				failed++
				if firstErr == nil {
					firstErr = err
				}
				output.Println(output.FormatModuleLine(m.Address, output.StatusFailed))
				printError(err)
				continue
			}
			status = result.Status
			output.Debug("descriptor emitted",
				"module", moduleLabel(m),
				"artifact", result.Artifact.Coordinate.String(),
				"path", result.Artifact.Path,
			)
		}

		switch status {
		case render.StatusWritten:
			written++
		case render.StatusUpToDate:
			upToDate++
		}
		output.Println(output.FormatModuleLine(m.Address, string(status)))
	}

	output.Println(output.FormatSummary(written, upToDate, skipped, failed))
	if buildDryRunFlag {
		output.Info("dry run, nothing written")
	}

	if failed > 0 {
		return &ExitError{
			Code: ExitCodeFromError(firstErr),
			Err:  fmt.Errorf("%d descriptor(s) failed", failed),
		}
	}
	return nil
}

// planStatus reports what Emit would do without writing: the same byte
// comparison against the existing file, minus the write.
func planStatus(buildDir string, m *waterfile.Module, document string) render.Status {
	path := render.DescriptorPath(buildDir, m.Coordinate)
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, []byte(document)) {
		return render.StatusUpToDate
	}
	return render.StatusWritten
}
