package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/templates"
)

// Init command flags
var (
	initTemplateFlag string
	initNameFlag     string
	initModuleIDFlag string
	initGroupFlag    string
	initForceFlag    bool
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a water.cue module file",
		Long: `Scaffold a starter water.cue in a module directory.

Templates:
  simple    Identity only: moduleId and artifact coordinate
  standard  One output contract plus a standard input (default)
  advanced  Full surface: inheritance, properties, custom and standard
            contracts

The artifact name defaults to the directory name and the module id is
derived from the group and the sanitized name; both can be overridden.

Arguments:
  dir    Module directory (default: current directory)

Examples:
  # Scaffold a waterfile in the current directory
  waterws init

  # Scaffold a specific directory with the advanced template
  waterws init ./User --template advanced

  # Control the module identity
  waterws init ./User --module-id it.water.user --group it.water`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initTemplateFlag, "template", "t", templates.DefaultTemplateName,
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.ValidTemplates(), ", ")))
	cmd.Flags().StringVar(&initNameFlag, "name", "",
		"Artifact name (default: directory name)")
	cmd.Flags().StringVar(&initModuleIDFlag, "module-id", "",
		"Module identifier (default: derived from group and name)")
	cmd.Flags().StringVar(&initGroupFlag, "group", "",
		fmt.Sprintf("Artifact group (default: %s)", templates.DefaultGroup))
	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false,
		"Overwrite an existing water.cue")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	generator := templates.NewGenerator(templates.GenerateOptions{
		TargetDir:    targetDir,
		TemplateName: initTemplateFlag,
		ModuleName:   initNameFlag,
		ModuleID:     initModuleIDFlag,
		Group:        initGroupFlag,
		Force:        initForceFlag,
	})

	result, err := generator.Generate()
	if err != nil {
		return err
	}

	output.Println(fmt.Sprintf("Scaffolded %s module in %s", result.TemplateName, result.TargetDir))
	output.Println("")

	for _, f := range result.Files {
		output.Println(output.FormatVetCheck(filepath.Join(filepath.Base(result.TargetDir), f), fileDescription(f)))
	}

	output.Println("")
	output.Println("Validate with: waterws descriptor vet")

	return nil
}

// fileDescription returns a description for a generated file.
func fileDescription(filename string) string {
	if filename == "water.cue" {
		return "Module contract declarations"
	}
	return ""
}
