package templates

import (
	"fmt"
	"os"
	"path/filepath"

	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/output"
)

// DefaultGroup is the artifact group used when none is configured.
const DefaultGroup = "com.example"

// InitialVersion is the version written into generated waterfiles.
const InitialVersion = "0.1.0"

// Generator handles waterfile generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate creates a waterfile in the target module directory. The
// directory itself may already exist and be populated; only the generated
// files are checked for collisions.
func (g *Generator) Generate() (*GenerateResult, error) {
	tmpl, err := Get(g.opts.TemplateName)
	if err != nil {
		return nil, err
	}

	targetDir, err := filepath.Abs(g.opts.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("resolving target directory: %w", err)
	}

	moduleName := g.opts.ModuleName
	if moduleName == "" {
		moduleName = filepath.Base(targetDir)
	}
	if err := ValidateModuleName(moduleName); err != nil {
		return nil, err
	}

	group := g.opts.Group
	if group == "" {
		group = DefaultGroup
	}

	moduleID := g.opts.ModuleID
	if moduleID == "" {
		moduleID = DeriveModuleID(group, moduleName)
	}
	if err := ValidateModuleID(moduleID); err != nil {
		return nil, err
	}

	data := TemplateData{
		ModuleName:  moduleName,
		ModuleID:    moduleID,
		DisplayName: DeriveDisplayName(moduleName),
		Group:       group,
		Version:     InitialVersion,
	}

	output.Debug("generating waterfile",
		"template", tmpl.Name,
		"name", moduleName,
		"moduleId", moduleID,
		"target", targetDir)

	renderer := NewRenderer(data)
	files, err := renderer.RenderTemplate(g.opts.TemplateName)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	createdFiles := make([]string, 0, len(files))
	for _, f := range files {
		targetPath := filepath.Join(targetDir, f.TargetPath)

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		if !g.opts.Force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil, werrors.Wrap(werrors.ErrAlreadyExists,
					fmt.Sprintf("%s already exists; use --force to overwrite", targetPath))
			}
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	return &GenerateResult{
		Files:        createdFiles,
		TemplateName: tmpl.Name,
		TargetDir:    targetDir,
	}, nil
}
