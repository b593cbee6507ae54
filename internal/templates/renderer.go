package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// TemplateFile is one rendered file of a template tree.
type TemplateFile struct {
	// TargetPath is the path of the file relative to the module directory,
	// with the .tmpl suffix stripped.
	TargetPath string

	// Content is the rendered file content.
	Content []byte
}

// Renderer substitutes TemplateData into embedded template trees.
type Renderer struct {
	data TemplateData
}

// NewRenderer returns a renderer for the given module data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{data: data}
}

// RenderString renders one template string against the module data.
func (r *Renderer) RenderString(content string) (string, error) {
	tmpl, err := template.New("waterfile").Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// RenderTemplate renders every .tmpl file of the named template tree. File
// paths come back relative to the tree root, ready to drop into the target
// module directory.
func (r *Renderer) RenderTemplate(templateName string) ([]TemplateFile, error) {
	sources, err := templateSources(templateName)
	if err != nil {
		return nil, err
	}

	files := make([]TemplateFile, 0, len(sources))
	for _, src := range sources {
		raw, err := fs.ReadFile(TemplateFS, src)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src, err)
		}
		rendered, err := r.RenderString(string(raw))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", src, err)
		}
		files = append(files, TemplateFile{
			TargetPath: targetPath(templateName, src),
			Content:    []byte(rendered),
		})
	}
	return files, nil
}

// ListTemplateFiles returns the target paths of the named template tree
// without rendering anything.
func ListTemplateFiles(templateName string) ([]string, error) {
	sources, err := templateSources(templateName)
	if err != nil {
		return nil, err
	}

	targets := make([]string, 0, len(sources))
	for _, src := range sources {
		targets = append(targets, targetPath(templateName, src))
	}
	return targets, nil
}

// templateSources collects the .tmpl file paths under one template tree, in
// walk order.
func templateSources(templateName string) ([]string, error) {
	var sources []string
	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tmpl") {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template %s: %w", templateName, err)
	}
	return sources, nil
}

// targetPath maps an embedded source path onto its generated file name.
func targetPath(templateName, src string) string {
	rel := strings.TrimPrefix(src, templateName+"/")
	return strings.TrimSuffix(rel, ".tmpl")
}
