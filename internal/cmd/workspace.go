package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/water-framework/waterws/internal/descriptor"
	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/render"
	"github.com/water-framework/waterws/internal/waterfile"
)

// workspaceRoot returns the workspace root argument, default current
// directory.
func workspaceRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// moduleArg returns the optional module argument, empty for the root module.
func moduleArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// loadWorkspace loads the workspace at root with the configured walk options
// and fallback group.
func loadWorkspace(root string) (*waterfile.Workspace, error) {
	cfg := GetConfig()
	return waterfile.LoadWorkspace(root, waterfile.LoadOptions{
		Walk:  cfg.WalkOptions(),
		Group: cfg.Build.Group,
	})
}

// moduleByArg resolves a module argument: an address like "Core:api" or a
// directory path like "Core/api" relative to the workspace root. An empty
// argument or "." names the root module.
func moduleByArg(ws *waterfile.Workspace, arg string) (*waterfile.Module, error) {
	addr := arg
	if addr == "." {
		addr = ""
	}
	addr = GetConfig().WalkOptions().Address(filepath.ToSlash(addr))

	m, ok := ws.Module(addr)
	if !ok {
		return nil, werrors.NewNotFoundError(
			fmt.Sprintf("unknown module %q (known: %s)", arg, strings.Join(ws.Addresses(), ", ")),
			ws.Dir,
			"Module addresses are the ones reported by waterws discover.",
		)
	}
	return m, nil
}

// moduleLabel names a module in user-facing output; the root module has an
// empty address.
func moduleLabel(m *waterfile.Module) string {
	if m.Address == "" {
		return "<root>"
	}
	return m.Address
}

// errNoWaterfile reports a module that opted out of descriptor emission,
// either by having no waterfile at all or by omitting moduleId.
func errNoWaterfile(m *waterfile.Module) error {
	return werrors.NewValidationError(
		fmt.Sprintf("module %q declares no descriptor (no water.cue with a moduleId)", moduleLabel(m)),
		m.Dir,
		"",
		"Scaffold one with waterws init.",
	)
}

// renderDescriptor resolves inheritance for one module and renders its
// descriptor document.
func renderDescriptor(m *waterfile.Module) (string, error) {
	eff, err := descriptor.Resolve(m.Descriptor)
	if err != nil {
		return "", err
	}

	return render.Render(render.Input{
		Coordinate:  m.Coordinate,
		ModuleID:    m.File.ModuleID,
		DisplayName: m.File.DisplayName,
		Description: m.File.Description,
		Properties:  m.Descriptor.Properties().Properties(),
		Outputs:     eff.Output,
		Inputs:      eff.Input,
	})
}
