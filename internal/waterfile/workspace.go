package waterfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/water-framework/waterws/internal/descriptor"
	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/output"
	"github.com/water-framework/waterws/internal/render"
	"github.com/water-framework/waterws/internal/workspace"
)

// Module pairs one discovered module directory with its loaded waterfile
// and descriptor.
type Module struct {
	// Address is the workspace address; empty for the root module.
	Address string

	// Dir is the absolute module directory.
	Dir string

	// File is the decoded waterfile, nil when the directory has none.
	File *File

	// Descriptor is always non-nil: modules without a waterfile get an
	// empty descriptor, so inheritance references to them resolve to empty
	// contract sets instead of failing.
	Descriptor *descriptor.Descriptor

	// Coordinate is the artifact coordinate derived from the waterfile and
	// the workspace defaults. Zero when the module has no waterfile.
	Coordinate render.Coordinate
}

// Emittable reports whether the module produces a descriptor document: it
// needs a waterfile that sets moduleId. Everything else is the documented
// opt-out, not an error.
func (m *Module) Emittable() bool {
	return m.File != nil && m.File.ModuleID != ""
}

// Workspace is every module of one workspace, loaded and linked for
// inheritance resolution.
type Workspace struct {
	// Dir is the absolute workspace root.
	Dir string

	// Group is the default artifact group for modules that set none: the
	// root waterfile's group when present, the configured fallback
	// otherwise.
	Group string

	// Modules holds the root module first, then discovered modules in
	// address order.
	Modules []*Module

	separator string
	byAddress map[string]*Module
}

// Module returns the module registered at the given address.
func (w *Workspace) Module(address string) (*Module, bool) {
	m, ok := w.byAddress[w.normalize(address)]
	return m, ok
}

// Addresses returns the known module addresses in address order, the root
// excluded.
func (w *Workspace) Addresses() []string {
	addrs := make([]string, 0, len(w.Modules))
	for _, m := range w.Modules {
		if m.Address != "" {
			addrs = append(addrs, m.Address)
		}
	}
	return addrs
}

// normalize strips one leading separator, so ":Core-api" and "Core-api"
// name the same module and ":" alone names the root.
func (w *Workspace) normalize(address string) string {
	return strings.TrimPrefix(address, w.separator)
}

// LoadOptions configures workspace loading.
type LoadOptions struct {
	// Walk configures module discovery.
	Walk workspace.Options

	// Group is the fallback artifact group when neither the module nor the
	// root waterfile sets one.
	Group string
}

// LoadWorkspace discovers the workspace under rootDir, loads every
// waterfile, derives artifact coordinates, and links inheritsFrom
// references. Modules without a waterfile participate with an empty
// descriptor and are skipped at emission time.
func LoadWorkspace(rootDir string, opts LoadOptions) (*Workspace, error) {
	rootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, werrors.NewIOError("resolving workspace root", rootDir, err)
	}

	addrs, err := workspace.Addresses(os.DirFS(rootDir), opts.Walk)
	if err != nil {
		return nil, err
	}
	// Walk order puts nested modules ahead of their parents; address order
	// keeps per-module output and error listings stable and readable.
	slices.Sort(addrs)

	sep := opts.Walk.Separator
	if sep == "" {
		sep = workspace.DefaultSeparator
	}
	ws := &Workspace{
		Dir:       rootDir,
		separator: sep,
		byAddress: make(map[string]*Module, len(addrs)+1),
	}

	// The root module is registered implicitly, ahead of discovery output.
	for _, address := range append([]string{""}, addrs...) {
		m, err := loadModule(rootDir, address, opts.Walk)
		if err != nil {
			return nil, err
		}
		ws.Modules = append(ws.Modules, m)
		ws.byAddress[address] = m
	}

	ws.Group = opts.Group
	root := ws.byAddress[""]
	if root.File != nil && root.File.Artifact.Group != "" {
		ws.Group = root.File.Artifact.Group
	}
	for _, m := range ws.Modules {
		if m.File != nil {
			m.Coordinate = m.File.Coordinate(filepath.Base(m.Dir), ws.Group)
		}
	}

	if err := ws.link(); err != nil {
		return nil, err
	}
	return ws, nil
}

// loadModule loads one module directory: its waterfile when present, an
// empty descriptor otherwise.
func loadModule(rootDir, address string, walk workspace.Options) (*Module, error) {
	dir := filepath.Join(rootDir, filepath.FromSlash(walk.Dir(address)))
	m := &Module{Address: address, Dir: dir}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, werrors.NewIOError("checking waterfile", path, err)
		}
		m.Descriptor = descriptor.New(address)
		output.Debug("No waterfile, module opts out", "module", m.Descriptor.Name())
		return m, nil
	}

	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	d, err := f.Apply(address)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.File = f
	m.Descriptor = d
	return m, nil
}

// link resolves inheritsFrom address strings into descriptor references.
func (w *Workspace) link() error {
	for _, m := range w.Modules {
		if m.File == nil {
			continue
		}
		for _, ref := range m.File.InheritsFrom {
			target, ok := w.byAddress[w.normalize(ref)]
			if !ok {
				return werrors.NewValidationError(
					fmt.Sprintf("unknown inheritsFrom address %q (known: %s)",
						ref, strings.Join(w.Addresses(), ", ")),
					filepath.Join(m.Dir, FileName),
					"inheritsFrom",
					"module addresses are the ones reported by waterws discover",
				)
			}
			m.Descriptor.InheritsFrom(target.Descriptor)
		}
	}
	return nil
}
