// Package workspace discovers module directories in a workspace tree and
// turns them into hierarchical module addresses.
package workspace

import (
	"io/fs"
	"path"
	"strings"

	"github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/output"
)

// Walk defaults.
const (
	DefaultMarker    = "build.gradle"
	DefaultSeparator = ":"
)

// DefaultExcludes lists directory names whose subtrees never contain
// workspace modules: build output, packaging, binaries, and module-internal
// sources.
func DefaultExcludes() []string {
	return []string{"exam", "build", "target", "bin", "src"}
}

// Options configures a discovery walk. The zero value walks with defaults.
type Options struct {
	// Marker is the build descriptor file name that identifies a module
	// directory. Empty means DefaultMarker.
	Marker string

	// Exclude lists directory names to prune. Nil means DefaultExcludes;
	// an explicit empty slice prunes nothing.
	Exclude []string

	// Separator joins address segments. Empty means DefaultSeparator.
	Separator string
}

func (o Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}

func (o Options) separator() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

func (o Options) excluded(name string) bool {
	exclude := o.Exclude
	if exclude == nil {
		exclude = DefaultExcludes()
	}
	for _, e := range exclude {
		if name == e {
			return true
		}
	}
	return false
}

// Decision classifies one node of the workspace tree.
type Decision int

const (
	// Descend keeps walking into or past the node.
	Descend Decision = iota

	// SkipSubtree prunes a directory and everything beneath it.
	SkipSubtree

	// RecordModule registers the node's parent directory as a module.
	RecordModule
)

// Classify decides what the walk does at one node. It is a pure function of
// the node's root-relative path and kind: excluded directory names prune
// their whole subtree, and a marker file records a module unless it sits
// directly at the root (the root module is registered implicitly by the
// host, never by discovery).
func (o Options) Classify(p string, isDir bool) Decision {
	if isDir {
		if p != "." && o.excluded(path.Base(p)) {
			return SkipSubtree
		}
		return Descend
	}
	if path.Base(p) == o.marker() && path.Dir(p) != "." {
		return RecordModule
	}
	return Descend
}

// Address converts a root-relative module directory into a hierarchical
// address by joining its segments with the address separator.
func (o Options) Address(dir string) string {
	if dir == "." || dir == "" {
		return ""
	}
	return strings.ReplaceAll(dir, "/", o.separator())
}

// Dir converts an address back into the root-relative module directory.
func (o Options) Dir(address string) string {
	if address == "" {
		return "."
	}
	return strings.ReplaceAll(address, o.separator(), "/")
}

// Registrar receives discovered module addresses one at a time, in walk
// order.
type Registrar interface {
	Register(address string)
}

// RegistrarFunc adapts a plain function to Registrar.
type RegistrarFunc func(address string)

func (f RegistrarFunc) Register(address string) { f(address) }

// Discover walks the workspace tree depth-first and hands every module
// address to the registrar, in walk order, deduplicated (first occurrence
// wins). Unreadable subtrees are logged as warnings and skipped so that one
// bad subtree never blocks registration of the rest; only an unreadable
// root fails the walk.
func Discover(fsys fs.FS, opts Options, reg Registrar) error {
	seen := make(map[string]bool)

	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return errors.NewNotFoundError("workspace root is not readable", p, "check the workspace path")
			}
			output.Warn("Skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		switch opts.Classify(p, d.IsDir()) {
		case SkipSubtree:
			return fs.SkipDir
		case RecordModule:
			addr := opts.Address(path.Dir(p))
			if addr != "" && !seen[addr] {
				seen[addr] = true
				reg.Register(addr)
			}
		}
		return nil
	})
}

// Addresses walks the workspace and collects the module addresses in walk
// order.
func Addresses(fsys fs.FS, opts Options) ([]string, error) {
	addrs := make([]string, 0)
	err := Discover(fsys, opts, RegistrarFunc(func(address string) {
		addrs = append(addrs, address)
	}))
	return addrs, err
}
