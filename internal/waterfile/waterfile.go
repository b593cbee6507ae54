// Package waterfile loads water.cue module files: CUE documents validated
// against an embedded schema and replayed through the contract declaration
// containers, so file-based and programmatic declaration share one code path
// and one error taxonomy.
package waterfile

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	werrors "github.com/water-framework/waterws/internal/errors"
)

// FileName is the descriptor file looked up in each module directory.
const FileName = "water.cue"

//go:embed schema.cue
var schemaSource []byte

// File is a decoded waterfile.
type File struct {
	ModuleID    string `json:"moduleId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`

	Artifact Artifact `json:"artifact,omitempty"`

	InheritsFrom []string `json:"inheritsFrom,omitempty"`

	Properties []Property    `json:"properties,omitempty"`
	Output     []OutputEntry `json:"output,omitempty"`
	Input      []InputEntry  `json:"input,omitempty"`
}

// Artifact is the optional coordinate block. Missing fields fall back to
// workspace defaults when the coordinate is derived.
type Artifact struct {
	Group   string `json:"group,omitempty"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Property is one property entry. Required is a pointer so that an absent
// field keeps the declaration default instead of forcing false.
type Property struct {
	Key         string `json:"key"`
	Type        string `json:"type,omitempty"`
	EnvVar      string `json:"envVar,omitempty"`
	Required    *bool  `json:"required,omitempty"`
	Sensitive   bool   `json:"sensitive,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// OutputEntry is one output contract entry: custom when ID is set, standard
// when Standard is set. The schema guarantees exactly one of the two.
type OutputEntry struct {
	ID         string     `json:"id,omitempty"`
	Standard   string     `json:"standard,omitempty"`
	Required   *bool      `json:"required,omitempty"`
	Properties []Property `json:"properties,omitempty"`
}

// InputEntry is one input contract entry, custom or standard like
// OutputEntry.
type InputEntry struct {
	ID       string `json:"id,omitempty"`
	Standard string `json:"standard,omitempty"`
	Required *bool  `json:"required,omitempty"`
}

// Parse validates waterfile bytes against the embedded schema and decodes
// them. The filename appears in error messages only.
func Parse(data []byte, filename string) (*File, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling waterfile schema: %w", schema.Err())
	}
	moduleDef := schema.LookupPath(cue.ParsePath("#Module"))
	if moduleDef.Err() != nil {
		return nil, fmt.Errorf("looking up #Module in waterfile schema: %w", moduleDef.Err())
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if value.Err() != nil {
		return nil, formatCUEError(value.Err(), filename)
	}

	unified := moduleDef.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err, filename)
	}

	var f File
	if err := unified.Decode(&f); err != nil {
		return nil, formatCUEError(err, filename)
	}
	return &f, nil
}

// Load reads and parses the waterfile at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, werrors.NewIOError("reading waterfile", path, err)
	}
	return Parse(data, path)
}

// formatCUEError flattens a CUE error list into a single validation error
// with dotted field paths.
func formatCUEError(err error, filename string) error {
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return werrors.NewValidationError(err.Error(), filename, "", "")
	}

	var lines []string
	var field string
	for _, e := range list {
		p := formatFieldPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE sometimes repeats the path inside the message.
		if p != "" && strings.HasPrefix(msg, p) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, p), ":"))
		}
		if p != "" {
			if field == "" {
				field = p
			}
			lines = append(lines, fmt.Sprintf("%s: %s", p, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	return werrors.NewValidationError(strings.Join(lines, "; "), filename, field, "")
}

// formatFieldPath converts a CUE error path like ["output", "0", "id"] into
// the JSON-path notation "output[0].id".
func formatFieldPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var b strings.Builder
	for i, part := range path {
		isIndex := part != ""
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}
		switch {
		case isIndex && i > 0:
			b.WriteString("[")
			b.WriteString(part)
			b.WriteString("]")
		case i > 0:
			b.WriteString(".")
			b.WriteString(part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}
