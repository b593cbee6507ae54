package render

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/water-framework/waterws/internal/errors"
)

// Status is the outcome of one emission.
type Status string

const (
	// StatusWritten means the descriptor file was created or its content
	// replaced.
	StatusWritten Status = "written"

	// StatusUpToDate means the target already held the rendered bytes and
	// was left untouched.
	StatusUpToDate Status = "up-to-date"
)

// Artifact is the publication handle for an emitted descriptor. It attaches
// to whatever publications the module itself declares; this package only
// supplies the file and its coordinate.
type Artifact struct {
	// Coordinate the descriptor is published under.
	Coordinate Coordinate

	// Path is the location of the emitted file.
	Path string

	// Extension is always "water.json", with no classifier.
	Extension string
}

// Result reports one emission.
type Result struct {
	Status   Status
	Artifact Artifact
}

// DescriptorPath returns the emission target for a coordinate under a
// module's build output directory.
func DescriptorPath(buildDir string, c Coordinate) string {
	return filepath.Join(buildDir, "water", c.FileName())
}

// Emit writes the rendered document under the module's build output
// directory, creating parent directories as needed. When the target already
// holds byte-identical content the write is skipped and the result reports
// up-to-date: the rendered string is the sole cache key.
func Emit(buildDir string, c Coordinate, document string) (*Result, error) {
	path := DescriptorPath(buildDir, c)
	artifact := Artifact{Coordinate: c, Path: path, Extension: Extension}

	data := []byte(document)
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return &Result{Status: StatusUpToDate, Artifact: artifact}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewIOError("creating descriptor directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, errors.NewIOError("writing descriptor", path, err)
	}

	return &Result{Status: StatusWritten, Artifact: artifact}, nil
}
