// Package testutil provides filesystem helpers for workspace-based tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content at path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// WriteModule creates a module directory holding a discovery marker and,
// when src is non-empty, a water.cue file.
func WriteModule(t *testing.T, dir, src string) {
	t.Helper()
	WriteFile(t, filepath.Join(dir, "build.gradle"), "")
	if src != "" {
		WriteFile(t, filepath.Join(dir, "water.cue"), src)
	}
}
