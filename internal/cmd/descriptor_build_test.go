package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/testutil"
)

func TestNewDescriptorBuildCmd(t *testing.T) {
	cmd := NewDescriptorBuildCmd()

	assert.Equal(t, "build [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("module"))
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
}

func TestDescriptorBuild_EmitsDescriptors(t *testing.T) {
	root := writeWorkspace(t)

	out, err := captureOutput(t, func() error {
		return runIsolated(t, "descriptor", "build", root)
	})
	require.NoError(t, err)

	corePath := filepath.Join(root, "Core", "build", "water", "Core-1.0.0.water.json")
	apiPath := filepath.Join(root, "Core", "api", "build", "water", "CoreApi-1.0.0.water.json")

	coreData, err := os.ReadFile(corePath)
	require.NoError(t, err)
	var doc struct {
		SchemaVersion string `json:"schemaVersion"`
		ArtifactID    string `json:"artifactId"`
		ModuleID      string `json:"moduleId"`
	}
	require.NoError(t, json.Unmarshal(coreData, &doc))
	assert.Equal(t, "1.0", doc.SchemaVersion)
	assert.Equal(t, "it.water:Core:1.0.0", doc.ArtifactID)
	assert.Equal(t, "it.water.core", doc.ModuleID)

	assert.FileExists(t, apiPath)

	// Marker-only modules emit nothing.
	assert.NoDirExists(t, filepath.Join(root, "Util", "build"))

	assert.Contains(t, out, "written")
	assert.Contains(t, out, "2 written")
}

func TestDescriptorBuild_SecondRunUpToDate(t *testing.T) {
	root := writeWorkspace(t)

	require.NoError(t, runIsolated(t, "descriptor", "build", root))

	corePath := filepath.Join(root, "Core", "build", "water", "Core-1.0.0.water.json")
	before, err := os.Stat(corePath)
	require.NoError(t, err)

	out, err := captureOutput(t, func() error {
		return runIsolated(t, "descriptor", "build", root)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "2 up-to-date")

	after, err := os.Stat(corePath)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "up-to-date file must not be rewritten")
}

func TestDescriptorBuild_ModuleFilter(t *testing.T) {
	root := writeWorkspace(t)

	err := runIsolated(t, "descriptor", "build", root, "--module", "Core:api")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "Core", "api", "build", "water", "CoreApi-1.0.0.water.json"))
	assert.NoDirExists(t, filepath.Join(root, "Core", "build"))
}

func TestDescriptorBuild_UnknownModuleFilter(t *testing.T) {
	root := writeWorkspace(t)

	err := runIsolated(t, "descriptor", "build", root, "--module", "Missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.ErrNotFound)
	assert.Contains(t, err.Error(), "Missing")
}

func TestDescriptorBuild_DryRunWritesNothing(t *testing.T) {
	root := writeWorkspace(t)

	out, err := captureOutput(t, func() error {
		return runIsolated(t, "descriptor", "build", root, "--dry-run")
	})
	require.NoError(t, err)
	assert.Contains(t, out, "2 written")

	assert.NoDirExists(t, filepath.Join(root, "Core", "build"))
	assert.NoDirExists(t, filepath.Join(root, "Core", "api", "build"))
}

func TestDescriptorBuild_CycleFailsThatModuleOnly(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "water.cue"), `artifact: group: "it.water"`+"\n")
	testutil.WriteFile(t, filepath.Join(root, "A", "build.gradle"), "")
	testutil.WriteFile(t, filepath.Join(root, "A", "water.cue"), `moduleId: "it.water.a"
artifact: {name: "A", version: "1.0.0"}
inheritsFrom: ["B"]
`)
	testutil.WriteFile(t, filepath.Join(root, "B", "build.gradle"), "")
	testutil.WriteFile(t, filepath.Join(root, "B", "water.cue"), `moduleId: "it.water.b"
artifact: {name: "B", version: "1.0.0"}
inheritsFrom: ["A"]
`)
	testutil.WriteFile(t, filepath.Join(root, "C", "build.gradle"), "")
	testutil.WriteFile(t, filepath.Join(root, "C", "water.cue"), `moduleId: "it.water.c"
artifact: {name: "C", version: "1.0.0"}
`)

	err := runIsolated(t, "descriptor", "build", root)
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitValidationError, exitErr.Code)
	assert.Contains(t, err.Error(), "2 descriptor(s) failed")

	// The module outside the cycle still gets its descriptor.
	assert.FileExists(t, filepath.Join(root, "C", "build", "water", "C-1.0.0.water.json"))
	assert.NoDirExists(t, filepath.Join(root, "A", "build"))
	assert.NoDirExists(t, filepath.Join(root, "B", "build"))
}

func TestDescriptorBuild_UnknownInheritsFromFailsLoad(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, "A", "build.gradle"), "")
	testutil.WriteFile(t, filepath.Join(root, "A", "water.cue"), `moduleId: "it.water.a"
artifact: {name: "A", version: "1.0.0"}
inheritsFrom: ["Nowhere"]
`)

	err := runIsolated(t, "descriptor", "build", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.ErrValidation)
	assert.Contains(t, err.Error(), "Nowhere")
}
