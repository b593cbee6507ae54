package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/water-framework/waterws/internal/testutil"
)

// runCLI executes the root command with args, pointing configuration at
// cfgPath so tests never touch a developer's real config file.
func runCLI(t *testing.T, cfgPath string, args ...string) error {
	t.Helper()
	t.Setenv("WATERWS_CONFIG", cfgPath)

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.Execute()
}

// runIsolated executes the root command against a nonexistent config file,
// so pure defaults apply.
func runIsolated(t *testing.T, args ...string) error {
	t.Helper()
	return runCLI(t, filepath.Join(t.TempDir(), "config.yaml"), args...)
}

// captureOutput redirects stdout while fn runs and returns what was printed.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data), runErr
}

const coreWaterfile = `moduleId: "it.water.core"
artifact: {
	name:    "Core"
	version: "1.0.0"
}
output: [{
	id: "it.water.core.api"
	properties: [{key: "core.timeout", required: false, default: "30"}]
}]
`

const apiWaterfile = `moduleId: "it.water.core.api"
artifact: {
	name:    "CoreApi"
	version: "1.0.0"
}
inheritsFrom: ["Core"]
input: [{standard: "authentication-issuer"}]
`

// writeWorkspace lays out a small workspace: a root waterfile carrying the
// group, Core with a waterfile, Core/api inheriting from Core, and a
// marker-only Util module.
func writeWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	testutil.WriteFile(t, filepath.Join(root, "water.cue"), `artifact: group: "it.water"`+"\n")
	testutil.WriteModule(t, filepath.Join(root, "Core"), coreWaterfile)
	testutil.WriteModule(t, filepath.Join(root, "Core", "api"), apiWaterfile)
	testutil.WriteModule(t, filepath.Join(root, "Util"), "")

	return root
}
