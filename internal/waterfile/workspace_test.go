package waterfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/water-framework/waterws/internal/descriptor"
	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/testutil"
)

func TestLoadWorkspace(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, FileName), `artifact: group: "it.water"`)
	testutil.WriteModule(t, filepath.Join(root, "Core"), `
moduleId: "it.water.core"
output: [{id: "it.water.core.api"}]
`)
	testutil.WriteModule(t, filepath.Join(root, "Core", "api"), `
moduleId: "it.water.core.api"
inheritsFrom: ["Core"]
`)
	testutil.WriteModule(t, filepath.Join(root, "Util"), "")

	ws, err := LoadWorkspace(root, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "it.water", ws.Group, "root waterfile group becomes the workspace default")
	assert.Equal(t, []string{"Core", "Core:api", "Util"}, ws.Addresses())
	require.Len(t, ws.Modules, 4)
	assert.Equal(t, "", ws.Modules[0].Address, "root module is registered first")

	core, ok := ws.Module("Core")
	require.True(t, ok)
	assert.True(t, core.Emittable())
	assert.Equal(t, "it.water:Core:unspecified", core.Coordinate.String())

	api, ok := ws.Module("Core:api")
	require.True(t, ok)
	eff, err := descriptor.Resolve(api.Descriptor)
	require.NoError(t, err)
	require.Len(t, eff.Output, 1)
	assert.Equal(t, "it.water.core.api", eff.Output[0].ID())

	util, ok := ws.Module("Util")
	require.True(t, ok)
	assert.Nil(t, util.File)
	require.NotNil(t, util.Descriptor)
	assert.False(t, util.Emittable())

	rootModule, ok := ws.Module("")
	require.True(t, ok)
	assert.False(t, rootModule.Emittable(), "root waterfile sets no moduleId")
}

func TestLoadWorkspaceRootInheritance(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, filepath.Join(root, FileName), `
output: [{id: "it.water.workspace.defaults"}]
`)
	testutil.WriteModule(t, filepath.Join(root, "Core"), `
moduleId: "it.water.core"
inheritsFrom: [":"]
`)

	ws, err := LoadWorkspace(root, LoadOptions{})
	require.NoError(t, err)

	core, ok := ws.Module("Core")
	require.True(t, ok)
	eff, err := descriptor.Resolve(core.Descriptor)
	require.NoError(t, err)
	require.Len(t, eff.Output, 1)
	assert.Equal(t, "it.water.workspace.defaults", eff.Output[0].ID())
}

func TestLoadWorkspaceNormalizesLeadingSeparator(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, filepath.Join(root, "Core"), `moduleId: "it.water.core"`)
	testutil.WriteModule(t, filepath.Join(root, "User"), `
moduleId: "it.water.user"
inheritsFrom: [":Core"]
`)

	ws, err := LoadWorkspace(root, LoadOptions{})
	require.NoError(t, err)

	user, ok := ws.Module(":User")
	require.True(t, ok, "lookup accepts the leading separator too")
	require.Len(t, user.Descriptor.Inherits(), 1)
}

func TestLoadWorkspaceGroupFallback(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, filepath.Join(root, "Core"), `moduleId: "it.water.core"`)

	ws, err := LoadWorkspace(root, LoadOptions{Group: "com.acme"})
	require.NoError(t, err)

	assert.Equal(t, "com.acme", ws.Group)
	core, ok := ws.Module("Core")
	require.True(t, ok)
	assert.Equal(t, "com.acme:Core:unspecified", core.Coordinate.String())
}

func TestLoadWorkspaceUnknownInheritsAddress(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, filepath.Join(root, "Core"), `moduleId: "it.water.core"`)
	testutil.WriteModule(t, filepath.Join(root, "User"), `
moduleId: "it.water.user"
inheritsFrom: ["Missing"]
`)

	_, err := LoadWorkspace(root, LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.ErrValidation)
	assert.Contains(t, err.Error(), `"Missing"`)
	assert.Contains(t, err.Error(), "Core", "error lists the known addresses")
}

func TestLoadWorkspaceInvalidWaterfile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, filepath.Join(root, "Core"), `bogus: 1`)

	_, err := LoadWorkspace(root, LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.ErrValidation)
}

func TestLoadWorkspaceMissingRoot(t *testing.T) {
	_, err := LoadWorkspace(filepath.Join(t.TempDir(), "nope"), LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.ErrNotFound)
}
