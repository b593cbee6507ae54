package waterfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/render"
)

func TestApplyBuildsDescriptor(t *testing.T) {
	f, err := Parse([]byte(fullFile), "water.cue")
	require.NoError(t, err)

	d, err := f.Apply("User")
	require.NoError(t, err)

	assert.Equal(t, "User", d.Address)
	assert.Equal(t, "it.water.user", d.ModuleID)
	assert.Equal(t, "User Module", d.DisplayName)
	assert.Equal(t, "User management services", d.Description)

	outs := d.Output().Pins()
	require.Len(t, outs, 2)
	assert.Equal(t, "it.water.user.api", outs[0].ID())
	props := outs[0].Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "user.api.timeout", props[0].Key)
	assert.Equal(t, "30", props[0].Default)
	assert.True(t, props[0].Required, "absent required keeps the declaration default")
	assert.Equal(t, "user.api.token", props[1].Key)
	assert.True(t, props[1].Sensitive)

	assert.Equal(t, "it.water.persistence.jdbc", outs[1].ID())
	assert.False(t, outs[1].Required, "file override beats the catalog flag")
	assert.Len(t, outs[1].Properties(), 5)

	ins := d.Input().Pins()
	require.Len(t, ins, 2)
	assert.Equal(t, "it.water.integration.authentication-issuer", ins[0].ID())
	assert.True(t, ins[0].Required)
	assert.Equal(t, "it.water.shared.cache", ins[1].ID())
	assert.False(t, ins[1].Required)

	mprops := d.Properties().Properties()
	require.Len(t, mprops, 1)
	assert.Equal(t, "water.testing.mode", mprops[0].Key)
	assert.False(t, mprops[0].Required)
	assert.Equal(t, "false", mprops[0].Default)
}

func TestApplyStandardOutputExtension(t *testing.T) {
	f, err := Parse([]byte(`
output: [
	{standard: "jdbc", properties: [{key: "db.schema", required: false}]},
]
`), "water.cue")
	require.NoError(t, err)

	d, err := f.Apply("")
	require.NoError(t, err)

	outs := d.Output().Pins()
	require.Len(t, outs, 1)
	assert.True(t, outs[0].Required, "catalog flag survives without an override")
	props := outs[0].Properties()
	require.Len(t, props, 6)
	assert.Equal(t, "db.schema", props[5].Key, "extension lands after the catalog properties")
	assert.False(t, props[5].Required)
}

func TestApplyUnknownStandardMnemonic(t *testing.T) {
	f, err := Parse([]byte(`input: [{standard: "kafka"}]`), "water.cue")
	require.NoError(t, err)

	_, err = f.Apply("")
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.ErrValidation)
	assert.Contains(t, err.Error(), `"kafka"`)
}

func TestCoordinateFallbacks(t *testing.T) {
	var f File
	c := f.Coordinate("User", "it.water")
	assert.Equal(t, render.Coordinate{Group: "it.water", Name: "User", Version: DefaultVersion}, c)
}

func TestCoordinateExplicitWins(t *testing.T) {
	f := File{Artifact: Artifact{Group: "com.acme", Name: "CustomName", Version: "2.0.0"}}
	c := f.Coordinate("dir", "it.water")
	assert.Equal(t, "com.acme:CustomName:2.0.0", c.String())
}

func TestCoordinatePartialArtifact(t *testing.T) {
	f := File{Artifact: Artifact{Version: "1.0.0"}}
	c := f.Coordinate("Repository", "it.water")
	assert.Equal(t, "it.water:Repository:1.0.0", c.String())
}
