package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdenticalDocuments(t *testing.T) {
	doc, err := Render(sampleInput())
	require.NoError(t, err)

	report, err := Diff([]byte(doc), []byte(doc), false)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestDiffReportsChangedDefault(t *testing.T) {
	before, err := Render(sampleInput())
	require.NoError(t, err)

	changed := sampleInput()
	changed.Outputs[0].Properties()[0].Default = "4"
	changed.Outputs[0].Property("user.api.region", nil)
	after, err := Render(changed)
	require.NoError(t, err)

	report, err := Diff([]byte(before), []byte(after), false)
	require.NoError(t, err)
	assert.NotEmpty(t, report)
	assert.Contains(t, report, "user.api.region")
}

func TestDiffEmptyInputs(t *testing.T) {
	report, err := Diff(nil, nil, false)
	require.NoError(t, err)
	assert.Empty(t, report)
}
