package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
items:
  - label: A
    cost: 10
    size: 1
  - label: B
    cost: 4
    size: 1
trace: [A, B, A]
`)

	tr, err := Load(path, 2)
	require.NoError(t, err)
	require.Len(t, tr.Items, 2)
	require.Len(t, tr.Requests, 3)
	assert.Equal(t, "A", tr.Requests[0].Label())
	assert.Equal(t, "B", tr.Requests[1].Label())
	assert.Equal(t, "A", tr.Requests[2].Label())
}

func TestLoad_OversizedItem(t *testing.T) {
	path := writeConfig(t, `
items:
  - label: A
    cost: 10
    size: 5
trace: [A]
`)

	_, err := Load(path, 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds capacity")
}

func TestLoad_UnknownTraceLabel(t *testing.T) {
	path := writeConfig(t, `
items:
  - label: A
    cost: 10
    size: 1
trace: [A, Z]
`)

	_, err := Load(path, 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown label "Z"`)
}

func TestLoad_DuplicateLabel(t *testing.T) {
	path := writeConfig(t, `
items:
  - label: A
    cost: 10
    size: 1
  - label: A
    cost: 5
    size: 1
trace: [A]
`)

	_, err := Load(path, 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate label")
}

func TestLoad_AggregatesMultipleErrors(t *testing.T) {
	path := writeConfig(t, `
items:
  - label: A
    cost: 10
    size: 5
trace: [A, Z]
`)

	_, err := Load(path, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds capacity")
	assert.Contains(t, err.Error(), "unknown label")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), 2)
	assert.Error(t, err)
}

func TestLoad_InvalidItem(t *testing.T) {
	path := writeConfig(t, `
items:
  - label: ""
    cost: 10
    size: 1
trace: []
`)
	_, err := Load(path, 2)
	assert.Error(t, err)
}
