package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "htn version ")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)
	assert.Equal(t, "Pick up\nStore\n", out)

	out, err = execute(t, "inspect", "--plain", "Pick up", "Store")
	require.NoError(t, err)
	assert.Contains(t, out, "# Pick up & Store")
	assert.Contains(t, out, "`store-container`")

	_, err = execute(t, "inspect", "--plain", "Fly")
	assert.Error(t, err)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--mode", "sequence", "--name", "tidy", "Pick up", "Store")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `a0 -- "2" --> a0_1`)
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidy.yaml")
	doc := `
world: {items: [{id: cup, manipulable: true}], containers: [box]}
plan: {steps: ["Pick up", "Store"]}
inputs: [cup, box]
expect: {success: false}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := execute(t, "run", "--log-level", "error", path)
	assert.Error(t, err)
}
