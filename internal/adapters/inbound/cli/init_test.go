package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/codeshift/internal/adapters/inbound/cli"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".codeshift.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "latency_ms: 400")
	assert.Contains(t, string(data), "default_target: javascript")
	assert.Contains(t, out.String(), "Created .codeshift.yaml")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".codeshift.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".codeshift.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".codeshift.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache_size:")
	assert.NotEqual(t, "old", string(data))
}
