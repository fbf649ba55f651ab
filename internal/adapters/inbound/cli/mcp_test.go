package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/codeshift/internal/adapters/inbound/cli"
)

func TestMCPCommand_ListsServe(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"mcp", "--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "serve")
}

func TestMCPServeCommand_Flags(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"mcp", "serve", "--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "--path")
	assert.Contains(t, out.String(), "--config-dir")
}

func TestMCPServeCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CODESHIFT_WORKERS", "zero")

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"mcp", "serve", "--path", dir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
