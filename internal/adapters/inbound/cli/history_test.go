package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_EmptyProject(t *testing.T) {
	out, err := runCmd(t, "history", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No generations recorded yet.")
}

func TestHistoryCmd_ListsGenerations(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := runCmd(t, "generate", "user", "--path", tmpDir)
	require.NoError(t, err)
	_, err = runCmd(t, "generate", "billing/order", "--path", tmpDir)
	require.NoError(t, err)

	out, err := runCmd(t, "history", "--path", tmpDir)
	require.NoError(t, err)

	assert.Contains(t, out, "user")
	assert.Contains(t, out, "billing/order")
	assert.Contains(t, out, "[colocated-service]")
	assert.Contains(t, out, "6 file(s)")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "modgen dev (none)")
}
