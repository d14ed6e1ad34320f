package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	oldVersion := version
	SetVersion("1.2.3")
	defer SetVersion(oldVersion)

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "hashmark version 1.2.3")
}

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "register")
	assert.Contains(t, names, "verify")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "delete")
	assert.Contains(t, names, "clear")
	assert.Contains(t, names, "export")
	assert.Contains(t, names, "copy")
	assert.Contains(t, names, "digest")
	assert.Contains(t, names, "watch")
	assert.Contains(t, names, "version")
}
