package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd(t *testing.T) {
	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newListCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	got := output.String()
	assert.Contains(t, got, "control-flow")
	assert.Contains(t, got, "data-types")
	assert.Contains(t, got, "variables")
	assert.Contains(t, got, "TOTAL LESSONS 3")
	// 5 + 3 + 5 transcript lines across the registry.
	assert.Contains(t, got, "13")
}

func TestListCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "variables"})
	require.Error(t, cmd.Execute())
}
