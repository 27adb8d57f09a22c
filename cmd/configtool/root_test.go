package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRootCommand(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()

	assert.Equal(t, "configtool", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, flag := range []string{"folder", "log-level", "history-path", "no-history", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestNewRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Available Commands")
}

func TestNewRootCommandHasAllSubcommands(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()

	for _, name := range []string{"show", "get", "set", "edit", "validate", "status", "history"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
		assert.NotEmpty(t, sub.Short, name)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, _, err := env.execute("--log-level", "shouty", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestWarningsReachStderr(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, stderr, err := env.execute("show")

	require.NoError(t, err)
	assert.Contains(t, stderr, "neither settings file exists")
	assert.Contains(t, env.logs.String(), "neither settings file exists")
}

func TestVerboseEchoesDebug(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, stderr, err := env.execute("-v", "show")

	require.NoError(t, err)
	assert.Contains(t, stderr, "command started")
}
