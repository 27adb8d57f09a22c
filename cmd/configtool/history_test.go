package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	stdout, _, err := env.execute("history")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No saved changes recorded.")
}

func TestHistoryLimit(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, _, err := env.execute("set", "port", "COM1", "cflags", "-O2", "ldflags", "-lm")
	require.NoError(t, err)

	stdout, _, err := env.execute("history", "--limit", "2")
	require.NoError(t, err)
	assert.Len(t, lines(stdout), 2)
}

func TestHistoryDisabled(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, _, err := env.execute("--no-history", "history")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is disabled")
}

func TestShortID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("12345678-aaaa"))
}
