package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/thomaskilian/Teacup-Firmware/internal/prompt"
)

const folder = "/work/teacup"

type testEnv struct {
	*environment
	logs        *bytes.Buffer
	historyPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(folder, 0o750))

	logs := &bytes.Buffer{}
	return &testEnv{
		environment: &environment{
			fs:          fs,
			logWriter:   logs,
			newPrompter: func() prompt.Prompter { panic("no prompter scripted") },
		},
		logs:        logs,
		historyPath: filepath.Join(t.TempDir(), "history.db"),
	}
}

func (e *testEnv) writeSettings(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(e.fs, filepath.Join(folder, name), []byte(content), 0o644))
}

func (e *testEnv) readSettings(t *testing.T) string {
	t.Helper()
	data, err := afero.ReadFile(e.fs, filepath.Join(folder, "configtool.ini"))
	require.NoError(t, err)
	return string(data)
}

// execute runs the root command with the folder and history flags set.
func (e *testEnv) execute(args ...string) (stdout, stderr string, err error) {
	cmd := newRootCommand(e.environment)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--folder", folder, "--history-path", e.historyPath}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
