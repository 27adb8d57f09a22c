package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("configtool", pflag.ContinueOnError)
	flags.StringP("folder", "f", ".", "settings folder")
	flags.String("log-level", "info", "log level")
	flags.Bool("no-history", false, "disable history")
	flags.BoolP("verbose", "v", false, "verbose")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	options, err := Load(nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, &want, options)
}

func TestLoadFromFlags(t *testing.T) {
	t.Parallel()

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--folder", "/teacup", "--log-level", "debug", "--no-history", "-v"}))

	options, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "/teacup", options.Folder)
	assert.Equal(t, "debug", options.LogLevel)
	assert.True(t, options.NoHistory)
	assert.True(t, options.Verbose)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Options
		wantErr bool
	}{
		{name: "defaults", input: Default(), wantErr: false},
		{name: "empty folder", input: Options{Folder: " ", LogLevel: "info"}, wantErr: true},
		{name: "bad level", input: Options{Folder: ".", LogLevel: "shouty"}, wantErr: true},
		{name: "empty level", input: Options{Folder: "."}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConsoleLevel(t *testing.T) {
	t.Parallel()

	options := Default()
	assert.Equal(t, zerolog.WarnLevel, options.ConsoleLevel())

	options.Verbose = true
	assert.Equal(t, zerolog.DebugLevel, options.ConsoleLevel())
}
