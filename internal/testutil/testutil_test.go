package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
)

func TestNewTestContextCapturesLogs(t *testing.T) {
	t.Parallel()

	ctx, getLogs := NewTestContext(t)
	logging.Get(ctx).Warn().Msg("captured")

	assert.Contains(t, getLogs(), "captured")
}

func TestWriteAndReadFixture(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := WriteFixture(t, fs, "/work", "configtool.ini", "[configtool]\n")

	assert.Equal(t, "/work/configtool.ini", path)
	assert.Equal(t, "[configtool]\n", ReadFixture(t, fs, path))
}

func TestVerifyNoLeaks(t *testing.T) {
	defer VerifyNoLeaks(t)
}
