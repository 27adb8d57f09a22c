package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
)

// NewTestContext creates a context with logger for race-safe testing
// Returns a context with logger attached and a function to retrieve log output
func NewTestContext(t *testing.T) (ctx context.Context, getLogOutput func() string) {
	t.Helper()

	var logOutput strings.Builder
	syncWriter := zerolog.SyncWriter(&logOutput)

	ctx, err := logging.New(context.Background(), nil, logging.Config{
		Folder: "test-folder",
		Writer: syncWriter,
		Level:  zerolog.DebugLevel,
	})
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return ctx, logOutput.String
}
