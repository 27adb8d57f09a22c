package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteFixture writes content to name inside dir on fs, creating dir as needed
func WriteFixture(t *testing.T, fs afero.Fs, dir, name, content string) string {
	t.Helper()

	if err := fs.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("Failed to create fixture directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}

// ReadFixture returns the content of path on fs
func ReadFixture(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
