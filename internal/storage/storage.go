// Package storage provides XDG-compliant storage path management for configtool.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/thomaskilian/Teacup-Firmware/internal/constants"
)

// Manager handles storage paths with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for configtool, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, constants.AppName)
	err := m.fs.MkdirAll(dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the configtool log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}

// GetHistoryPath returns the full path to the save history database
func (m *Manager) GetHistoryPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.HistoryFilename), nil
}
