// Package app wires the settings store, save history and logging for one
// configtool invocation.
package app

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/thomaskilian/Teacup-Firmware/internal/config"
	"github.com/thomaskilian/Teacup-Firmware/internal/history"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
	"github.com/thomaskilian/Teacup-Firmware/internal/storage"
)

// App owns the resources opened for a settings folder.
type App struct {
	store   *RecordingStore
	history *history.Manager
	options config.Options
}

// Open loads the settings of opts.Folder and, unless disabled, opens the
// save history. A history that cannot be opened is logged and skipped.
func Open(ctx context.Context, fs afero.Fs, opts config.Options) (*App, error) {
	return open(ctx, fs, opts, !opts.NoHistory)
}

// OpenSettings loads the settings of opts.Folder without the save history,
// for commands that never save.
func OpenSettings(ctx context.Context, fs afero.Fs, opts config.Options) (*App, error) {
	return open(ctx, fs, opts, false)
}

func open(ctx context.Context, fs afero.Fs, opts config.Options, withHistory bool) (*App, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	app := &App{options: opts}
	if withHistory {
		app.history = openHistory(ctx, fs, opts)
	}

	app.store = NewRecordingStore(settings.Load(ctx, fs, opts.Folder), app.history)
	return app, nil
}

func openHistory(ctx context.Context, fs afero.Fs, opts config.Options) *history.Manager {
	log := logging.Get(ctx)

	dsn := opts.HistoryPath
	if dsn == "" {
		path, err := storage.New(fs).GetHistoryPath()
		if err != nil {
			log.Warn().Err(err).Msg("history location unavailable, history disabled")
			return nil
		}
		dsn = path
	}

	manager, err := history.NewManager(ctx, dsn)
	if err != nil {
		log.Warn().Err(err).Str("path", dsn).Msg("unable to open history, history disabled")
		return nil
	}
	return manager
}

// Store returns the settings store of the folder.
func (a *App) Store() *RecordingStore {
	return a.store
}

// History returns the save history, or nil when it is disabled.
func (a *App) History() *history.Manager {
	return a.history
}

// Options returns the options the app was opened with.
func (a *App) Options() config.Options {
	return a.options
}

// Close releases the history database.
func (a *App) Close() error {
	if a.history == nil {
		return nil
	}
	if err := a.history.Close(); err != nil {
		return fmt.Errorf("failed to close history: %w", err)
	}
	return nil
}
