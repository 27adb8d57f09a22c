// Package settings loads, holds and saves the configtool settings file.
package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/thomaskilian/Teacup-Firmware/internal/constants"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
	"gopkg.in/ini.v1"
)

// Store is the in-memory authoritative copy of the settings for one folder.
type Store struct {
	fs     afero.Fs
	doc    *ini.File
	folder string
	source string
	values Values
}

// Load reads the settings of folder, made absolute. It falls back to the default
// settings file when the primary one cannot be read and to built-in
// defaults when neither can. Problems are reported to the context
// logger; Load never fails.
func Load(ctx context.Context, fs afero.Fs, folder string) *Store {
	logger := logging.Get(ctx)

	if abs, err := filepath.Abs(folder); err == nil {
		folder = abs
	} else {
		logger.Debug().Err(err).Str("folder", folder).Msg("unable to resolve settings folder")
	}

	s := &Store{
		fs:     fs,
		doc:    newDocument(),
		folder: folder,
		values: Defaults(),
	}

	doc, source := s.readFirst(ctx, s.Path(), s.DefaultPath())
	if doc == nil {
		logger.Warn().
			Str("primary", constants.SettingsFilename).
			Str("fallback", constants.DefaultSettingsFilename).
			Msg("neither settings file exists, using default values")
		return s
	}
	s.doc = doc
	s.source = source

	section, err := doc.GetSection(constants.SettingsSection)
	if err != nil {
		logger.Warn().
			Str("file", source).
			Str("section", constants.SettingsSection).
			Msg("missing settings section, assuming defaults")
		return s
	}

	for _, key := range section.Keys() {
		value := joinLines(key.Value())
		if err := s.values.Set(key.Name(), value); err != nil {
			logger.Warn().
				Str("section", constants.SettingsSection).
				Str("key", key.Name()).
				Msg("unknown option, ignoring")
		}
	}

	logger.Debug().Str("file", source).Msg("settings loaded")
	return s
}

// readFirst returns the first of paths that can be read and parsed.
func (s *Store) readFirst(ctx context.Context, paths ...string) (*ini.File, string) {
	logger := logging.Get(ctx)

	for _, path := range paths {
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			logger.Debug().Err(err).Str("file", path).Msg("settings file not readable")
			continue
		}

		doc, err := decode(data)
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Msg("settings file not parseable")
			continue
		}
		return doc, path
	}
	return nil, ""
}

// Save writes every value to the settings file in the store's folder,
// replacing any existing file. Surrounding whitespace is stripped from
// each value, in memory as well, as a reload would strip it. Other sections and unrecognized keys
// read at load time are written back unchanged. A failure is logged and
// returned; the in-memory values are not affected.
func (s *Store) Save(ctx context.Context) error {
	logger := logging.Get(ctx)
	path := s.Path()

	section := s.doc.Section(constants.SettingsSection)
	for _, f := range fields {
		value := strings.TrimSpace(f.Get(&s.values))
		f.Set(&s.values, value)
		section.Key(f.Key).SetValue(value)
	}

	data, err := encode(s.doc)
	if err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("unable to encode settings")
		return err
	}

	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("unable to open settings file for writing")
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	logger.Info().Str("file", path).Msg("settings saved")
	return nil
}

// Path returns the settings file that Save writes.
func (s *Store) Path() string {
	return filepath.Join(s.folder, constants.SettingsFilename)
}

// DefaultPath returns the read-only fallback settings file.
func (s *Store) DefaultPath() string {
	return filepath.Join(s.folder, constants.DefaultSettingsFilename)
}

// Folder returns the absolute folder the store was loaded from.
func (s *Store) Folder() string {
	return s.folder
}

// Source returns the file the values were loaded from, or "" when only
// defaults are in use.
func (s *Store) Source() string {
	return s.source
}

// Get returns the text of one field.
func (s *Store) Get(key string) (string, bool) {
	return s.values.Get(key)
}

// Set assigns the text of one field without saving.
func (s *Store) Set(key, value string) error {
	return s.values.Set(key, value)
}

// Snapshot returns a copy of the current values.
func (s *Store) Snapshot() Values {
	return s.values
}

// Apply replaces all values without saving.
func (s *Store) Apply(v Values) {
	s.values = v
}
