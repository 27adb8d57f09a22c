package app

import (
	"context"

	"github.com/thomaskilian/Teacup-Firmware/internal/history"
	"github.com/thomaskilian/Teacup-Firmware/internal/logging"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
)

// RecordingStore is a settings store that records every successful save
// in the history.
type RecordingStore struct {
	*settings.Store
	history  *history.Manager
	baseline settings.Values
}

// NewRecordingStore wraps store. A nil manager disables recording.
func NewRecordingStore(store *settings.Store, manager *history.Manager) *RecordingStore {
	return &RecordingStore{
		Store:    store,
		history:  manager,
		baseline: store.Snapshot(),
	}
}

// Save writes the settings file and records the fields changed since the
// previous save. History failures are logged, not returned.
func (s *RecordingStore) Save(ctx context.Context) error {
	if err := s.Store.Save(ctx); err != nil {
		return err
	}

	current := s.Snapshot()
	defer func() { s.baseline = current }()

	if s.history == nil {
		return nil
	}

	log := logging.Get(ctx)
	sessionID, n, err := s.history.Record(ctx, s.Folder(), s.baseline, current)
	if err != nil {
		log.Warn().Err(err).Msg("failed to record settings history")
		return nil
	}
	if n > 0 {
		log.Debug().Str("session", sessionID).Int("changes", n).Msg("recorded settings history")
	}
	return nil
}
