// Package history records saved settings changes in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thomaskilian/Teacup-Firmware/internal/settings"
	_ "modernc.org/sqlite"
)

// Entry is one changed field of one save.
type Entry struct {
	SavedAt   time.Time
	SessionID string
	Folder    string
	Key       string
	Old       string
	New       string
	ID        int64
}

type Manager struct {
	db  *sql.DB
	now func() time.Time
}

func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases shared across calls.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	manager := &Manager{db: db, now: time.Now}

	if err := manager.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return manager, nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// Record stores one row per field that differs between before and after.
// It returns the save session ID and the number of rows written; nothing
// is written when no field changed.
func (m *Manager) Record(ctx context.Context, folder string, before, after settings.Values) (string, int, error) {
	changes := before.Diff(after)
	if len(changes) == 0 {
		return "", 0, nil
	}

	sessionID := uuid.NewString()
	savedAt := m.now().UTC().UnixMilli()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, change := range changes {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO changes (session_id, folder, key, old_value, new_value, saved_at) VALUES (?, ?, ?, ?, ?, ?)",
			sessionID, folder, change.Key, change.Old, change.New, savedAt)
		if err != nil {
			_ = tx.Rollback()
			return "", 0, fmt.Errorf("failed to record change of %s: %w", change.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("failed to commit history: %w", err)
	}
	return sessionID, len(changes), nil
}

// List returns up to limit entries for folder, newest first. A limit of
// zero or less returns every entry.
func (m *Manager) List(ctx context.Context, folder string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := m.db.QueryContext(ctx,
		`SELECT id, session_id, folder, key, old_value, new_value, saved_at
		FROM changes WHERE folder = ? ORDER BY saved_at DESC, id DESC LIMIT ?`,
		folder, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var savedAt int64
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.Folder, &entry.Key,
			&entry.Old, &entry.New, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entry.SavedAt = time.UnixMilli(savedAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}
