// Package sqlite provides the SQLite-backed transcript archive.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	sqlitemigrate "github.com/voicegate/voicegate/internal/platform/storage/sqlitemigrate"
	"github.com/voicegate/voicegate/internal/storage"
	"github.com/voicegate/voicegate/internal/storage/sqlite/migrations"
)

// Store persists transcripts in a SQLite database.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (and migrates) a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// PutTranscript inserts or replaces an archived transcript.
func (s *Store) PutTranscript(ctx context.Context, rec storage.TranscriptRecord) error {
	if strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("transcript id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT OR REPLACE INTO transcripts (id, language_code, transcript, created_at, stopped_at)
VALUES (?, ?, ?, ?, ?)`,
		rec.ID,
		rec.LanguageCode,
		rec.Transcript,
		toMillis(rec.CreatedAt),
		toMillis(rec.StoppedAt),
	)
	if err != nil {
		return fmt.Errorf("put transcript: %w", err)
	}
	return nil
}

// GetTranscript loads one archived transcript by id.
func (s *Store) GetTranscript(ctx context.Context, id string) (storage.TranscriptRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, language_code, transcript, created_at, stopped_at
FROM transcripts WHERE id = ?`, id)

	rec, err := scanTranscript(row.Scan)
	if err == sql.ErrNoRows {
		return storage.TranscriptRecord{}, storage.ErrNotFound{ID: id}
	}
	if err != nil {
		return storage.TranscriptRecord{}, fmt.Errorf("get transcript: %w", err)
	}
	return rec, nil
}

// ListTranscripts returns the most recently stopped transcripts.
func (s *Store) ListTranscripts(ctx context.Context, limit int) ([]storage.TranscriptRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, language_code, transcript, created_at, stopped_at
FROM transcripts ORDER BY stopped_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var out []storage.TranscriptRecord
	for rows.Next() {
		rec, err := scanTranscript(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return out, nil
}

func scanTranscript(scan func(...any) error) (storage.TranscriptRecord, error) {
	var (
		rec       storage.TranscriptRecord
		createdAt int64
		stoppedAt int64
	)
	if err := scan(&rec.ID, &rec.LanguageCode, &rec.Transcript, &createdAt, &stoppedAt); err != nil {
		return storage.TranscriptRecord{}, err
	}
	rec.CreatedAt = fromMillis(createdAt)
	rec.StoppedAt = fromMillis(stoppedAt)
	return rec, nil
}
