// Package storage defines the transcript archive persisted by the
// gateway.
package storage

import (
	"context"
	"time"
)

// TranscriptRecord is one archived transcription session.
type TranscriptRecord struct {
	ID           string
	LanguageCode string
	Transcript   string
	CreatedAt    time.Time
	StoppedAt    time.Time
}

// TranscriptStore persists finished transcription sessions.
type TranscriptStore interface {
	PutTranscript(ctx context.Context, rec TranscriptRecord) error
	GetTranscript(ctx context.Context, id string) (TranscriptRecord, error)
	ListTranscripts(ctx context.Context, limit int) ([]TranscriptRecord, error)
}

// ErrNotFound is returned when a transcript id is unknown.
type ErrNotFound struct{ ID string }

func (e ErrNotFound) Error() string {
	return "transcript not found: " + e.ID
}
