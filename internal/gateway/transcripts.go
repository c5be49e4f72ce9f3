package gateway

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/voicegate/voicegate/internal/platform/errors"
	"github.com/voicegate/voicegate/internal/platform/httpx"
	"github.com/voicegate/voicegate/internal/storage"
)

const defaultTranscriptListLimit = 50

type transcriptPayload struct {
	ID           string `json:"id"`
	LanguageCode string `json:"language_code"`
	Transcript   string `json:"transcript"`
	CreatedAt    string `json:"created_at"`
	StoppedAt    string `json:"stopped_at"`
}

func toTranscriptPayload(rec storage.TranscriptRecord) transcriptPayload {
	return transcriptPayload{
		ID:           rec.ID,
		LanguageCode: rec.LanguageCode,
		Transcript:   rec.Transcript,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
		StoppedAt:    rec.StoppedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleTranscriptList(w http.ResponseWriter, r *http.Request) {
	store := s.transcriptStore()
	if store == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "transcript archive is not configured"))
		return
	}

	limit := defaultTranscriptListLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	records, err := store.ListTranscripts(httpx.RequestContext(r), limit)
	if err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindUnknown, "list transcripts", err))
		return
	}
	payload := make([]transcriptPayload, 0, len(records))
	for _, rec := range records {
		payload = append(payload, toTranscriptPayload(rec))
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"transcripts": payload})
}

func (s *Server) handleTranscriptGet(w http.ResponseWriter, r *http.Request) {
	store := s.transcriptStore()
	if store == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "transcript archive is not configured"))
		return
	}

	id := strings.TrimSpace(r.PathValue("transcriptID"))
	if id == "" {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "transcript id is required"))
		return
	}

	rec, err := store.GetTranscript(httpx.RequestContext(r), id)
	if err != nil {
		var notFound storage.ErrNotFound
		if errors.As(err, &notFound) {
			httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "unknown transcript id"))
			return
		}
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindUnknown, "load transcript", err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toTranscriptPayload(rec))
}
