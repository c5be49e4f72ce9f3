package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/voicegate/voicegate/internal/platform/errors"
	"github.com/voicegate/voicegate/internal/platform/httpx"
	"github.com/voicegate/voicegate/internal/storage"
)

// streamStartRequest is the optional JSON body fixing a session's audio
// parameters.
type streamStartRequest struct {
	SampleRate   int    `json:"sample_rate"`
	LanguageCode string `json:"language_code"`
}

func (s *Server) handleStreamStart(w http.ResponseWriter, r *http.Request) {
	var req streamStartRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, "invalid request body", err))
			return
		}
	}

	opts, err := recognitionOptions(req.SampleRate, req.LanguageCode)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	// Session streams must outlive this request; they are driven by later
	// polls.
	id, err := s.sessions.Start(s.streamCtx, opts)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"session_id": id})
}

func (s *Server) handleStreamAudio(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("sessionID"))
	if id == "" {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "session id is required"))
		return
	}

	chunk, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, "read audio chunk", err))
		return
	}
	if len(chunk) == 0 {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "empty audio chunk"))
		return
	}

	result, err := s.sessions.PushAudio(id, chunk)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"transcription": result.Transcription,
		"is_final":      result.IsFinal,
	})
}

func (s *Server) handleStreamStop(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("sessionID"))
	if id == "" {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "session id is required"))
		return
	}

	stopped, err := s.sessions.Stop(httpx.RequestContext(r), id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if store := s.transcriptStore(); store != nil {
		rec := storage.TranscriptRecord{
			ID:           stopped.ID,
			LanguageCode: stopped.LanguageCode,
			Transcript:   stopped.Transcription,
			CreatedAt:    stopped.CreatedAt,
			StoppedAt:    stopped.StoppedAt,
		}
		if err := store.PutTranscript(httpx.RequestContext(r), rec); err != nil {
			log.Printf("archive transcript %s: %v", stopped.ID, err)
		}
	}

	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"final_transcription": stopped.Transcription})
}
