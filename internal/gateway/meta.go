package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/voicegate/voicegate/internal/catalog"
	apperrors "github.com/voicegate/voicegate/internal/platform/errors"
	"github.com/voicegate/voicegate/internal/platform/httpx"
)

const healthProbeTimeout = 2 * time.Second

// handleIndex stands in for the demo page: a JSON description of the
// service and its endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"service": "voicegate",
		"endpoints": []string{
			"POST /transcribe",
			"POST /stream_start",
			"POST /stream_audio/{id}",
			"POST /stream_stop/{id}",
			"POST /tts/synthesize",
			"POST /tts/stream",
			"GET /health",
			"GET /models",
			"GET /voices",
			"GET /transcripts",
			"GET /transcripts/{id}",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), healthProbeTimeout)
	defer cancel()

	rivaState := "connected"
	if err := s.client.Healthy(ctx); err != nil {
		rivaState = "unreachable"
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"riva":   rivaState,
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, s.models)
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	languageCode := r.URL.Query().Get("language_code")
	if err := catalog.ValidateLanguage(languageCode); err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, err.Error(), err))
		return
	}
	voices := catalog.Voices(languageCode)
	if voices == nil {
		voices = []catalog.Voice{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"voices": voices})
}
