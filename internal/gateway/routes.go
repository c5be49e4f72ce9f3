package gateway

import (
	"net/http"

	"github.com/voicegate/voicegate/internal/platform/httpx"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(http.MethodGet+" /{$}", s.handleIndex)
	mux.HandleFunc(http.MethodPost+" /transcribe", s.handleTranscribe)
	mux.HandleFunc(http.MethodPost+" /stream_start", s.handleStreamStart)
	mux.HandleFunc(http.MethodPost+" /stream_audio/{sessionID}", s.handleStreamAudio)
	mux.HandleFunc(http.MethodPost+" /stream_stop/{sessionID}", s.handleStreamStop)
	mux.HandleFunc(http.MethodPost+" /tts/synthesize", s.handleTTSSynthesize)
	mux.HandleFunc(http.MethodPost+" /tts/stream", s.handleTTSStream)
	mux.HandleFunc(http.MethodGet+" /health", s.handleHealth)
	mux.HandleFunc(http.MethodGet+" /models", s.handleModels)
	mux.HandleFunc(http.MethodGet+" /voices", s.handleVoices)
	mux.HandleFunc(http.MethodGet+" /transcripts", s.handleTranscriptList)
	mux.HandleFunc(http.MethodGet+" /transcripts/{transcriptID}", s.handleTranscriptGet)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
	)
}
