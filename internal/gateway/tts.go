package gateway

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/voicegate/voicegate/internal/audio"
	"github.com/voicegate/voicegate/internal/catalog"
	apperrors "github.com/voicegate/voicegate/internal/platform/errors"
	"github.com/voicegate/voicegate/internal/platform/httpx"
	"github.com/voicegate/voicegate/internal/riva"
)

type ttsRequest struct {
	Text         string `json:"text"`
	Voice        string `json:"voice"`
	LanguageCode string `json:"language_code"`
	SampleRateHz int    `json:"sample_rate_hz"`
}

func (s *Server) parseTTSRequest(r *http.Request) (riva.SynthesisRequest, error) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return riva.SynthesisRequest{}, apperrors.Wrap(apperrors.KindInvalidInput, "invalid request body", err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return riva.SynthesisRequest{}, apperrors.E(apperrors.KindInvalidInput, "text is required")
	}
	if err := catalog.ValidateLanguage(req.LanguageCode); err != nil {
		return riva.SynthesisRequest{}, apperrors.Wrap(apperrors.KindInvalidInput, err.Error(), err)
	}
	if req.SampleRateHz < 0 {
		return riva.SynthesisRequest{}, apperrors.E(apperrors.KindInvalidInput, "sample_rate_hz must be a positive integer")
	}

	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		if fallback, ok := catalog.DefaultVoice(req.LanguageCode); ok {
			voice = fallback.Name
		}
	}
	return riva.SynthesisRequest{
		Text:         req.Text,
		Voice:        voice,
		LanguageCode: strings.TrimSpace(req.LanguageCode),
		SampleRateHz: req.SampleRateHz,
	}, nil
}

func (s *Server) handleTTSSynthesize(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseTTSRequest(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	pcm, err := s.client.Synthesize(httpx.RequestContext(r), req)
	if err != nil {
		httpx.WriteError(w, apperrors.FromGRPC(err, "synthesize speech"))
		return
	}

	rate := req.SampleRateHz
	if rate <= 0 {
		rate = riva.DefaultTTSSampleRateHertz
	}
	body := audio.EncodeWAV(pcm, rate, 1)
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleTTSStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseTTSRequest(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	rate := req.SampleRateHz
	if rate <= 0 {
		rate = riva.DefaultTTSSampleRateHertz
	}

	flusher, _ := w.(http.Flusher)
	headerSent := false
	err = s.client.SynthesizeStream(httpx.RequestContext(r), req, func(chunk []byte) error {
		if !headerSent {
			w.Header().Set("Content-Type", "audio/wav")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(audio.StreamHeader(rate, 1)); err != nil {
				return err
			}
			headerSent = true
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		if !headerSent {
			httpx.WriteError(w, apperrors.FromGRPC(err, "synthesize speech"))
			return
		}
		// Headers are gone; all we can do is drop the connection short.
		log.Printf("tts stream aborted: %v", err)
		return
	}
	if !headerSent {
		// Vendor produced no audio; still deliver a valid container.
		w.Header().Set("Content-Type", "audio/wav")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(audio.StreamHeader(rate, 1))
	}
}
