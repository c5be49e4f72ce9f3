package gateway

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/voicegate/voicegate/internal/audio"
	"github.com/voicegate/voicegate/internal/catalog"
	apperrors "github.com/voicegate/voicegate/internal/platform/errors"
	"github.com/voicegate/voicegate/internal/platform/httpx"
	"github.com/voicegate/voicegate/internal/riva"
)

// maxUploadBytes caps multipart uploads held in memory.
const maxUploadBytes = 32 << 20

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, "invalid multipart form", err))
		return
	}
	file, _, err := r.FormFile("audio")
	if err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "no audio file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, "read audio file", err))
		return
	}
	if len(data) == 0 {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "audio file is empty"))
		return
	}

	wav, err := audio.DecodeWAV(data)
	if err != nil {
		httpx.WriteError(w, apperrors.Wrap(apperrors.KindInvalidInput, err.Error(), err))
		return
	}

	sampleRate, err := parseSampleRate(r.FormValue("sample_rate"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if sampleRate == 0 {
		sampleRate = wav.SampleRate
	}
	opts, err := recognitionOptions(sampleRate, r.FormValue("language_code"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	text, err := s.client.Transcribe(httpx.RequestContext(r), wav.PCM, opts)
	if err != nil {
		httpx.WriteError(w, apperrors.FromGRPC(err, "transcribe audio"))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"transcription": text})
}

// recognitionOptions validates the shared audio request parameters. Zero
// values defer to the client defaults.
func recognitionOptions(sampleRate int, languageCode string) (riva.RecognitionOptions, error) {
	languageCode = strings.TrimSpace(languageCode)
	if err := catalog.ValidateLanguage(languageCode); err != nil {
		return riva.RecognitionOptions{}, apperrors.Wrap(apperrors.KindInvalidInput, err.Error(), err)
	}
	if sampleRate < 0 {
		return riva.RecognitionOptions{}, apperrors.E(apperrors.KindInvalidInput, "sample_rate must be a positive integer")
	}
	return riva.RecognitionOptions{
		SampleRateHertz: sampleRate,
		LanguageCode:    languageCode,
		Punctuation:     true,
	}, nil
}

func parseSampleRate(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	rate, err := strconv.Atoi(raw)
	if err != nil || rate <= 0 {
		return 0, apperrors.E(apperrors.KindInvalidInput, "sample_rate must be a positive integer")
	}
	return rate, nil
}
