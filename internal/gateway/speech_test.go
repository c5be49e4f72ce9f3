package gateway_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voicegate/voicegate/internal/audio"
	"github.com/voicegate/voicegate/internal/riva/rivatest"
)

func multipartAudio(t *testing.T, payload []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", "clip.wav")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestTranscribeReturnsTranscription(t *testing.T) {
	server, _ := newTestServer(t, nil)

	body, contentType := multipartAudio(t, []byte("hello world"), nil)
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	var resp map[string]string
	rec := doJSON(t, server.Handler(), req, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if resp["transcription"] != "hello world" {
		t.Errorf("transcription = %q, want %q", resp["transcription"], "hello world")
	}
}

func TestTranscribeHonorsWAVHeader(t *testing.T) {
	server, fake := newTestServer(t, nil)

	wav := audio.EncodeWAV([]byte("from a wav"), 8000, 1)
	body, contentType := multipartAudio(t, wav, nil)
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	var resp map[string]string
	rec := doJSON(t, server.Handler(), req, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if resp["transcription"] != "from a wav" {
		t.Errorf("transcription = %q, want %q", resp["transcription"], "from a wav")
	}
	cfg := fake.ASR.LastConfig()
	if cfg == nil {
		t.Fatal("no config frame recorded")
	}
	if cfg.GetSampleRateHertz() != 8000 {
		t.Errorf("sample rate = %d, want 8000 from wav header", cfg.GetSampleRateHertz())
	}
}

func TestTranscribeRequiresAudioFile(t *testing.T) {
	server, _ := newTestServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("language_code", "en-US"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/transcribe", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTranscribeRejectsBadSampleRate(t *testing.T) {
	server, _ := newTestServer(t, nil)

	body, contentType := multipartAudio(t, []byte("hello"), map[string]string{"sample_rate": "fast"})
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func startSession(t *testing.T, handler http.Handler, body string) string {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/stream_start", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	var resp map[string]string
	rec := doJSON(t, handler, req, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("stream_start status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if resp["session_id"] == "" {
		t.Fatal("stream_start returned empty session id")
	}
	return resp["session_id"]
}

func TestStreamSessionRoundTrip(t *testing.T) {
	server, _ := newTestServer(t, nil)
	handler := server.Handler()

	id := startSession(t, handler, `{"language_code":"en-US","sample_rate":16000}`)

	pushReq := httptest.NewRequest(http.MethodPost, "/stream_audio/"+id, strings.NewReader("chunk one "))
	var pushResp struct {
		Transcription string `json:"transcription"`
		IsFinal       bool   `json:"is_final"`
	}
	rec := doJSON(t, handler, pushReq, &pushResp)
	if rec.Code != http.StatusOK {
		t.Fatalf("stream_audio status = %d, body = %s", rec.Code, rec.Body.String())
	}

	stopReq := httptest.NewRequest(http.MethodPost, "/stream_stop/"+id, nil)
	var stopResp map[string]string
	rec = doJSON(t, handler, stopReq, &stopResp)
	if rec.Code != http.StatusOK {
		t.Fatalf("stream_stop status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if stopResp["final_transcription"] != "chunk one" {
		t.Errorf("final transcription = %q, want %q", stopResp["final_transcription"], "chunk one")
	}
}

func TestStreamAudioUnknownSession(t *testing.T) {
	server, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/stream_audio/nope", strings.NewReader("audio"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestStreamAudioEmptyChunk(t *testing.T) {
	server, _ := newTestServer(t, nil)
	handler := server.Handler()

	id := startSession(t, handler, "")
	req := httptest.NewRequest(http.MethodPost, "/stream_audio/"+id, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStreamAudioAfterStopConflicts(t *testing.T) {
	server, _ := newTestServer(t, nil)
	handler := server.Handler()

	id := startSession(t, handler, "")
	stopReq := httptest.NewRequest(http.MethodPost, "/stream_stop/"+id, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, stopReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("stream_stop status = %d", rec.Code)
	}

	pushReq := httptest.NewRequest(http.MethodPost, "/stream_audio/"+id, strings.NewReader("late"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, pushReq)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestStreamStartRejectsInvalidJSON(t *testing.T) {
	server, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/stream_start", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTTSSynthesizeReturnsWAV(t *testing.T) {
	server, fake := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/tts/synthesize", strings.NewReader(`{"text":"hi there"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "audio/wav" {
		t.Errorf("content type = %q, want audio/wav", got)
	}
	body := rec.Body.Bytes()
	if !bytes.HasPrefix(body, []byte("RIFF")) {
		t.Fatal("response is not a RIFF container")
	}
	wav, err := audio.DecodeWAV(body)
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !bytes.Equal(wav.PCM, rivatest.RenderedAudio("hi there")) {
		t.Error("pcm payload does not match rendered audio")
	}
	if last := fake.TTS.LastRequest(); last.GetVoiceName() == "" {
		t.Error("expected a default voice to be selected")
	}
}

func TestTTSSynthesizeRequiresText(t *testing.T) {
	server, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/tts/synthesize", strings.NewReader(`{"text":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTTSStreamDeliversChunkedWAV(t *testing.T) {
	server, _ := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/tts/stream", strings.NewReader(`{"text":"streamed speech"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.Bytes()
	if !bytes.HasPrefix(body, []byte("RIFF")) {
		t.Fatal("response is not a RIFF container")
	}
	pcm := body[44:]
	if !bytes.Equal(pcm, rivatest.RenderedAudio("streamed speech")) {
		t.Errorf("pcm length = %d, want %d", len(pcm), len(rivatest.RenderedAudio("streamed speech")))
	}
}
