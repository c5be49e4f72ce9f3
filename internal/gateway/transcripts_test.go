package gateway_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/voicegate/voicegate/internal/gateway"
)

func TestTranscriptsUnavailableWithoutArchive(t *testing.T) {
	server, _ := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transcripts", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestStoppedSessionIsArchived(t *testing.T) {
	server, _ := newTestServer(t, func(cfg *gateway.Config) {
		cfg.DBPath = transcriptDBPath(t)
	})
	handler := server.Handler()

	id := startSession(t, handler, `{"language_code":"en-US"}`)
	pushReq := httptest.NewRequest(http.MethodPost, "/stream_audio/"+id, strings.NewReader("archive me "))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, pushReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("stream_audio status = %d", rec.Code)
	}

	stopReq := httptest.NewRequest(http.MethodPost, "/stream_stop/"+id, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, stopReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("stream_stop status = %d", rec.Code)
	}

	var list struct {
		Transcripts []struct {
			ID           string `json:"id"`
			LanguageCode string `json:"language_code"`
			Transcript   string `json:"transcript"`
		} `json:"transcripts"`
	}
	listRec := doJSON(t, handler, httptest.NewRequest(http.MethodGet, "/transcripts", nil), &list)
	if listRec.Code != http.StatusOK {
		t.Fatalf("list status = %d", listRec.Code)
	}
	if len(list.Transcripts) != 1 {
		t.Fatalf("len(transcripts) = %d, want 1", len(list.Transcripts))
	}
	if list.Transcripts[0].ID != id {
		t.Errorf("archived id = %q, want %q", list.Transcripts[0].ID, id)
	}
	if list.Transcripts[0].Transcript != "archive me" {
		t.Errorf("archived transcript = %q, want %q", list.Transcripts[0].Transcript, "archive me")
	}

	var single struct {
		ID         string `json:"id"`
		Transcript string `json:"transcript"`
	}
	getRec := doJSON(t, handler, httptest.NewRequest(http.MethodGet, "/transcripts/"+id, nil), &single)
	if getRec.Code != http.StatusOK {
		t.Fatalf("get status = %d", getRec.Code)
	}
	if single.Transcript != "archive me" {
		t.Errorf("transcript = %q, want %q", single.Transcript, "archive me")
	}
}

func TestTranscriptGetUnknownID(t *testing.T) {
	server, _ := newTestServer(t, func(cfg *gateway.Config) {
		cfg.DBPath = transcriptDBPath(t)
	})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transcripts/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestTranscriptListRejectsBadLimit(t *testing.T) {
	server, _ := newTestServer(t, func(cfg *gateway.Config) {
		cfg.DBPath = transcriptDBPath(t)
	})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transcripts?limit=zero", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
