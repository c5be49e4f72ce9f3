package riva_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/voicegate/voicegate/internal/riva"
	"github.com/voicegate/voicegate/internal/riva/rivatest"
)

func dialFake(t *testing.T, addr string) *riva.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := riva.Dial(ctx, riva.Config{Addr: addr})
	if err != nil {
		t.Fatalf("dial fake riva: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestTranscribeJoinsFinalSegments(t *testing.T) {
	server := rivatest.Start(t)
	client := dialFake(t, server.Addr)

	// Each chunk fits in one frame, so the fake emits one final segment
	// per chunk.
	text, err := client.Transcribe(context.Background(), []byte("hello"), riva.RecognitionOptions{})
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "hello" {
		t.Fatalf("transcript = %q, want hello", text)
	}
}

func TestTranscribeSendsConfigFrame(t *testing.T) {
	server := rivatest.Start(t)
	client := dialFake(t, server.Addr)

	_, err := client.Transcribe(context.Background(), []byte("hi"), riva.RecognitionOptions{
		SampleRateHertz: 8000,
		LanguageCode:    "en-US",
		Punctuation:     true,
	})
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}

	cfg := server.ASR.LastConfig()
	if cfg == nil {
		t.Fatal("fake saw no config frame")
	}
	if cfg.GetSampleRateHertz() != 8000 {
		t.Fatalf("sample rate = %d, want 8000", cfg.GetSampleRateHertz())
	}
	if cfg.GetLanguageCode() != "en-US" {
		t.Fatalf("language = %q, want en-US", cfg.GetLanguageCode())
	}
}

func TestStreamAccumulatesInterimAndFinal(t *testing.T) {
	server := rivatest.Start(t)
	client := dialFake(t, server.Addr)

	stream, err := client.OpenStream(context.Background(), riva.RecognitionOptions{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer stream.Close()

	if err := stream.Send([]byte("first")); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := stream.Send([]byte("second")); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := stream.CloseSend(); err != nil {
		t.Fatalf("close send: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stream.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}

	snap := stream.Snapshot()
	if snap.Err != nil {
		t.Fatalf("stream error: %v", snap.Err)
	}
	if got := snap.Transcript(); got != "first second" {
		t.Fatalf("transcript = %q, want %q", got, "first second")
	}
	if !snap.HasFinal() {
		t.Fatal("expected final segments")
	}
}

func TestStreamSendAfterCloseSend(t *testing.T) {
	server := rivatest.Start(t)
	client := dialFake(t, server.Addr)

	stream, err := client.OpenStream(context.Background(), riva.RecognitionOptions{})
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer stream.Close()

	if err := stream.CloseSend(); err != nil {
		t.Fatalf("close send: %v", err)
	}
	if err := stream.Send([]byte("late")); err != riva.ErrStreamClosed {
		t.Fatalf("send after close = %v, want ErrStreamClosed", err)
	}
}

func TestSynthesizeReturnsPCM(t *testing.T) {
	server := rivatest.Start(t)
	client := dialFake(t, server.Addr)

	audio, err := client.Synthesize(context.Background(), riva.SynthesisRequest{
		Text:  "hello",
		Voice: "English-US-Female-1",
	})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if !bytes.Equal(audio, rivatest.RenderedAudio("hello")) {
		t.Fatalf("audio mismatch: got %d bytes", len(audio))
	}

	req := server.TTS.LastRequest()
	if req.GetVoiceName() != "English-US-Female-1" {
		t.Fatalf("voice = %q", req.GetVoiceName())
	}
	if req.GetSampleRateHz() != riva.DefaultTTSSampleRateHertz {
		t.Fatalf("sample rate = %d, want default %d", req.GetSampleRateHz(), riva.DefaultTTSSampleRateHertz)
	}
}

func TestSynthesizeStreamDeliversChunksInOrder(t *testing.T) {
	server := rivatest.Start(t)
	client := dialFake(t, server.Addr)

	var got bytes.Buffer
	err := client.SynthesizeStream(context.Background(), riva.SynthesisRequest{Text: "stream me"}, func(chunk []byte) error {
		got.Write(chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("synthesize stream: %v", err)
	}
	if !bytes.Equal(got.Bytes(), rivatest.RenderedAudio("stream me")) {
		t.Fatalf("streamed audio mismatch: got %d bytes", got.Len())
	}
}
