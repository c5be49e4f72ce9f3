// Package rivatest provides an in-process Riva stand-in for tests.
package rivatest

import (
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"testing"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/voicegate/voicegate/internal/riva/rivapb"
)

// Server hosts fake ASR/TTS services plus a health endpoint on a loopback
// listener.
type Server struct {
	Addr string
	ASR  *FakeASR
	TTS  *FakeTTS

	grpcServer *gogrpc.Server
	health     *health.Server
}

// Start boots the fake server and registers cleanup with t.
func Start(t *testing.T) *Server {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	fakeASR := &FakeASR{SupportedLanguages: map[string]bool{"en-US": true}}
	fakeTTS := &FakeTTS{}

	grpcServer := gogrpc.NewServer()
	rivapb.RegisterRivaSpeechRecognitionServer(grpcServer, fakeASR)
	rivapb.RegisterRivaSpeechSynthesisServer(grpcServer, fakeTTS)
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		_ = grpcServer.Serve(listener)
	}()
	t.Cleanup(grpcServer.Stop)

	return &Server{
		Addr:       listener.Addr().String(),
		ASR:        fakeASR,
		TTS:        fakeTTS,
		grpcServer: grpcServer,
		health:     healthServer,
	}
}

// SetHealth flips the health endpoint status.
func (s *Server) SetHealth(serving bool) {
	next := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		next = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", next)
}

// FakeASR echoes each audio chunk back as a final transcript segment,
// preceded by an interim hypothesis, which is enough to exercise the
// client's merge logic.
type FakeASR struct {
	rivapb.UnimplementedRivaSpeechRecognitionServer

	// SupportedLanguages controls the Recognize probe response: unknown
	// languages fail with the vendor's "Unavailable model" wording.
	SupportedLanguages map[string]bool

	mu          sync.Mutex
	lastConfig  *rivapb.RecognitionConfig
	audioFrames int
}

// LastConfig returns the config frame most recently seen on a stream.
func (f *FakeASR) LastConfig() *rivapb.RecognitionConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastConfig
}

// AudioFrames returns how many audio frames arrived across all streams.
func (f *FakeASR) AudioFrames() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.audioFrames
}

// Recognize mimics the vendor's probe behavior for empty audio.
func (f *FakeASR) Recognize(_ context.Context, req *rivapb.RecognizeRequest) (*rivapb.RecognizeResponse, error) {
	lang := req.GetConfig().GetLanguageCode()
	if f.SupportedLanguages != nil && !f.SupportedLanguages[lang] {
		return nil, status.Errorf(codes.InvalidArgument, "Error: Unavailable model requested for language %s", lang)
	}
	if len(req.GetAudio()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "audio content is empty")
	}
	return &rivapb.RecognizeResponse{
		Results: []*rivapb.SpeechRecognitionResult{{
			Alternatives: []*rivapb.SpeechRecognitionAlternative{{
				Transcript: strings.TrimSpace(string(req.GetAudio())),
				Confidence: 0.9,
			}},
		}},
	}, nil
}

// StreamingRecognize requires a config frame first, then answers every
// audio frame with an interim and a final result carrying the frame text.
func (f *FakeASR) StreamingRecognize(stream rivapb.RivaSpeechRecognition_StreamingRecognizeServer) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}
	cfg := first.GetStreamingConfig()
	if cfg == nil {
		return status.Error(codes.InvalidArgument, "first request must carry streaming_config")
	}
	f.mu.Lock()
	f.lastConfig = cfg.GetConfig()
	f.mu.Unlock()

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		text := strings.TrimSpace(string(req.GetAudioContent()))
		f.mu.Lock()
		f.audioFrames++
		f.mu.Unlock()
		if text == "" {
			continue
		}
		interim := &rivapb.StreamingRecognizeResponse{
			Results: []*rivapb.StreamingRecognitionResult{{
				Alternatives: []*rivapb.SpeechRecognitionAlternative{{Transcript: text + "...", Confidence: 0.4}},
				IsFinal:      false,
				Stability:    0.1,
			}},
		}
		if err := stream.Send(interim); err != nil {
			return err
		}
		final := &rivapb.StreamingRecognizeResponse{
			Results: []*rivapb.StreamingRecognitionResult{{
				Alternatives: []*rivapb.SpeechRecognitionAlternative{{Transcript: text, Confidence: 0.95}},
				IsFinal:      true,
			}},
		}
		if err := stream.Send(final); err != nil {
			return err
		}
	}
}

// FakeTTS renders deterministic PCM: the request text bytes repeated four
// times.
type FakeTTS struct {
	rivapb.UnimplementedRivaSpeechSynthesisServer

	mu       sync.Mutex
	lastReq  *rivapb.SynthesizeSpeechRequest
	failWith error
}

// RenderedAudio returns the PCM the fake produces for the given text.
func RenderedAudio(text string) []byte {
	return bytes.Repeat([]byte(text), 4)
}

// LastRequest returns the most recent synthesis request.
func (f *FakeTTS) LastRequest() *rivapb.SynthesizeSpeechRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastReq
}

// FailWith makes subsequent calls return err.
func (f *FakeTTS) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = err
}

func (f *FakeTTS) record(req *rivapb.SynthesizeSpeechRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastReq = req
	return f.failWith
}

// Synthesize returns the whole rendering in one response.
func (f *FakeTTS) Synthesize(_ context.Context, req *rivapb.SynthesizeSpeechRequest) (*rivapb.SynthesizeSpeechResponse, error) {
	if err := f.record(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is empty")
	}
	return &rivapb.SynthesizeSpeechResponse{Audio: RenderedAudio(req.GetText())}, nil
}

// SynthesizeOnline streams the rendering in fixed-size chunks.
func (f *FakeTTS) SynthesizeOnline(req *rivapb.SynthesizeSpeechRequest, stream rivapb.RivaSpeechSynthesis_SynthesizeOnlineServer) error {
	if err := f.record(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.GetText()) == "" {
		return status.Error(codes.InvalidArgument, "text is empty")
	}
	audio := RenderedAudio(req.GetText())
	const chunk = 8
	for off := 0; off < len(audio); off += chunk {
		end := off + chunk
		if end > len(audio) {
			end = len(audio)
		}
		if err := stream.Send(&rivapb.SynthesizeSpeechResponse{Audio: audio[off:end]}); err != nil {
			return err
		}
	}
	return nil
}
