// Package riva wraps the Riva speech gRPC services behind a small client
// the HTTP gateway can drive.
package riva

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	gogrpc "google.golang.org/grpc"

	platformgrpc "github.com/voicegate/voicegate/internal/platform/grpc"
	"github.com/voicegate/voicegate/internal/platform/timeouts"
	"github.com/voicegate/voicegate/internal/riva/rivapb"
)

// Defaults applied when callers leave audio parameters unset. They match
// the Riva server's stock deployment values.
const (
	DefaultSampleRateHertz    = 16000
	DefaultTTSSampleRateHertz = 22050
	DefaultLanguageCode       = "en-US"
)

// TranscribeChunkSize is the audio frame size sent on recognition streams.
const TranscribeChunkSize = 4096

// Config holds the Riva connection settings.
type Config struct {
	Addr        string
	DialTimeout time.Duration
	// SkipHealthWait connects lazily instead of failing fast when the
	// endpoint is down; RPCs error until it comes up.
	SkipHealthWait bool
}

// Client talks to one Riva endpoint.
type Client struct {
	conn *gogrpc.ClientConn
	asr  rivapb.RivaSpeechRecognitionClient
	tts  rivapb.RivaSpeechSynthesisClient
}

// Dial connects to the Riva endpoint and waits for its health check.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("riva address is required")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = timeouts.GRPCDial
	}
	if cfg.SkipHealthWait {
		conn, err := platformgrpc.NewLazyClient(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("dial riva %s: %w", cfg.Addr, err)
		}
		return NewClient(conn), nil
	}
	logf := func(format string, args ...any) {
		log.Printf("riva %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		cfg.Addr,
		cfg.DialTimeout,
		logf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, fmt.Errorf("dial riva %s: %w", cfg.Addr, err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection. The client takes ownership
// and closes the connection on Close.
func NewClient(conn *gogrpc.ClientConn) *Client {
	return &Client{
		conn: conn,
		asr:  rivapb.NewRivaSpeechRecognitionClient(conn),
		tts:  rivapb.NewRivaSpeechSynthesisClient(conn),
	}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Healthy reports whether the Riva endpoint currently serves.
func (c *Client) Healthy(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return errors.New("riva client is not configured")
	}
	return platformgrpc.CheckHealth(ctx, c.conn, "")
}

// ASR exposes the raw recognition stub for callers that need it (model
// probing).
func (c *Client) ASR() rivapb.RivaSpeechRecognitionClient {
	if c == nil {
		return nil
	}
	return c.asr
}

// RecognitionOptions configures a recognition stream.
type RecognitionOptions struct {
	SampleRateHertz int
	LanguageCode    string
	Model           string
	MaxAlternatives int
	Punctuation     bool
}

func (o RecognitionOptions) withDefaults() RecognitionOptions {
	if o.SampleRateHertz <= 0 {
		o.SampleRateHertz = DefaultSampleRateHertz
	}
	if o.LanguageCode == "" {
		o.LanguageCode = DefaultLanguageCode
	}
	if o.MaxAlternatives <= 0 {
		o.MaxAlternatives = 1
	}
	return o
}

func (o RecognitionOptions) streamingConfig() *rivapb.StreamingRecognitionConfig {
	return &rivapb.StreamingRecognitionConfig{
		Config: &rivapb.RecognitionConfig{
			Encoding:                   rivapb.AudioEncoding_LINEAR_PCM,
			SampleRateHertz:            int32(o.SampleRateHertz),
			LanguageCode:               o.LanguageCode,
			MaxAlternatives:            int32(o.MaxAlternatives),
			EnableAutomaticPunctuation: o.Punctuation,
			Model:                      o.Model,
		},
		InterimResults: true,
	}
}

// Transcribe runs a complete PCM payload through streaming recognition
// and returns the joined final transcript.
func (c *Client) Transcribe(ctx context.Context, pcm []byte, opts RecognitionOptions) (string, error) {
	if c == nil || c.asr == nil {
		return "", errors.New("riva client is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Recognize)
	defer cancel()

	stream, err := c.OpenStream(ctx, opts)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	for off := 0; off < len(pcm); off += TranscribeChunkSize {
		end := off + TranscribeChunkSize
		if end > len(pcm) {
			end = len(pcm)
		}
		if err := stream.Send(pcm[off:end]); err != nil {
			return "", err
		}
	}
	if err := stream.CloseSend(); err != nil {
		return "", err
	}
	if err := stream.Wait(ctx); err != nil {
		return "", err
	}
	snap := stream.Snapshot()
	if snap.Err != nil {
		return "", snap.Err
	}
	return snap.Transcript(), nil
}

// SynthesisRequest describes one text-to-speech rendering.
type SynthesisRequest struct {
	Text         string
	Voice        string
	LanguageCode string
	SampleRateHz int
}

func (r SynthesisRequest) proto() *rivapb.SynthesizeSpeechRequest {
	if r.LanguageCode == "" {
		r.LanguageCode = DefaultLanguageCode
	}
	if r.SampleRateHz <= 0 {
		r.SampleRateHz = DefaultTTSSampleRateHertz
	}
	return &rivapb.SynthesizeSpeechRequest{
		Text:         r.Text,
		LanguageCode: r.LanguageCode,
		Encoding:     rivapb.AudioEncoding_LINEAR_PCM,
		SampleRateHz: int32(r.SampleRateHz),
		VoiceName:    r.Voice,
	}
}

// Synthesize renders the full utterance and returns raw PCM16 samples.
func (c *Client) Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error) {
	if c == nil || c.tts == nil {
		return nil, errors.New("riva client is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Synthesize)
	defer cancel()

	resp, err := c.tts.Synthesize(ctx, req.proto())
	if err != nil {
		return nil, err
	}
	return resp.GetAudio(), nil
}

// SynthesizeStream renders the utterance incrementally, invoking fn for
// each PCM chunk as Riva produces it. fn errors abort the stream.
func (c *Client) SynthesizeStream(ctx context.Context, req SynthesisRequest, fn func([]byte) error) error {
	if c == nil || c.tts == nil {
		return errors.New("riva client is not configured")
	}
	if fn == nil {
		return errors.New("chunk callback is required")
	}
	stream, err := c.tts.SynthesizeOnline(ctx, req.proto())
	if err != nil {
		return err
	}
	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if audio := resp.GetAudio(); len(audio) > 0 {
			if err := fn(audio); err != nil {
				return err
			}
		}
	}
}
