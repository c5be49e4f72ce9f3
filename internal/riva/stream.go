package riva

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voicegate/voicegate/internal/riva/rivapb"
)

// ErrStreamClosed is returned by Send after the send side was closed.
var ErrStreamClosed = errors.New("recognition stream is closed")

// Stream is one live recognition stream. Send feeds audio; a background
// receive loop folds vendor results into the snapshot state.
type Stream struct {
	rpc    rivapb.RivaSpeechRecognition_StreamingRecognizeClient
	cancel context.CancelFunc

	sendMu     sync.Mutex
	sendClosed bool

	mu          sync.Mutex
	segments    []string
	lastInterim string
	recvErr     error

	recvDone chan struct{}
}

// OpenStream starts a streaming recognition session. The config frame is
// sent before OpenStream returns, so the first Send may carry audio.
func (c *Client) OpenStream(ctx context.Context, opts RecognitionOptions) (*Stream, error) {
	if c == nil || c.asr == nil {
		return nil, errors.New("riva client is not configured")
	}
	opts = opts.withDefaults()

	streamCtx, cancel := context.WithCancel(ctx)
	rpc, err := c.asr.StreamingRecognize(streamCtx)
	if err != nil {
		cancel()
		return nil, err
	}
	configFrame := &rivapb.StreamingRecognizeRequest{
		StreamingRequest: &rivapb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: opts.streamingConfig(),
		},
	}
	if err := rpc.Send(configFrame); err != nil {
		cancel()
		return nil, err
	}

	s := &Stream{
		rpc:      rpc,
		cancel:   cancel,
		recvDone: make(chan struct{}),
	}
	go s.recvLoop()
	return s, nil
}

// Send feeds one audio chunk to the vendor stream.
func (s *Stream) Send(chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.sendClosed {
		return ErrStreamClosed
	}
	return s.rpc.Send(&rivapb.StreamingRecognizeRequest{
		StreamingRequest: &rivapb.StreamingRecognizeRequest_AudioContent{AudioContent: chunk},
	})
}

// CloseSend half-closes the stream so Riva flushes remaining results.
func (s *Stream) CloseSend() error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.sendClosed {
		return nil
	}
	s.sendClosed = true
	return s.rpc.CloseSend()
}

// Wait blocks until the receive loop drains or the context ends.
func (s *Stream) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-s.recvDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the stream down and waits for the receive loop to exit.
func (s *Stream) Close() {
	_ = s.CloseSend()
	s.cancel()
	<-s.recvDone
}

// Snapshot is a point-in-time copy of the accumulated recognition state.
type Snapshot struct {
	Segments []string
	Interim  string
	Err      error
}

// Transcript joins the final segments, falling back to the latest interim
// hypothesis when nothing finalized yet.
func (snap Snapshot) Transcript() string {
	if len(snap.Segments) == 0 {
		return snap.Interim
	}
	return strings.Join(snap.Segments, " ")
}

// HasFinal reports whether any final segment arrived.
func (snap Snapshot) HasFinal() bool {
	return len(snap.Segments) > 0
}

// Snapshot returns a copy of the current recognition state.
func (s *Stream) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	segments := make([]string, len(s.segments))
	copy(segments, s.segments)
	return Snapshot{
		Segments: segments,
		Interim:  s.lastInterim,
		Err:      s.recvErr,
	}
}

func (s *Stream) recvLoop() {
	defer close(s.recvDone)

	for {
		resp, err := s.rpc.Recv()
		if err == nil {
			s.record(resp)
			continue
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if status.Code(err) == codes.Canceled {
			return
		}
		s.mu.Lock()
		s.recvErr = err
		s.mu.Unlock()
		return
	}
}

// record merges final and interim segments into stream state.
func (s *Stream) record(resp *rivapb.StreamingRecognizeResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, result := range resp.GetResults() {
		alternatives := result.GetAlternatives()
		if len(alternatives) == 0 {
			continue
		}
		transcript := strings.TrimSpace(alternatives[0].GetTranscript())
		if transcript == "" {
			continue
		}
		if result.GetIsFinal() {
			s.segments = append(s.segments, transcript)
			s.lastInterim = ""
			continue
		}
		// Keep only the latest interim hypothesis. Riva can reset interim
		// text boundaries between updates; committing earlier interims
		// would duplicate leading words in the final transcript.
		s.lastInterim = transcript
	}
}
