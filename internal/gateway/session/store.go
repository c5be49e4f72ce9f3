// Package session tracks pseudo-streaming recognition sessions: HTTP
// clients that poll with audio chunks while one vendor stream per session
// runs underneath.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/voicegate/voicegate/internal/platform/errors"
	"github.com/voicegate/voicegate/internal/platform/timeouts"
	"github.com/voicegate/voicegate/internal/riva"
)

// Stream is the slice of the recognition stream the registry drives.
// *riva.Stream satisfies it.
type Stream interface {
	Send(chunk []byte) error
	CloseSend() error
	Wait(ctx context.Context) error
	Close()
	Snapshot() riva.Snapshot
}

// Opener starts a vendor recognition stream for a new session.
type Opener func(ctx context.Context, opts riva.RecognitionOptions) (Stream, error)

// Config tunes the registry's eviction behavior.
type Config struct {
	// IdleTimeout evicts sessions that stop pushing audio.
	IdleTimeout time.Duration
	// Linger keeps stopped sessions readable before eviction.
	Linger time.Duration
}

func (c Config) withDefaults() Config {
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = timeouts.SessionIdle
	}
	if c.Linger <= 0 {
		c.Linger = timeouts.SessionLinger
	}
	return c
}

// Result is the poll response state for one session.
type Result struct {
	Transcription string
	IsFinal       bool
}

// Stopped summarizes a finalized session for archiving.
type Stopped struct {
	ID            string
	Transcription string
	LanguageCode  string
	CreatedAt     time.Time
	StoppedAt     time.Time
}

type session struct {
	id        string
	opts      riva.RecognitionOptions
	stream    Stream
	createdAt time.Time
	lastSeen  time.Time
	stopped   bool
	stoppedAt time.Time
	final     string
}

// Store is the synchronized session registry. Every access holds the
// registry lock, and vendor streams are only touched by the session that
// owns them.
type Store struct {
	open  Opener
	cfg   Config
	clock func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewStore builds a registry around a stream opener.
func NewStore(open Opener, cfg Config) *Store {
	return &Store{
		open:     open,
		cfg:      cfg.withDefaults(),
		clock:    time.Now,
		sessions: make(map[string]*session),
	}
}

// Start opens a vendor stream and registers a new session. The supplied
// context must outlive the HTTP request; pass the server's run context.
func (st *Store) Start(ctx context.Context, opts riva.RecognitionOptions) (string, error) {
	if st == nil || st.open == nil {
		return "", apperrors.E(apperrors.KindUnavailable, "speech service is not configured")
	}
	stream, err := st.open(ctx, opts)
	if err != nil {
		return "", apperrors.FromGRPC(err, "start recognition stream")
	}

	id := uuid.NewString()
	now := st.clock()
	st.mu.Lock()
	st.sessions[id] = &session{
		id:        id,
		opts:      opts,
		stream:    stream,
		createdAt: now,
		lastSeen:  now,
	}
	st.mu.Unlock()
	return id, nil
}

// PushAudio forwards a chunk to the session's vendor stream and returns
// the transcription state known so far.
func (st *Store) PushAudio(id string, chunk []byte) (Result, error) {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	if !ok {
		st.mu.Unlock()
		return Result{}, apperrors.E(apperrors.KindNotFound, "unknown session id")
	}
	if sess.stopped {
		st.mu.Unlock()
		return Result{}, apperrors.E(apperrors.KindConflict, "session is stopped")
	}
	sess.lastSeen = st.clock()
	stream := sess.stream
	st.mu.Unlock()

	if err := stream.Send(chunk); err != nil {
		// A concurrent Stop can half-close the stream between the lock
		// release and the send; that is the stopped-session case, not a
		// vendor failure.
		if errors.Is(err, riva.ErrStreamClosed) {
			return Result{}, apperrors.E(apperrors.KindConflict, "session is stopped")
		}
		return Result{}, apperrors.FromGRPC(err, "forward audio chunk")
	}
	snap := stream.Snapshot()
	if snap.Err != nil {
		return Result{}, apperrors.FromGRPC(snap.Err, "recognition stream failed")
	}
	return Result{
		Transcription: snap.Transcript(),
		IsFinal:       snap.HasFinal(),
	}, nil
}

// Stop finalizes a session: half-closes the vendor stream, drains
// remaining results, and records the final transcript. Stopping an
// already stopped session returns the recorded transcript.
func (st *Store) Stop(ctx context.Context, id string) (Stopped, error) {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	if !ok {
		st.mu.Unlock()
		return Stopped{}, apperrors.E(apperrors.KindNotFound, "unknown session id")
	}
	if sess.stopped {
		out := st.stoppedLocked(sess)
		st.mu.Unlock()
		return out, nil
	}
	sess.stopped = true
	sess.stoppedAt = st.clock()
	stream := sess.stream
	st.mu.Unlock()

	_ = stream.CloseSend()
	drainCtx, cancel := context.WithTimeout(ctx, timeouts.Shutdown)
	_ = stream.Wait(drainCtx)
	cancel()
	snap := stream.Snapshot()
	stream.Close()

	st.mu.Lock()
	sess.final = strings.TrimSpace(snap.Transcript())
	out := st.stoppedLocked(sess)
	st.mu.Unlock()
	return out, nil
}

func (st *Store) stoppedLocked(sess *session) Stopped {
	return Stopped{
		ID:            sess.id,
		Transcription: sess.final,
		LanguageCode:  sess.opts.LanguageCode,
		CreatedAt:     sess.createdAt,
		StoppedAt:     sess.stoppedAt,
	}
}

// Len reports the number of registered sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts idle and lingered sessions, closing any live streams, and
// returns the evicted ids.
func (st *Store) Sweep() []string {
	now := st.clock()

	st.mu.Lock()
	var evicted []*session
	for id, sess := range st.sessions {
		expired := false
		if sess.stopped {
			expired = now.Sub(sess.stoppedAt) >= st.cfg.Linger
		} else {
			expired = now.Sub(sess.lastSeen) >= st.cfg.IdleTimeout
		}
		if expired {
			evicted = append(evicted, sess)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	ids := make([]string, 0, len(evicted))
	for _, sess := range evicted {
		if !sess.stopped {
			sess.stream.Close()
		}
		ids = append(ids, sess.id)
	}
	return ids
}

// Run sweeps periodically until the context ends, then closes all
// remaining streams.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			st.closeAll()
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

func (st *Store) closeAll() {
	st.mu.Lock()
	var live []*session
	for id, sess := range st.sessions {
		if !sess.stopped {
			live = append(live, sess)
		}
		delete(st.sessions, id)
	}
	st.mu.Unlock()

	for _, sess := range live {
		sess.stream.Close()
	}
}
