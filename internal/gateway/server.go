// Package gateway serves the HTTP speech API in front of a Riva gRPC
// endpoint.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voicegate/voicegate/internal/catalog"
	"github.com/voicegate/voicegate/internal/gateway/session"
	"github.com/voicegate/voicegate/internal/platform/timeouts"
	"github.com/voicegate/voicegate/internal/riva"
	"github.com/voicegate/voicegate/internal/storage"
	storagesqlite "github.com/voicegate/voicegate/internal/storage/sqlite"
)

// defaultSweepInterval paces the session janitor.
const defaultSweepInterval = 10 * time.Second

// Config defines the inputs for the gateway process.
type Config struct {
	HTTPAddr        string
	RivaAddr        string
	GRPCDialTimeout time.Duration
	// SkipRivaWait starts the gateway even when Riva is unreachable;
	// speech endpoints fail until it comes up. The default dial waits
	// for the health check and fails fast.
	SkipRivaWait bool
	// TLSCertFile/TLSKeyFile enable HTTPS when both files exist; the
	// server falls back to plain HTTP with a warning otherwise.
	TLSCertFile string
	TLSKeyFile  string
	// DBPath enables the transcript archive when set.
	DBPath string
	// ProbeLanguages triggers a live language probe at startup when
	// non-empty; the catalog keeps its static defaults otherwise.
	ProbeLanguages []string
	Session        session.Config
	SweepInterval  time.Duration
}

// Server hosts the speech HTTP API and owns the Riva client connection.
type Server struct {
	httpAddr    string
	tlsCertFile string
	tlsKeyFile  string

	client      *riva.Client
	sessions    *session.Store
	transcripts *storagesqlite.Store
	models      catalog.Models

	httpServer    *http.Server
	sweepInterval time.Duration

	// streamCtx outlives individual HTTP requests so session streams
	// survive between polls. Close cancels it.
	streamCtx    context.Context
	streamCancel context.CancelFunc
}

// NewServer dials Riva and builds a configured gateway server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(cfg.RivaAddr) == "" {
		return nil, errors.New("riva address is required")
	}
	if cfg.GRPCDialTimeout <= 0 {
		cfg.GRPCDialTimeout = timeouts.GRPCDial
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	client, err := riva.Dial(ctx, riva.Config{
		Addr:           cfg.RivaAddr,
		DialTimeout:    cfg.GRPCDialTimeout,
		SkipHealthWait: cfg.SkipRivaWait,
	})
	if err != nil {
		return nil, err
	}

	var transcripts *storagesqlite.Store
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		transcripts, err = openTranscriptStore(path)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
	}

	models := catalog.Default()
	if len(cfg.ProbeLanguages) > 0 {
		models = catalog.Probe(ctx, client.ASR(), cfg.ProbeLanguages, func(format string, args ...any) {
			log.Printf("catalog %s", fmt.Sprintf(format, args...))
		})
	}

	streamCtx, streamCancel := context.WithCancel(context.Background())
	s := &Server{
		httpAddr:      httpAddr,
		tlsCertFile:   strings.TrimSpace(cfg.TLSCertFile),
		tlsKeyFile:    strings.TrimSpace(cfg.TLSKeyFile),
		client:        client,
		transcripts:   transcripts,
		models:        models,
		sweepInterval: cfg.SweepInterval,
		streamCtx:     streamCtx,
		streamCancel:  streamCancel,
	}
	s.sessions = session.NewStore(func(ctx context.Context, opts riva.RecognitionOptions) (session.Stream, error) {
		return client.OpenStream(ctx, opts)
	}, cfg.Session)

	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Handler exposes the HTTP handler for in-process tests.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server and session janitor until the
// context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gateway server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	go s.sessions.Run(ctx, s.sweepInterval)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.serve()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) serve() error {
	if s.tlsCertFile != "" && s.tlsKeyFile != "" {
		if fileExists(s.tlsCertFile) && fileExists(s.tlsKeyFile) {
			log.Printf("gateway listening on %s (https)", s.httpAddr)
			return s.httpServer.ListenAndServeTLS(s.tlsCertFile, s.tlsKeyFile)
		}
		log.Printf("tls cert or key missing, falling back to plain http")
	}
	log.Printf("gateway listening on %s", s.httpAddr)
	return s.httpServer.ListenAndServe()
}

// Close releases the Riva connection, live session streams, and the
// transcript store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	// Cancelling the stream context tears down any vendor streams still
	// attached to live sessions.
	if s.streamCancel != nil {
		s.streamCancel()
	}
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("close riva connection: %v", err)
		}
	}
	if s.transcripts != nil {
		if err := s.transcripts.Close(); err != nil {
			log.Printf("close transcript store: %v", err)
		}
	}
}

func (s *Server) transcriptStore() storage.TranscriptStore {
	if s == nil || s.transcripts == nil {
		return nil
	}
	return s.transcripts
}

func openTranscriptStore(path string) (*storagesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := storagesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript store: %w", err)
	}
	return store, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
