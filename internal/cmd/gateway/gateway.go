// Package gateway wires configuration and lifecycle for the gateway
// process.
package gateway

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	gatewayservice "github.com/voicegate/voicegate/internal/gateway"
	"github.com/voicegate/voicegate/internal/platform/config"
	"github.com/voicegate/voicegate/internal/platform/otel"
	"github.com/voicegate/voicegate/internal/platform/timeouts"
)

const (
	defaultHTTPAddr = "localhost:5000"
	defaultRivaAddr = "localhost:50051"
)

// envConfig captures startup defaults from the environment.
type envConfig struct {
	HTTPAddr       string   `env:"VOICEGATE_HTTP_ADDR"`
	RivaAddr       string   `env:"VOICEGATE_RIVA_ADDR"`
	TLSCertFile    string   `env:"VOICEGATE_TLS_CERT"`
	TLSKeyFile     string   `env:"VOICEGATE_TLS_KEY"`
	DBPath         string   `env:"VOICEGATE_DB_PATH"`
	ProbeLanguages []string `env:"VOICEGATE_PROBE_LANGUAGES"`
}

// Config holds the gateway command configuration.
type Config struct {
	HTTPAddr        string
	RivaAddr        string
	TLSCertFile     string
	TLSKeyFile      string
	DBPath          string
	ProbeLanguages  []string
	GRPCDialTimeout time.Duration
	WaitRiva        bool
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:        stringOrDefault(envCfg.HTTPAddr, defaultHTTPAddr),
		RivaAddr:        stringOrDefault(envCfg.RivaAddr, defaultRivaAddr),
		TLSCertFile:     envCfg.TLSCertFile,
		TLSKeyFile:      envCfg.TLSKeyFile,
		DBPath:          envCfg.DBPath,
		ProbeLanguages:  envCfg.ProbeLanguages,
		GRPCDialTimeout: timeouts.GRPCDial,
		WaitRiva:        true,
	}

	var probeLanguages string
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.RivaAddr, "riva-addr", cfg.RivaAddr, "Riva gRPC address")
	fs.StringVar(&cfg.TLSCertFile, "tls-cert", cfg.TLSCertFile, "TLS certificate file (optional)")
	fs.StringVar(&cfg.TLSKeyFile, "tls-key", cfg.TLSKeyFile, "TLS key file (optional)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "transcript archive database path (optional)")
	fs.StringVar(&probeLanguages, "probe-languages", "", "comma-separated languages to probe at startup")
	fs.BoolVar(&cfg.WaitRiva, "wait-riva", cfg.WaitRiva, "fail fast when Riva is unreachable at startup")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if probeLanguages != "" {
		cfg.ProbeLanguages = splitLanguages(probeLanguages)
	}
	return cfg, nil
}

// Run starts the gateway server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "voicegate-gateway")
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				log.Printf("flush traces: %v", err)
			}
		}()
	}

	server, err := gatewayservice.NewServer(ctx, gatewayservice.Config{
		HTTPAddr:        cfg.HTTPAddr,
		RivaAddr:        cfg.RivaAddr,
		GRPCDialTimeout: cfg.GRPCDialTimeout,
		TLSCertFile:     cfg.TLSCertFile,
		TLSKeyFile:      cfg.TLSKeyFile,
		DBPath:          cfg.DBPath,
		ProbeLanguages:  cfg.ProbeLanguages,
		SkipRivaWait:    !cfg.WaitRiva,
	})
	if err != nil {
		return fmt.Errorf("init gateway server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve gateway: %w", err)
	}
	return nil
}

func stringOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func splitLanguages(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
