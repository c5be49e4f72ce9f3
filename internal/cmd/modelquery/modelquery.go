// Package modelquery probes a Riva server for deployed languages and
// writes the resulting model catalog as JSON.
package modelquery

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/voicegate/voicegate/internal/catalog"
	"github.com/voicegate/voicegate/internal/platform/config"
	"github.com/voicegate/voicegate/internal/platform/timeouts"
	"github.com/voicegate/voicegate/internal/riva"
)

const defaultRivaAddr = "localhost:50051"

// envConfig captures startup defaults from the environment.
type envConfig struct {
	RivaAddr string `env:"VOICEGATE_RIVA_ADDR"`
}

// Config holds the modelquery command configuration.
type Config struct {
	RivaAddr        string
	Output          string
	Languages       []string
	GRPCDialTimeout time.Duration
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		RivaAddr:        defaultRivaAddr,
		GRPCDialTimeout: timeouts.GRPCDial,
	}
	if addr := strings.TrimSpace(envCfg.RivaAddr); addr != "" {
		cfg.RivaAddr = addr
	}

	var languages string
	fs.StringVar(&cfg.RivaAddr, "riva-addr", cfg.RivaAddr, "Riva gRPC address")
	fs.StringVar(&cfg.Output, "output", "", "write the catalog to this file instead of stdout")
	fs.StringVar(&languages, "languages", "", "comma-separated languages to probe (default: built-in candidate set)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	for _, part := range strings.Split(languages, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			cfg.Languages = append(cfg.Languages, part)
		}
	}
	return cfg, nil
}

// Run probes the server and writes the catalog.
func Run(ctx context.Context, cfg Config) error {
	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("close output file: %v", err)
			}
		}()
		out = file
	}
	return run(ctx, cfg, out)
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	client, err := riva.Dial(ctx, riva.Config{
		Addr:        cfg.RivaAddr,
		DialTimeout: cfg.GRPCDialTimeout,
	})
	if err != nil {
		return fmt.Errorf("dial riva: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Printf("close riva connection: %v", err)
		}
	}()

	models := catalog.Probe(ctx, client.ASR(), cfg.Languages, log.Printf)

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(models); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
