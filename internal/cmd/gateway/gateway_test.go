package gateway

import (
	"flag"
	"testing"

	"github.com/voicegate/voicegate/internal/platform/timeouts"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:5000" {
		t.Errorf("HTTPAddr = %q, want localhost:5000", cfg.HTTPAddr)
	}
	if cfg.RivaAddr != "localhost:50051" {
		t.Errorf("RivaAddr = %q, want localhost:50051", cfg.RivaAddr)
	}
	if cfg.GRPCDialTimeout != timeouts.GRPCDial {
		t.Errorf("GRPCDialTimeout = %v, want %v", cfg.GRPCDialTimeout, timeouts.GRPCDial)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if len(cfg.ProbeLanguages) != 0 {
		t.Errorf("ProbeLanguages = %v, want none", cfg.ProbeLanguages)
	}
	if !cfg.WaitRiva {
		t.Error("WaitRiva should default to true")
	}
}

func TestParseConfigWaitRivaDisabled(t *testing.T) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-wait-riva=false"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.WaitRiva {
		t.Error("WaitRiva = true, want false")
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9000",
		"-riva-addr", "riva:50051",
		"-db-path", "/tmp/t.db",
		"-probe-languages", "en-US, fr-FR,",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %q, want 127.0.0.1:9000", cfg.HTTPAddr)
	}
	if cfg.RivaAddr != "riva:50051" {
		t.Errorf("RivaAddr = %q, want riva:50051", cfg.RivaAddr)
	}
	if cfg.DBPath != "/tmp/t.db" {
		t.Errorf("DBPath = %q, want /tmp/t.db", cfg.DBPath)
	}
	if len(cfg.ProbeLanguages) != 2 || cfg.ProbeLanguages[0] != "en-US" || cfg.ProbeLanguages[1] != "fr-FR" {
		t.Errorf("ProbeLanguages = %v, want [en-US fr-FR]", cfg.ProbeLanguages)
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("VOICEGATE_HTTP_ADDR", "0.0.0.0:8443")
	t.Setenv("VOICEGATE_RIVA_ADDR", "riva.internal:50051")

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:8443" {
		t.Errorf("HTTPAddr = %q, want env value", cfg.HTTPAddr)
	}
	if cfg.RivaAddr != "riva.internal:50051" {
		t.Errorf("RivaAddr = %q, want env value", cfg.RivaAddr)
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("VOICEGATE_HTTP_ADDR", "0.0.0.0:8443")

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:7000"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:7000" {
		t.Errorf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
}
