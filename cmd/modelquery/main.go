// Package main probes a Riva deployment for its recognizable languages
// and prints the resulting model catalog.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	modelquerycmd "github.com/voicegate/voicegate/internal/cmd/modelquery"
	"github.com/voicegate/voicegate/internal/platform/config"
)

func main() {
	cfg, err := modelquerycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[MODELQUERY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := modelquerycmd.Run(ctx, cfg); err != nil {
		config.Exitf("query models: %v", err)
	}
}
