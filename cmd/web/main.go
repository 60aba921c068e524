// Package main starts the Inflow marketing site.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/inflowhq/inflow/internal/cmd/web"
	entrypoint "github.com/inflowhq/inflow/internal/platform/cmd"
	"github.com/inflowhq/inflow/internal/platform/config"
)

func main() {
	log.SetPrefix("[WEB] ")
	if err := config.LoadDotEnv(entrypoint.DefaultDotEnvFiles...); err != nil {
		log.Fatalf("load env files: %v", err)
	}
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
