package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/adrianliechti/avatar/config"
	"github.com/adrianliechti/avatar/pkg/otel"
	"github.com/adrianliechti/avatar/server"

	"github.com/joho/godotenv"
)

var version string

func main() {
	godotenv.Load()

	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "avatar", version); err != nil {
		slog.Error("unable to initialize telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("unable to parse configuration", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("unable to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
