package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/registrolabs/registro/internal/config"
	"github.com/registrolabs/registro/internal/server"
	"github.com/registrolabs/registro/pkg/registry"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	reg := registry.New()
	if n, err := registry.Seed(reg, cfg.Seeds); err != nil {
		logger.Error("seeding failed", "created", n, "error", err)
		os.Exit(1)
	} else if n > 0 {
		logger.Info("seeded registry", "records", n)
	}

	srv, err := server.New(cfg, reg, logger, version)
	if err != nil {
		logger.Error("server setup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("registrod listening",
		"addr", cfg.Addr(),
		"tls", cfg.SelfSignedTLS,
		"version", version,
	)
	if err := srv.Run(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
