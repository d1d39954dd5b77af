package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/pricelist/internal/config"
	"github.com/JonMunkholm/pricelist/internal/core"
	"github.com/JonMunkholm/pricelist/internal/core/schemas"
	"github.com/JonMunkholm/pricelist/internal/logging"
)

// app is the wiring shared by every subcommand.
type app struct {
	cfg     *config.Config
	service *core.Service
	logger  *slog.Logger
}

// newApp loads configuration from the environment, applies command line
// overrides and builds the ingestion service. Logs go to stderr so that
// stdout carries only results.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	reg, err := schemas.NewRegistry(cfg.Ingest.MinPrice, cfg.Ingest.SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load schemas: %w", err)
	}

	return &app{
		cfg:     cfg,
		service: core.NewService(reg, cfg),
		logger:  logger,
	}, nil
}

func applyFlags(cfg *config.Config) {
	if schemaDir != "" {
		cfg.Ingest.SchemaDir = schemaDir
	}
	if minPrice != "" {
		cfg.Ingest.MinPrice = minPrice
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if concurrency > 0 {
		cfg.Upload.MaxConcurrent = concurrency
	}
}
