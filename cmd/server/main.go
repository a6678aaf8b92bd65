// Postfeed - Personalized Content Feed Service
// Copyright 2026 Humdov
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/humdov/postfeed

// Package main is the entry point for the Postfeed server.
//
// Postfeed serves personalized content feeds ranked from each user's
// like and comment history. The server initializes components in the
// following order:
//
//  1. Configuration: layered defaults, config file, environment (Koanf v2)
//  2. Database: SQLite with WAL journaling and foreign keys
//  3. Event bus: in-process Watermill pub/sub for interaction events
//  4. WebSocket hub: real-time activity stream for connected clients
//  5. HTTP server: REST API under /api/v1 plus /metrics
//
// All long-running components run under a Suture supervisor tree and
// shut down gracefully on SIGINT and SIGTERM.
//
// # Configuration
//
// Settings layer with highest priority last: built-in defaults, then
// config.yaml, then POSTFEED_* environment variables. Common settings:
//
//	export POSTFEED_HTTP_PORT=8080
//	export POSTFEED_DB_PATH=/var/lib/postfeed/postfeed.db
//	export POSTFEED_SEED_DATA=true   # demo corpus for local development
//	export POSTFEED_LOG_LEVEL=debug
//	./postfeed
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/humdov/postfeed/internal/api"
	"github.com/humdov/postfeed/internal/config"
	"github.com/humdov/postfeed/internal/database"
	"github.com/humdov/postfeed/internal/events"
	"github.com/humdov/postfeed/internal/feed"
	"github.com/humdov/postfeed/internal/logging"
	"github.com/humdov/postfeed/internal/supervisor"
	ws "github.com/humdov/postfeed/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (default: auto-detect)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("postfeed", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Config is not available yet, so the default logger reports this.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Postfeed")

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Setup(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to set up database schema")
	}

	if cfg.Database.SeedDemoData {
		logging.Info().Msg("Demo data seeding enabled (SEED_DATA=true)")
		if err := db.Seed(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	ranker := feed.NewRanker(db, feed.Config{
		LikeWeight:    cfg.Feed.LikeWeight,
		CommentWeight: cfg.Feed.CommentWeight,
		DecayRate:     cfg.Feed.DecayRate,
		DefaultLimit:  cfg.Feed.DefaultLimit,
		MaxCandidates: cfg.Feed.MaxCandidates,
	})

	bus := events.NewBus()
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	hub := ws.NewHub()
	forwarder := events.NewForwarder(bus, hub)

	handler := api.NewHandler(db, ranker, bus, hub, cfg, version)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Suture takes slog; bridge from zerolog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(supervisor.NewRunnerService("websocket-hub", hub))
	tree.AddMessagingService(supervisor.NewRunnerService("event-forwarder", forwarder))
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Postfeed stopped gracefully")
}
